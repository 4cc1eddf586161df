package repository

import (
	"context"

	"hotelhub/internal/infra"
	infradb "hotelhub/internal/infra/db"
	"hotelhub/internal/pkg/pgconv"
	"hotelhub/internal/usecase/readmodel"
)

type UserRepository struct {
	db infradb.DBTX
}

func NewUserRepository(db infradb.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns the user view plus the stored bcrypt hash for
// credential checks. The hash never leaves the auth flow.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error) {
	const query = `
		SELECT id, name, email, role, password_hash
		FROM users
		WHERE email = $1`

	var (
		rm   readmodel.AuthorizedUserRM
		hash string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Role, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &rm, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*readmodel.AuthorizedUserRM, error) {
	const query = `
		SELECT id, name, email, role
		FROM users
		WHERE id = $1`

	var rm readmodel.AuthorizedUserRM
	err := r.db.QueryRow(ctx, query, id).Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &rm, nil
}

func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash, role string) (int64, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query, name, email, passwordHash, role).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}
