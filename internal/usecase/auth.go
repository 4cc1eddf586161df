package usecase

import (
	"context"
	"errors"

	"hotelhub/internal/domain/user"
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/pkg/jwt"
	"hotelhub/internal/pkg/password"
	"hotelhub/internal/usecase/readmodel"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id int64) (*readmodel.AuthorizedUserRM, error)
	Create(ctx context.Context, name, email, passwordHash, role string) (int64, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (string, *readmodel.AuthorizedUserRM, error)
	Register(ctx context.Context, req reqdto.RegisterRequest) (*readmodel.AuthorizedUserRM, error)
	GetCurrentUser(ctx context.Context, userID int64) (*readmodel.AuthorizedUserRM, error)
	ValidateToken(token string) (int64, string, error)
}

type authUseCaseImpl struct {
	userRepo UserRepository
	jwt      *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{userRepo: userRepo, jwt: jwtService}
}

func (u *authUseCaseImpl) Login(ctx context.Context, req reqdto.LoginRequest) (string, *readmodel.AuthorizedUserRM, error) {
	rm, hash, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, errs.Wrap(err, "failed to look up user")
	}

	if err := password.ComparePassword(hash, req.Password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := u.jwt.GenerateToken(rm.ID, rm.Role)
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to generate token")
	}
	return token, rm, nil
}

func (u *authUseCaseImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*readmodel.AuthorizedUserRM, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	id, err := u.userRepo.Create(ctx, req.Name, email.String(), hash, user.RoleCustomer.String())
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.userRepo.FindByID(ctx, id)
}

func (u *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID int64) (*readmodel.AuthorizedUserRM, error) {
	rm, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to get user")
	}
	return rm, nil
}

func (u *authUseCaseImpl) ValidateToken(token string) (int64, string, error) {
	userID, role, err := u.jwt.ValidateToken(token)
	if err != nil {
		return 0, "", ErrInvalidToken
	}
	return userID, role, nil
}
