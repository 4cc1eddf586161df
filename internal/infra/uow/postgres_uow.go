package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	infradb "hotelhub/internal/infra/db"
	"hotelhub/internal/infra/readstore"
	"hotelhub/internal/infra/repository"
	"hotelhub/internal/pkg/config"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, cfg config.DBConfig) shared.UnitOfWork {
	return &PostgresUoW{
		pool:        pool,
		lockTimeout: cfg.LockTimeout,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writers to
// different room types; same-room writers serialize on the row lock.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := u.runInTx(ctx, fn)
		if err == nil {
			return nil
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

// WithinOnce never re-runs the callback: the payment-backed booking flow
// charges an external gateway inside it, and financial operations must not
// be silently retried.
func (u *PostgresUoW) WithinOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db infradb.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) runInTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	// Bound row-lock waits so a contended room type surfaces as a retryable
	// conflict instead of hanging the caller.
	if u.lockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.lockTimeout.Milliseconds())
		if _, err := pgxTx.Exec(ctx, stmt); err != nil {
			rollback(ctx, pgxTx)
			return errs.Wrap(err, "failed to set lock timeout")
		}
	}

	tx := &pgTx{dbtx: pgxTx}

	if err := fn(ctx, tx); err != nil {
		rollback(ctx, pgxTx)
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		rollback(ctx, pgxTx)
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", err.Error())
	}
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- safe conversion after masking the sign bit
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx infradb.DBTX

	// Lazy-initialized repositories
	bookingRepo   shared.BookingRepository
	inventoryRepo shared.InventoryRepository
	roomTypeRepo  shared.RoomTypeRepository
	hotelRepo     shared.HotelRepository
	commandReads  shared.CommandReads
}

func (t *pgTx) DB() infradb.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Inventory() shared.InventoryRepository {
	if t.inventoryRepo == nil {
		t.inventoryRepo = repository.NewInventoryRepository(t.dbtx)
	}
	return t.inventoryRepo
}

func (t *pgTx) RoomTypes() shared.RoomTypeRepository {
	if t.roomTypeRepo == nil {
		t.roomTypeRepo = repository.NewRoomTypeRepository(t.dbtx)
	}
	return t.roomTypeRepo
}

func (t *pgTx) Hotels() shared.HotelRepository {
	if t.hotelRepo == nil {
		t.hotelRepo = repository.NewHotelRepository(t.dbtx)
	}
	return t.hotelRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = readstore.NewCommandReads(t.dbtx)
	}
	return t.commandReads
}
