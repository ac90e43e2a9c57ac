package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jengzang/putusan-backend-go/internal/database"
	"github.com/jengzang/putusan-backend-go/internal/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, dialect database.Dialect) *UserRepository {
	return &UserRepository{db: db, dialect: dialect}
}

// Create inserts a user and fills in its id. Returns models.ErrConflict
// when the email is already registered.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	query := `INSERT INTO users (nama_lengkap, email, password, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (email) DO NOTHING
		RETURNING id`

	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query),
		u.NamaLengkap, u.Email, u.Password, u.Role, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, "email = ?", email)
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *UserRepository) getOne(ctx context.Context, condition string, arg interface{}) (*models.User, error) {
	query := `SELECT id, nama_lengkap, email, password, role, created_at, updated_at
		FROM users WHERE ` + condition

	var u models.User
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), arg).Scan(
		&u.ID, &u.NamaLengkap, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &u, nil
}
