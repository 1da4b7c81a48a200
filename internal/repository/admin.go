package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

type AdminRepository interface {
	Save(ctx context.Context, user *entity.AdminUser) error
	FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Count(ctx context.Context) (int, error)
}

type adminRepository struct {
	conn *sql.DB
}

func NewAdminRepository(conn *sql.DB) AdminRepository {
	return &adminRepository{
		conn: conn,
	}
}

func (that *adminRepository) Save(ctx context.Context, user *entity.AdminUser) error {
	query := `INSERT INTO admin_users (username, password_hash, disabled, created_at) VALUES (?, ?, ?, ?)`

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	result, err := that.conn.ExecContext(ctx, query,
		user.Username, user.PasswordHash, user.Disabled, user.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("can't save admin user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("can't get admin user id: %w", err)
	}
	user.ID = id

	return nil
}

func (that *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	query := `SELECT id, username, password_hash, disabled, created_at FROM admin_users WHERE username = ?`

	var (
		user      entity.AdminUser
		createdAt string
	)

	err := that.conn.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Disabled, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find admin user: %w", err)
	}

	if user.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("can't parse admin user created_at: %w", err)
	}

	return &user, nil
}

func (that *adminRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE admin_users SET password_hash = ? WHERE id = ?`

	result, err := that.conn.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("can't update admin password: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't update admin password: %w", err)
	}

	if affected == 0 {
		return apperror.ErrNotFound
	}

	return nil
}

func (that *adminRepository) Count(ctx context.Context) (int, error) {
	var count int

	if err := that.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("can't count admin users: %w", err)
	}

	return count, nil
}
