package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type SettingsRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	SetMany(ctx context.Context, values map[string]string) error
}

type settingsRepository struct {
	conn *sql.DB
}

// NewSettingsRepository keeps runtime settings as key/value rows.
func NewSettingsRepository(conn *sql.DB) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

func (that *settingsRepository) GetAll(ctx context.Context) (map[string]string, error) {
	query := `SELECT key, value FROM app_settings`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't read settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("can't scan setting: %w", err)
		}
		values[key] = value
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read settings: %w", err)
	}

	return values, nil
}

// SetMany upserts all values in one transaction.
func (that *settingsRepository) SetMany(ctx context.Context, values map[string]string) error {
	query := `INSERT INTO app_settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC().Format(time.RFC3339)
	for key, value := range values {
		if _, err = tx.ExecContext(ctx, query, key, value, now); err != nil {
			return fmt.Errorf("can't save setting %s: %w", key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit settings: %w", err)
	}

	return nil
}
