package postgres

import (
	"database/sql"
	"errors"

	"wordtrainer/internal/domain"

	"github.com/jmoiron/sqlx"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// FindByTelegramID looks a user up by Telegram id
func (r *UserRepo) FindByTelegramID(telegramID int64) (*domain.User, error) {
	var u domain.User
	query := `SELECT id, telegram_id, created_at FROM users WHERE telegram_id = $1`
	err := r.db.Get(&u, query, telegramID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// Create inserts the user, or returns the existing row
func (r *UserRepo) Create(telegramID int64) (*domain.User, error) {
	var u domain.User
	query := `
		INSERT INTO users (telegram_id)
		VALUES ($1)
		ON CONFLICT (telegram_id)
		DO UPDATE SET telegram_id = EXCLUDED.telegram_id
		RETURNING id, telegram_id, created_at
	`
	if err := r.db.Get(&u, query, telegramID); err != nil {
		return nil, err
	}
	return &u, nil
}
