package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserRepo_FindByTelegramID(t *testing.T) {
	tests := []struct {
		name          string
		telegramID    int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedNil   bool
		expectedError bool
	}{
		{
			name:       "user exists",
			telegramID: 123,
			mockRows: sqlmock.NewRows([]string{"id", "telegram_id", "created_at"}).
				AddRow(1, 123, time.Now()),
		},
		{
			name:        "user not exists",
			telegramID:  456,
			mockError:   sql.ErrNoRows,
			expectedNil: true,
		},
		{
			name:          "connection error",
			telegramID:    789,
			mockError:     fmt.Errorf("connection refused"),
			expectedNil:   true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepo(db)

			query := "SELECT id, telegram_id, created_at FROM users WHERE telegram_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.telegramID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.telegramID).WillReturnRows(tt.mockRows)
			}

			user, err := repo.FindByTelegramID(tt.telegramID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectedNil {
				assert.Nil(t, user)
			} else {
				require.NotNil(t, user)
				assert.Equal(t, int64(1), user.ID)
				assert.Equal(t, tt.telegramID, user.TelegramID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	telegramID := int64(123)

	mock.ExpectQuery("INSERT INTO users \\(telegram_id\\) VALUES \\(\\$1\\) ON CONFLICT \\(telegram_id\\)").
		WithArgs(telegramID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "telegram_id", "created_at"}).AddRow(7, telegramID, time.Now()))

	user, err := repo.Create(telegramID)

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, telegramID, user.TelegramID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(int64(123)).
		WillReturnError(fmt.Errorf("connection reset"))

	user, err := repo.Create(123)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
