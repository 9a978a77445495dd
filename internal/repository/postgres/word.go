package postgres

import (
	"errors"

	"wordtrainer/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sqlx.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sqlx.DB) *WordRepo {
	return &WordRepo{db: db}
}

// SharedWords returns the general dictionary
func (r *WordRepo) SharedWords() ([]domain.WordPair, error) {
	words := []domain.WordPair{}
	query := `SELECT en_word, ru_word FROM general_dictionary ORDER BY id`
	if err := r.db.Select(&words, query); err != nil {
		return nil, err
	}
	return words, nil
}

// PersonalWords returns the user's own words in insertion order
func (r *WordRepo) PersonalWords(userID int64) ([]domain.WordPair, error) {
	words := []domain.WordPair{}
	query := `SELECT en_word, ru_word FROM person_dictionary WHERE user_id = $1 ORDER BY id`
	if err := r.db.Select(&words, query, userID); err != nil {
		return nil, err
	}
	return words, nil
}

// AddPersonalWord stores a word in the user's dictionary.
// Uniqueness of (user_id, en_word) is enforced by the schema.
func (r *WordRepo) AddPersonalWord(userID int64, en, ru string) error {
	query := `
		INSERT INTO person_dictionary (user_id, en_word, ru_word)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, userID, en, ru)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return domain.ErrAlreadyExists
		case foreignKeyViolation:
			return domain.ErrNoSuchUser
		}
	}
	return err
}

// DeletePersonalWord removes a word from the user's dictionary only
func (r *WordRepo) DeletePersonalWord(userID int64, en string) error {
	query := `DELETE FROM person_dictionary WHERE user_id = $1 AND en_word = $2`
	res, err := r.db.Exec(query, userID, en)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
