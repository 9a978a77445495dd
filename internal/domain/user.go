package domain

import "time"

// User represents a bot user
type User struct {
	ID         int64     `db:"id"`
	TelegramID int64     `db:"telegram_id"`
	CreatedAt  time.Time `db:"created_at"`
}

// Mode is the user's current interaction state
type Mode int

const (
	ModeIdle Mode = iota
	ModeAddingWord
	ModeDeletingWord
	ModeBrowsingDictionary
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeAddingWord:
		return "adding_word"
	case ModeDeletingWord:
		return "deleting_word"
	case ModeBrowsingDictionary:
		return "browsing_dictionary"
	default:
		return "unknown"
	}
}
