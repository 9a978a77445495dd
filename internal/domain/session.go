package domain

// Session is the in-flight context of one user's conversation.
// It is never persisted.
type Session struct {
	Mode               Mode
	CurrentWord        string
	CurrentTranslation string
	Round              []WordPair

	// User caches the resolved store record, nil until first resolved.
	User *User
}

// Reset drops the round and returns to idle. The cached user survives.
func (s *Session) Reset() {
	s.Mode = ModeIdle
	s.CurrentWord = ""
	s.CurrentTranslation = ""
	s.Round = nil
}

// Enter switches mode. Any round in flight is discarded.
func (s *Session) Enter(m Mode) {
	s.Reset()
	s.Mode = m
}

// StartRound makes the first pair the active prompt. An empty round
// leaves the session idle with nothing to answer.
func (s *Session) StartRound(round []WordPair) {
	s.Reset()
	if len(round) == 0 {
		return
	}
	s.Round = round
	s.CurrentWord = round[0].En
	s.CurrentTranslation = round[0].Ru
}

// HasPrompt reports whether there is a word waiting for an answer
func (s *Session) HasPrompt() bool {
	return s.Mode == ModeIdle && s.CurrentWord != ""
}

// Answer checks the submitted word against the active prompt and
// returns the correct pair.
func (s *Session) Answer(text string) (bool, WordPair) {
	pair := WordPair{En: s.CurrentWord, Ru: s.CurrentTranslation}
	return text == s.CurrentWord, pair
}
