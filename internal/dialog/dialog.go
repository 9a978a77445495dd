// Package dialog decides what the bot says next. It owns the per-user
// session context and knows nothing about the chat transport.
package dialog

import (
	"wordtrainer/internal/domain"
	"wordtrainer/internal/session"

	"go.uber.org/zap"
)

// UserService resolves users in the dictionary store
type UserService interface {
	Find(telegramID int64) (*domain.User, error)
	Resolve(telegramID int64) (*domain.User, error)
}

// WordService reads and edits dictionaries
type WordService interface {
	Vocabulary(user *domain.User) (domain.Vocabulary, error)
	PersonalWords(user *domain.User) ([]domain.WordPair, error)
	AddWord(user *domain.User, pair domain.WordPair) error
	DeleteWord(user *domain.User, en string) error
}

// Sampler draws training rounds
type Sampler interface {
	Sample(v domain.Vocabulary) []domain.WordPair
	Options(round []domain.WordPair) []string
}

// Orchestrator maps inbound events to session transitions and prompts
type Orchestrator struct {
	sessions *session.Manager
	users    UserService
	words    WordService
	sampler  Sampler
	logger   *zap.Logger
}

// New creates an orchestrator
func New(
	sessions *session.Manager,
	users UserService,
	words WordService,
	sampler Sampler,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		sessions: sessions,
		users:    users,
		words:    words,
		sampler:  sampler,
		logger:   logger,
	}
}

// Handle processes one event and returns the prompts to deliver, in order.
// Events of the same user are handled one at a time.
func (o *Orchestrator) Handle(ev Event) (prompts []Prompt) {
	sess, isNew, release := o.sessions.Acquire(ev.UserID)
	defer release()

	t := &turn{o: o, sess: sess, ev: ev}

	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("Dialog handler panicked",
				zap.Int64("user_id", ev.UserID),
				zap.Stringer("mode", sess.Mode),
				zap.Stringer("event", ev.Kind),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			sess.Reset()
			prompts = []Prompt{failurePrompt()}
		}
	}()

	if isNew {
		o.logger.Debug("New session", zap.Int64("user_id", ev.UserID))
	}

	from := sess.Mode
	o.route(from, ev.Kind)(t)

	o.logger.Debug("Event handled",
		zap.Int64("user_id", ev.UserID),
		zap.Stringer("event", ev.Kind),
		zap.String("action", string(ev.Action)),
		zap.Stringer("from", from),
		zap.Stringer("to", sess.Mode),
	)
	return t.prompts
}

// turn is the state of one Handle call
type turn struct {
	o       *Orchestrator
	sess    *domain.Session
	ev      Event
	prompts []Prompt
}

func (t *turn) say(p Prompt) {
	t.prompts = append(t.prompts, p)
}

// user returns the session's store record, resolving it on first use
func (t *turn) user() (*domain.User, error) {
	if t.sess.User != nil {
		return t.sess.User, nil
	}
	u, err := t.o.users.Resolve(t.ev.UserID)
	if err != nil {
		return nil, err
	}
	t.sess.User = u
	return u, nil
}

// fail reports a store failure and leaves the user idle
func (t *turn) fail(op string, err error) {
	t.o.logger.Error("Dialog store call failed",
		zap.String("op", op),
		zap.Int64("user_id", t.ev.UserID),
		zap.Stringer("mode", t.sess.Mode),
		zap.Error(err),
	)
	t.sess.Reset()
	t.say(failurePrompt())
}

// round draws a fresh set of words and prompts the first one
func (t *turn) round() {
	t.sess.Reset()

	u, err := t.user()
	if err != nil {
		t.fail("resolve user", err)
		return
	}
	v, err := t.o.words.Vocabulary(u)
	if err != nil {
		t.fail("vocabulary", err)
		return
	}

	words := t.o.sampler.Sample(v)
	t.sess.StartRound(words)
	if len(words) == 0 {
		t.say(noWordsPrompt())
		return
	}
	t.say(roundPrompt(t.sess.CurrentTranslation, t.o.sampler.Options(words)))
}
