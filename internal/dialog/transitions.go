package dialog

import (
	"errors"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/service"

	"go.uber.org/zap"
)

type transitionKey struct {
	mode domain.Mode
	kind EventKind
}

type handlerFunc func(t *turn)

// transitions lists every reachable (mode, event) pair
var transitions = map[transitionKey]handlerFunc{
	{domain.ModeIdle, EventFirstContact}: greet,
	{domain.ModeIdle, EventMenuAction}:   idleAction,
	{domain.ModeIdle, EventFreeText}:     answer,

	{domain.ModeAddingWord, EventFirstContact}: greet,
	{domain.ModeAddingWord, EventMenuAction}:   addingAction,
	{domain.ModeAddingWord, EventFreeText}:     addWord,

	{domain.ModeDeletingWord, EventFirstContact}: greet,
	{domain.ModeDeletingWord, EventMenuAction}:   deletingAction,
	{domain.ModeDeletingWord, EventFreeText}:     deleteWord,

	{domain.ModeBrowsingDictionary, EventFirstContact}: greet,
	{domain.ModeBrowsingDictionary, EventMenuAction}:   browsingAction,
	{domain.ModeBrowsingDictionary, EventFreeText}:     browsingText,
}

func (o *Orchestrator) route(mode domain.Mode, kind EventKind) handlerFunc {
	if h, ok := transitions[transitionKey{mode, kind}]; ok {
		return h
	}
	o.logger.Warn("No transition, resetting session",
		zap.Stringer("mode", mode),
		zap.Stringer("event", kind),
	)
	return func(t *turn) { t.round() }
}

func greet(t *turn) {
	t.sess.Reset()

	u, err := t.o.users.Find(t.ev.UserID)
	if err != nil {
		t.fail("find user", err)
		return
	}
	if u == nil {
		t.say(greetNewPrompt(t.ev.Name))
		return
	}
	t.sess.User = u
	t.say(greetReturningPrompt(t.ev.Name))
}

func idleAction(t *turn) {
	switch t.ev.Action {
	case ActionAddWord:
		startAdding(t)
	case ActionDeleteWord:
		startDeleting(t)
	case ActionShowDictionary:
		showDictionary(t)
	default:
		t.round()
	}
}

// answer checks a reply to the current prompt and always moves on
func answer(t *turn) {
	if !t.sess.HasPrompt() {
		t.round()
		return
	}

	ok, pair := t.sess.Answer(t.ev.Text)
	if ok {
		t.say(correctPrompt(pair))
	} else {
		t.say(wrongPrompt(pair))
	}
	t.round()
}

func startAdding(t *turn) {
	t.sess.Enter(domain.ModeAddingWord)
	t.say(addPrompt())
}

func startDeleting(t *turn) {
	u, err := t.user()
	if err != nil {
		t.fail("resolve user", err)
		return
	}
	words, err := t.o.words.PersonalWords(u)
	if err != nil {
		t.fail("personal words", err)
		return
	}

	if len(words) == 0 {
		t.say(textPrompt(textNoPersonal))
		t.round()
		return
	}

	t.sess.Enter(domain.ModeDeletingWord)
	t.say(deleteListPrompt(words))
}

func showDictionary(t *turn) {
	u, err := t.user()
	if err != nil {
		t.fail("resolve user", err)
		return
	}
	words, err := t.o.words.PersonalWords(u)
	if err != nil {
		t.fail("personal words", err)
		return
	}

	t.sess.Enter(domain.ModeBrowsingDictionary)
	t.say(dictionaryPrompt(words))
	t.say(dictionaryActionsPrompt())
}

func addingAction(t *turn) {
	switch t.ev.Action {
	case ActionCancel:
		t.say(textPrompt(textAddCancelled))
		t.round()
	case ActionStart:
		t.round()
	default:
		addWord(t)
	}
}

// addWord keeps the user in AddingWord until the entry parses
func addWord(t *turn) {
	pair, err := service.ParseEntry(t.ev.Text)
	if err != nil {
		t.say(textPrompt(textAddFormat))
		return
	}

	u, err := t.user()
	if err != nil {
		t.fail("resolve user", err)
		return
	}

	err = t.o.words.AddWord(u, pair)
	switch {
	case err == nil:
		t.o.logger.Info("Personal word added",
			zap.Int64("user_id", t.ev.UserID),
			zap.String("word", pair.En),
		)
		t.say(addedPrompt(pair))
	case errors.Is(err, domain.ErrAlreadyExists):
		t.say(textPrompt(textAddDuplicate))
	case errors.Is(err, domain.ErrNoSuchUser):
		t.sess.User = nil
		t.fail("add word", err)
		return
	default:
		t.fail("add word", err)
		return
	}
	t.round()
}

func deletingAction(t *turn) {
	switch t.ev.Action {
	case ActionCancel:
		t.say(textPrompt(textDeleteCancel))
		t.round()
	case ActionStart:
		t.round()
	default:
		deleteWord(t)
	}
}

// deleteWord makes one attempt and returns to a fresh round
func deleteWord(t *turn) {
	pair, err := service.ParseEntry(t.ev.Text)
	if err != nil {
		t.say(textPrompt(textDeleteFormat))
		t.round()
		return
	}

	u, err := t.user()
	if err != nil {
		t.fail("resolve user", err)
		return
	}

	err = t.o.words.DeleteWord(u, pair.En)
	switch {
	case err == nil:
		t.o.logger.Info("Personal word deleted",
			zap.Int64("user_id", t.ev.UserID),
			zap.String("word", pair.En),
		)
		t.say(deletedPrompt(pair.En))
	case errors.Is(err, domain.ErrNotFound):
		t.say(textPrompt(textDeleteMissing))
	case errors.Is(err, domain.ErrNoSuchUser):
		t.sess.User = nil
		t.say(textPrompt(textDeleteMissing))
	default:
		t.fail("delete word", err)
		return
	}
	t.round()
}

func browsingAction(t *turn) {
	switch t.ev.Action {
	case ActionAddWord:
		startAdding(t)
	case ActionDeleteWord:
		startDeleting(t)
	case ActionShowDictionary:
		showDictionary(t)
	default:
		t.round()
	}
}

func browsingText(t *turn) {
	t.say(dictionaryActionsPrompt())
}
