package dialog

import "fmt"

// EventKind classifies inbound events
type EventKind int

const (
	EventFirstContact EventKind = iota
	EventMenuAction
	EventFreeText
)

func (k EventKind) String() string {
	switch k {
	case EventFirstContact:
		return "first_contact"
	case EventMenuAction:
		return "menu_action"
	case EventFreeText:
		return "free_text"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Action is a menu or callback action tag
type Action string

const (
	ActionNone           Action = ""
	ActionStart          Action = "start"
	ActionNext           Action = "next"
	ActionAddWord        Action = "add_word"
	ActionDeleteWord     Action = "delete_word"
	ActionShowDictionary Action = "show_dictionary"
	ActionCancel         Action = "cancel"
)

// Keyboard labels
const (
	LabelAddWord    = "Добавить слово"
	LabelDeleteWord = "Удалить слово"
	LabelDictionary = "Мой словарь"
	LabelNext       = "Дальше"
	LabelContinue   = "Продолжить тренировку"
	LabelCancel     = "Отмена"
)

// Inline callback data
const (
	CallbackNewUser = "new_user"
	CallbackOldUser = "old_user"
)

var labelActions = map[string]Action{
	LabelAddWord:    ActionAddWord,
	LabelDeleteWord: ActionDeleteWord,
	LabelDictionary: ActionShowDictionary,
	LabelNext:       ActionNext,
	LabelContinue:   ActionNext,
	LabelCancel:     ActionCancel,
}

var callbackActions = map[string]Action{
	CallbackNewUser: ActionStart,
	CallbackOldUser: ActionStart,
}

// ActionFromLabel maps a keyboard label to its action
func ActionFromLabel(text string) (Action, bool) {
	a, ok := labelActions[text]
	return a, ok
}

// ActionFromCallback maps inline callback data to its action
func ActionFromCallback(data string) (Action, bool) {
	a, ok := callbackActions[data]
	return a, ok
}

// Event is one inbound interaction from a user
type Event struct {
	UserID int64
	Kind   EventKind
	Action Action
	// Text is the raw message text, also set for label-driven menu actions
	Text string
	// Name is the user's display name, used in greetings
	Name string
}

// FirstContact builds the event for /start
func FirstContact(userID int64, name string) Event {
	return Event{UserID: userID, Kind: EventFirstContact, Name: name}
}

// MenuAction builds an action event
func MenuAction(userID int64, action Action) Event {
	return Event{UserID: userID, Kind: EventMenuAction, Action: action}
}

// FromText classifies a text message as a menu action or free text
func FromText(userID int64, text string) Event {
	if a, ok := ActionFromLabel(text); ok {
		return Event{UserID: userID, Kind: EventMenuAction, Action: a, Text: text}
	}
	return Event{UserID: userID, Kind: EventFreeText, Text: text}
}
