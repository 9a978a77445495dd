package dialog

import (
	"fmt"
	"strings"

	"wordtrainer/internal/domain"
)

// Prompt is one outbound message
type Prompt struct {
	Text string
	// Keyboard holds reply keyboard rows; nil leaves the current keyboard
	Keyboard [][]string
	Inline   []InlineButton
}

// InlineButton is a button attached to the message itself
type InlineButton struct {
	Text string
	Data string
}

const (
	textFailure       = "Произошла ошибка, попробуйте позже"
	textNoWords       = "У вас пока нет слов для тренировки. Добавьте новые слова в словарь."
	textNoPersonal    = "У вас пока нет слов в персональном словаре."
	textEmptyPersonal = "Ваш персональный словарь пуст."
	textAddHint       = "Введите новое слово в формате: английское слово - русский перевод\nНапример: apple - яблоко"
	textAddFormat     = "Неправильный формат. Пожалуйста, введите слово в формате: английское слово - русский перевод"
	textAddCancelled  = "Добавление слова отменено."
	textAddDuplicate  = "⚠️ Это слово уже существует в вашем словаре."
	textDeleteChoose  = "Выберите слово для удаления:"
	textDeleteFormat  = "Ошибка формата. Пожалуйста, выберите слово из списка."
	textDeleteCancel  = "Удаление слова отменено."
	textDeleteMissing = "⚠️ Слово не найдено в вашем словаре."
	textChooseAction  = "Выберите действие:"
)

var (
	mainActionsRow = []string{LabelAddWord, LabelDeleteWord, LabelDictionary, LabelNext}
	dictionaryRow  = []string{LabelContinue, LabelAddWord, LabelDeleteWord}
)

func greetNewPrompt(name string) Prompt {
	return Prompt{
		Text: fmt.Sprintf("Привет %s👋.\n"+
			"Давай попрактикуемся в английском языке. Тренировки можешь проходить в удобном для себя темпе. "+
			"У тебя есть возможность использовать тренажёр, как конструктор, и собирать свою собственную базу для обучения. "+
			"Для этого воспользуйся инструментами:\n\n"+
			"добавить слово ➕,\n"+
			"удалить слово 🔙.\n\n"+
			"Ну что, начнём ⬇️", name),
		Inline: []InlineButton{{Text: "Начать тренировку 📝", Data: CallbackNewUser}},
	}
}

func greetReturningPrompt(name string) Prompt {
	return Prompt{
		Text:   fmt.Sprintf("С возвращением %s👋.\nДавай продолжим практиковаться в английском языке", name),
		Inline: []InlineButton{{Text: "Продолжить тренировку 📝", Data: CallbackOldUser}},
	}
}

func roundPrompt(translation string, options []string) Prompt {
	return Prompt{
		Text:     "Переведи слово " + translation,
		Keyboard: [][]string{options, mainActionsRow},
	}
}

func noWordsPrompt() Prompt {
	return Prompt{
		Text:     textNoWords,
		Keyboard: [][]string{{LabelAddWord, LabelDictionary}},
	}
}

func failurePrompt() Prompt {
	return Prompt{
		Text:     textFailure,
		Keyboard: [][]string{mainActionsRow},
	}
}

func correctPrompt(p domain.WordPair) Prompt {
	return Prompt{Text: "✅ Правильно! " + p.String()}
}

func wrongPrompt(p domain.WordPair) Prompt {
	return Prompt{Text: "❌ Неверно. Правильный ответ: " + p.String()}
}

func addPrompt() Prompt {
	return Prompt{
		Text:     textAddHint,
		Keyboard: [][]string{{LabelCancel}},
	}
}

func addedPrompt(p domain.WordPair) Prompt {
	return Prompt{Text: fmt.Sprintf("✅ Слово '%s' успешно добавлено в ваш словарь!", p)}
}

func deleteListPrompt(words []domain.WordPair) Prompt {
	rows := make([][]string, 0, len(words)+1)
	for _, w := range words {
		rows = append(rows, []string{w.String()})
	}
	rows = append(rows, []string{LabelCancel})
	return Prompt{Text: textDeleteChoose, Keyboard: rows}
}

func deletedPrompt(en string) Prompt {
	return Prompt{Text: fmt.Sprintf("🗑️ Слово '%s' удалено из вашего словаря.", en)}
}

func dictionaryPrompt(words []domain.WordPair) Prompt {
	if len(words) == 0 {
		return Prompt{Text: textEmptyPersonal}
	}

	var b strings.Builder
	b.WriteString("📚 Ваш персональный словарь:\n\n")
	for i, w := range words {
		fmt.Fprintf(&b, "%d. %s\n", i+1, w)
	}
	return Prompt{Text: b.String()}
}

func dictionaryActionsPrompt() Prompt {
	return Prompt{
		Text:     textChooseAction,
		Keyboard: [][]string{dictionaryRow},
	}
}

func textPrompt(text string) Prompt {
	return Prompt{Text: text}
}
