package handler

import (
	"wordtrainer/internal/dialog"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Dialog turns chat events into prompts
type Dialog interface {
	Handle(ev dialog.Event) []dialog.Prompt
}

// Handler manages all bot interactions
type Handler struct {
	bot    *tele.Bot
	dialog Dialog
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, d Dialog, logger *zap.Logger) *Handler {
	return &Handler{
		bot:    bot,
		dialog: d,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages, including reply keyboard labels
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// deliver sends prompts in order and stops at the first failed send
func (h *Handler) deliver(c tele.Context, prompts []dialog.Prompt) error {
	for _, p := range prompts {
		var err error
		if markup := render(p); markup != nil {
			err = c.Send(p.Text, markup)
		} else {
			err = c.Send(p.Text)
		}
		if err != nil {
			h.logger.Error("Failed to send message",
				zap.Error(err),
				zap.Int64("user_id", c.Sender().ID),
			)
			return err
		}
	}
	return nil
}

// render builds the markup for a prompt; nil keeps the current keyboard
func render(p dialog.Prompt) *tele.ReplyMarkup {
	switch {
	case len(p.Inline) > 0:
		markup := &tele.ReplyMarkup{}
		rows := make([]tele.Row, 0, len(p.Inline))
		for _, b := range p.Inline {
			rows = append(rows, markup.Row(markup.Data(b.Text, b.Data)))
		}
		markup.Inline(rows...)
		return markup

	case len(p.Keyboard) > 0:
		markup := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
		rows := make([]tele.Row, 0, len(p.Keyboard))
		for _, labels := range p.Keyboard {
			row := make(tele.Row, 0, len(labels))
			for _, label := range labels {
				row = append(row, markup.Text(label))
			}
			rows = append(rows, row)
		}
		markup.Reply(rows...)
		return markup
	}
	return nil
}
