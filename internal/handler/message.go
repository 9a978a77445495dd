package handler

import (
	"strings"

	"wordtrainer/internal/dialog"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("username", sender.Username),
	)

	return h.deliver(c, h.dialog.Handle(dialog.FirstContact(sender.ID, sender.FirstName)))
}

// handleText forwards answers, word entries and keyboard labels
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	return h.deliver(c, h.dialog.Handle(dialog.FromText(c.Sender().ID, text)))
}
