package handler

import (
	"strings"
	"unicode"

	"wordtrainer/internal/dialog"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// callbackAction resolves an inline button press by Unique first, then by
// Data for buttons whose Unique did not come through
func callbackAction(cb *tele.Callback) (dialog.Action, bool) {
	if action, ok := dialog.ActionFromCallback(cleanCallbackData(cb.Unique)); ok {
		return action, true
	}
	return dialog.ActionFromCallback(cleanCallbackData(cb.Data))
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Always acknowledge so the client stops the button spinner
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	action, ok := callbackAction(callback)
	if !ok {
		h.logger.Warn("Unhandled callback",
			zap.String("data", cleanCallbackData(callback.Data)),
			zap.String("unique", callback.Unique),
			zap.Int64("user_id", c.Sender().ID),
		)
		return nil
	}

	return h.deliver(c, h.dialog.Handle(dialog.MenuAction(c.Sender().ID, action)))
}
