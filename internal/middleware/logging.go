package middleware

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// LoggingMiddleware tags every update with a request id and logs one line
// when its handler returns
func LoggingMiddleware(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			rid := uuid.NewString()
			c.Set("rid", rid)
			start := time.Now()

			err := next(c)

			fields := []zap.Field{
				zap.String("rid", rid),
				zap.Int("update_id", c.Update().ID),
				zap.String("kind", updateKind(c.Update())),
				zap.Duration("duration", time.Since(start)),
			}
			if sender := c.Sender(); sender != nil {
				fields = append(fields, zap.Int64("user_id", sender.ID))
			}

			if err != nil {
				logger.Warn("Update handled with error", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}

func updateKind(u tele.Update) string {
	switch {
	case u.Callback != nil:
		return "callback"
	case u.Message != nil && u.Message.Text != "" && u.Message.Text[0] == '/':
		return "command"
	case u.Message != nil:
		return "message"
	default:
		return "other"
	}
}
