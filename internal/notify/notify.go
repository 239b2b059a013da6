package notify

import (
	"context"

	"github.com/avstrong/hotelbooking/internal/logger"
	"github.com/avstrong/hotelbooking/internal/reservation"
)

// LogNotifier delivers booking confirmations to the application log.
type LogNotifier struct {
	l *logger.Logger
}

func NewLogNotifier(l *logger.Logger) *LogNotifier {
	return &LogNotifier{l: l}
}

func (n *LogNotifier) Notify(ctx context.Context, booking *reservation.Booking) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	n.l.LogInfo("%s", booking.Confirmation())

	return nil
}
