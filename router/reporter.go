package router

import (
	"context"
	"fmt"
	"log/slog"
)

// UnknownError is reported in place of failures that are not errors, like
// recovered panic values.
const UnknownError = "unknown error"

type Reporter struct {
	channelID string
	sender    Sender
	logger    *slog.Logger
}

func NewReporter(channelID string, sender Sender, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{channelID, sender, logger}
}

// Report sends "<description>: <text>" to the error channel.
func (r *Reporter) Report(ctx context.Context, failure any, text string) error {
	var msg string
	if err, ok := failure.(error); ok && err != nil {
		msg = fmt.Sprintf("%s: %s", err.Error(), text)
		r.logger.Warn("Reporting failure",
			slog.String("kind", KindOf(err).String()),
			slog.String("err", err.Error()),
		)
	} else {
		msg = UnknownError
		r.logger.Warn("Reporting unknown failure", slog.Any("value", failure))
	}

	if err := r.sender.Send(ctx, r.channelID, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrSend, err)
	}
	return nil
}
