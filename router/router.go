package router

import (
	"context"
	"fmt"
	"log/slog"

	"forge.capytal.company/capytal/dislate-relay/detector"
	"forge.capytal.company/capytal/dislate-relay/translator"
)

// Message is an incoming chat message. It is never mutated.
type Message struct {
	ChannelID string
	Content   string
	Bot       bool
}

// Routes holds the channel IDs messages are routed between.
type Routes struct {
	English string
	Russian string
	General string
	Error   string
}

type Sender interface {
	Send(ctx context.Context, channelID, text string) error
}

type LanguageDetector interface {
	DetectPrimaryLanguage(ctx context.Context, text string) (detector.Candidate, error)
}

type Options struct {
	// ReportAllFailures reports translation failures of the English and Russian
	// channels to the error channel too, instead of only returning them.
	ReportAllFailures bool
}

type Router struct {
	routes     Routes
	translator translator.Translator
	detector   LanguageDetector
	sender     Sender
	reporter   *Reporter
	opts       Options
	logger     *slog.Logger
}

func New(
	routes Routes,
	t translator.Translator,
	d LanguageDetector,
	s Sender,
	logger *slog.Logger,
	opts Options,
) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		routes:     routes,
		translator: t,
		detector:   d,
		sender:     s,
		reporter:   NewReporter(routes.Error, s, logger),
		opts:       opts,
		logger:     logger,
	}
}

// Route translates m and sends the result to the channel of the other language.
// Messages of the general channel have their language detected first, and any
// failure doing so is reported to the error channel. Messages of other channels
// are ignored.
func (r *Router) Route(ctx context.Context, m Message) error {
	if m.Bot {
		return nil
	}

	switch m.ChannelID {
	case r.routes.English:
		return r.relay(ctx, translator.EN, translator.RU, r.routes.Russian, m.Content)
	case r.routes.Russian:
		return r.relay(ctx, translator.RU, translator.EN, r.routes.English, m.Content)
	case r.routes.General:
		return r.routeGeneral(ctx, m.Content)
	default:
		r.logger.Debug("Channel has no route, ignoring", slog.String("channel", m.ChannelID))
		return nil
	}
}

func (r *Router) relay(ctx context.Context, from, to translator.Language, dest, text string) error {
	t, err := r.translate(ctx, from, to, text)
	if err != nil && r.opts.ReportAllFailures {
		return r.reporter.Report(ctx, err, text)
	} else if err != nil {
		return err
	}
	return r.send(ctx, dest, t)
}

func (r *Router) routeGeneral(ctx context.Context, text string) error {
	dest, t, failure := r.detectAndTranslate(ctx, text)
	if failure != nil {
		return r.reporter.Report(ctx, failure, text)
	}
	return r.send(ctx, dest, t)
}

func (r *Router) detectAndTranslate(ctx context.Context, text string) (dest, translated string, failure any) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("Recovered from panic while handling general channel message",
				slog.Any("value", p),
			)
			failure = p
		}
	}()

	c, err := r.detector.DetectPrimaryLanguage(ctx, text)
	if err != nil {
		return "", "", err
	}

	var from, to translator.Language
	switch translator.Language(c.Code) {
	case translator.EN:
		from, to, dest = translator.EN, translator.RU, r.routes.Russian
	case translator.RU:
		from, to, dest = translator.RU, translator.EN, r.routes.English
	default:
		return "", "", fmt.Errorf("%w: %q", ErrNoRoute, c.Code)
	}

	translated, err = r.translate(ctx, from, to, text)
	if err != nil {
		return "", "", err
	}
	return dest, translated, nil
}

func (r *Router) translate(ctx context.Context, from, to translator.Language, text string) (string, error) {
	t, err := r.translator.Translate(ctx, from, to, text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranslation, err)
	}
	return t, nil
}

func (r *Router) send(ctx context.Context, channelID, text string) error {
	if err := r.sender.Send(ctx, channelID, text); err != nil {
		return fmt.Errorf("%w: %w", ErrSend, err)
	}
	return nil
}
