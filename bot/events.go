package bot

import (
	"fmt"
	"log/slog"

	"forge.capytal.company/capytal/dislate-relay/bot/events"

	dgo "github.com/bwmarrin/discordgo"
)

func w[E any](h events.EventHandler[E], log *slog.Logger) func(*dgo.Session, E) {
	return func(s *dgo.Session, ev E) {
		defer func() {
			if p := recover(); p != nil {
				log.Error("Recovered from panic while handling event",
					slog.String("event", fmt.Sprintf("%T", ev)),
					slog.Any("value", p),
				)
			}
		}()

		if err := h.Serve(s, ev); err != nil {
			err.Log()
		}
	}
}

func (b *Bot) registerEventHandlers(r events.Router) {
	ehs := []any{
		w[*dgo.Ready](events.NewReady(b.logger), b.logger),
		w[*dgo.MessageCreate](events.NewMessageCreate(b.ctx, r, b.logger), b.logger),
	}
	for _, h := range ehs {
		b.session.AddHandler(h)
	}
}
