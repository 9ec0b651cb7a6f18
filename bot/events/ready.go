package events

import (
	"log/slog"

	"forge.capytal.company/capytal/dislate-relay/bot/events/errors"

	dgo "github.com/bwmarrin/discordgo"
)

type Ready struct {
	log *slog.Logger
}

func NewReady(log *slog.Logger) Ready {
	return Ready{log}
}

func (h Ready) Serve(s *dgo.Session, ev *dgo.Ready) errors.EventErr {
	if ev.User == nil {
		return nil
	}
	h.log.Info("Ready! Logged in as "+ev.User.String(),
		slog.String("session", ev.SessionID),
		slog.Int("guilds", len(ev.Guilds)),
	)
	return nil
}
