package events

import (
	"context"
	"log/slog"

	"forge.capytal.company/capytal/dislate-relay/bot/events/errors"
	"forge.capytal.company/capytal/dislate-relay/router"

	dgo "github.com/bwmarrin/discordgo"
)

type MessageCreate struct {
	ctx    context.Context
	router Router
	log    *slog.Logger
}

func NewMessageCreate(ctx context.Context, r Router, log *slog.Logger) MessageCreate {
	return MessageCreate{ctx, r, log}
}

func (h MessageCreate) Serve(s *dgo.Session, ev *dgo.MessageCreate) errors.EventErr {
	if ev.Message == nil || ev.Author == nil || ev.Author.Bot {
		return nil
	}
	if ev.Type != dgo.MessageTypeDefault && ev.Type != dgo.MessageTypeReply {
		return nil
	}
	if ev.Content == "" {
		h.log.Debug("Message has no text content, ignoring.",
			slog.String("channel", ev.ChannelID),
			slog.String("message", ev.ID),
		)
		return nil
	}

	err := h.router.Route(h.ctx, router.Message{
		ChannelID: ev.ChannelID,
		Content:   ev.Content,
		Bot:       ev.Author.Bot,
	})
	if err != nil {
		everr := errors.NewMessageErr[*dgo.MessageCreate](ev.Message, h.log)
		everr.AddData("Kind", router.KindOf(err).String())
		return everr.Join(err)
	}

	return nil
}
