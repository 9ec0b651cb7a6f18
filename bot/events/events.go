package events

import (
	"context"

	"forge.capytal.company/capytal/dislate-relay/bot/events/errors"
	"forge.capytal.company/capytal/dislate-relay/router"

	dgo "github.com/bwmarrin/discordgo"
)

type EventHandler[E any] interface {
	Serve(*dgo.Session, E) errors.EventErr
}

type Router interface {
	Route(ctx context.Context, m router.Message) error
}
