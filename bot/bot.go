package bot

import (
	"context"
	"errors"
	"log/slog"

	"forge.capytal.company/capytal/dislate-relay/bot/events"

	dgo "github.com/bwmarrin/discordgo"
)

var ErrNoRouter = errors.New("Bot needs a router to start")

type Bot struct {
	session *dgo.Session
	logger  *slog.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewBot(token string, log *slog.Logger) (*Bot, error) {
	s, err := dgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = dgo.IntentsGuilds | dgo.IntentsGuildMessages | dgo.IntentsMessageContent

	ctx, cancel := context.WithCancel(context.Background())

	return &Bot{
		session: s,
		logger:  log,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Sender sends messages through the bot's session.
func (b *Bot) Sender() *Sender {
	return NewSender(b.session)
}

func (b *Bot) Start(r events.Router) error {
	if r == nil {
		return ErrNoRouter
	}

	b.registerEventHandlers(r)

	return b.session.Open()
}

// Stop cancels in-flight message handling and closes the gateway connection.
func (b *Bot) Stop() error {
	b.cancel()
	return b.session.Close()
}
