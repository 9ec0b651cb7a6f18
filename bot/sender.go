package bot

import (
	"context"
	"errors"
	"fmt"

	dgo "github.com/bwmarrin/discordgo"
)

var ErrChannelNotCached = errors.New("Channel is not in the session state")

// Sender posts text to channels already known by the session state. Channels are
// never fetched from the API.
type Sender struct {
	session *dgo.Session
}

func NewSender(s *dgo.Session) *Sender {
	return &Sender{s}
}

func (s *Sender) Send(ctx context.Context, channelID, text string) error {
	if s.session.State == nil {
		return fmt.Errorf("%w: %s, state is disabled", ErrChannelNotCached, channelID)
	}

	ch, err := s.session.State.Channel(channelID)
	if err != nil {
		return errors.Join(fmt.Errorf("%w: %s", ErrChannelNotCached, channelID), err)
	}

	_, err = s.session.ChannelMessageSend(ch.ID, text, dgo.WithContext(ctx))
	return err
}
