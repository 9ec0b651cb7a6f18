package errors

import (
	"log/slog"

	dgo "github.com/bwmarrin/discordgo"
)

type MessageErr[E any] struct {
	*defaultEventErr[E]
}

func NewMessageErr[E any](msg *dgo.Message, log *slog.Logger) MessageErr[E] {
	data := map[string]any{
		"MessageID": msg.ID,
		"ChannelID": msg.ChannelID,
		"GuildID":   msg.GuildID,
	}
	if msg.Author != nil {
		data["AuthorID"] = msg.Author.ID
	}

	return MessageErr[E]{&defaultEventErr[E]{
		data:   data,
		logger: log,
	}}
}
