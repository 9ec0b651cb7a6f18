package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	eerrors "forge.capytal.company/capytal/dislate-relay/bot/events/errors"
	"forge.capytal.company/capytal/dislate-relay/router"

	dgo "github.com/bwmarrin/discordgo"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*dgo.Session, *httpmock.MockTransport) {
	t.Helper()

	s, err := dgo.New("Bot token")
	require.NoError(t, err)

	mt := httpmock.NewMockTransport()
	s.Client = &http.Client{Transport: mt}

	require.NoError(t, s.State.GuildAdd(&dgo.Guild{ID: "g1"}))
	require.NoError(t, s.State.ChannelAdd(&dgo.Channel{ID: "c1", GuildID: "g1", Type: dgo.ChannelTypeGuildText}))

	return s, mt
}

func TestNewBot(t *testing.T) {
	b, err := NewBot("token", slog.Default())
	require.NoError(t, err)
	assert.Equal(t, "Bot token", b.session.Token)
	assert.Equal(t,
		dgo.IntentsGuilds|dgo.IntentsGuildMessages|dgo.IntentsMessageContent,
		b.session.Identify.Intents,
	)
	assert.NotNil(t, b.Sender())
	assert.ErrorIs(t, b.Start(nil), ErrNoRouter)
}

func TestSender_Send(t *testing.T) {
	s, mt := newTestSession(t)

	var content string
	mt.RegisterResponder(http.MethodPost, dgo.EndpointChannelMessages("c1"),
		func(req *http.Request) (*http.Response, error) {
			var body struct {
				Content string `json:"content"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				return nil, err
			}
			content = body.Content
			return httpmock.NewJsonResponse(http.StatusOK, map[string]string{
				"id":         "m1",
				"channel_id": "c1",
				"content":    body.Content,
			})
		},
	)

	err := NewSender(s).Send(context.Background(), "c1", "Привет")
	require.NoError(t, err)
	assert.Equal(t, "Привет", content)
	assert.Equal(t, 1, mt.GetTotalCallCount())
}

func TestSender_Send_NotCached(t *testing.T) {
	s, mt := newTestSession(t)

	err := NewSender(s).Send(context.Background(), "unknown", "Hello")
	require.ErrorIs(t, err, ErrChannelNotCached)
	assert.ErrorIs(t, err, dgo.ErrStateNotFound)
	assert.Zero(t, mt.GetTotalCallCount())
}

func TestSender_Send_Rejected(t *testing.T) {
	s, mt := newTestSession(t)
	mt.RegisterResponder(http.MethodPost, dgo.EndpointChannelMessages("c1"),
		httpmock.NewStringResponder(http.StatusForbidden, `{"message":"Missing Access","code":50001}`))

	err := NewSender(s).Send(context.Background(), "c1", "Hello")
	require.Error(t, err)

	var rerr *dgo.RESTError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, http.StatusForbidden, rerr.Response.StatusCode)
}

type handlerFunc func(*dgo.Session, *dgo.MessageCreate) eerrors.EventErr

func (f handlerFunc) Serve(s *dgo.Session, ev *dgo.MessageCreate) eerrors.EventErr {
	return f(s, ev)
}

func TestW_LogsErrors(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	ev := &dgo.MessageCreate{Message: &dgo.Message{ID: "m1", ChannelID: "c1"}}
	h := handlerFunc(func(_ *dgo.Session, ev *dgo.MessageCreate) eerrors.EventErr {
		return eerrors.NewMessageErr[*dgo.MessageCreate](ev.Message, log).
			Join(errors.Join(router.ErrTranslation, errors.New("quota exceeded")))
	})

	w[*dgo.MessageCreate](h, log)(nil, ev)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "quota exceeded")
}

func TestW_RecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	h := handlerFunc(func(*dgo.Session, *dgo.MessageCreate) eerrors.EventErr {
		panic("boom")
	})

	assert.NotPanics(t, func() {
		w[*dgo.MessageCreate](h, log)(nil, &dgo.MessageCreate{})
	})
	assert.Contains(t, buf.String(), "Recovered from panic")
}
