package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tr, err := New(Config{Engine: EngineDeepL, APIKey: "key"})
	require.NoError(t, err)
	assert.IsType(t, &DeepL{}, tr)

	tr, err = New(Config{Engine: EngineLibreTranslate})
	require.NoError(t, err)
	assert.IsType(t, &LibreTranslate{}, tr)

	_, err = New(Config{Engine: EngineDeepL})
	require.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = New(Config{Engine: "argos"})
	require.ErrorIs(t, err, ErrUnknownEngine)
}

func TestParseEngine(t *testing.T) {
	e, err := ParseEngine("")
	require.NoError(t, err)
	assert.Equal(t, EngineDeepL, e)

	e, err = ParseEngine("libretranslate")
	require.NoError(t, err)
	assert.Equal(t, EngineLibreTranslate, e)

	_, err = ParseEngine("google")
	require.ErrorIs(t, err, ErrUnknownEngine)
}

func TestParseLanguages(t *testing.T) {
	ls, err := ParseLanguages(" EN, ru ,,")
	require.NoError(t, err)
	assert.Equal(t, []Language{EN, RU}, ls)

	_, err = ParseLanguages("en,eng")
	require.Error(t, err)

	_, err = ParseLanguages("e1")
	require.Error(t, err)
}

func TestLibreTranslate_Translate(t *testing.T) {
	client, mt := newMockClient(t)

	var got libreRequest
	mt.RegisterResponder(http.MethodPost, "http://libre.local/translate",
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&got); err != nil {
				return nil, err
			}
			return httpmock.NewStringResponse(http.StatusOK, `{"translatedText":"Привет"}`), nil
		},
	)

	lt := NewLibreTranslate("http://libre.local/", "", client, nil)
	text, err := lt.Translate(context.Background(), EN, RU, "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Привет", text)
	assert.Equal(t, libreRequest{Q: "Hello", Source: "en", Target: "ru", Format: "text"}, got)
}

func TestLibreTranslate_Translate_Error(t *testing.T) {
	client, mt := newMockClient(t)
	mt.RegisterResponder(http.MethodPost, DefaultLibreTranslateURL+"/translate",
		httpmock.NewStringResponder(http.StatusBadRequest, `{"error":"ru is not supported"}`))

	lt := NewLibreTranslate("", "", client, nil)
	_, err := lt.Translate(context.Background(), EN, RU, "Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ru is not supported")
}

func TestMockTranslator(t *testing.T) {
	text, err := NewMockTranslator().Translate(context.Background(), EN, RU, "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello", text)
}
