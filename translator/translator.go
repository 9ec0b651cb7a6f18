package translator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type Translator interface {
	// Translate a text from a language to another language
	Translate(ctx context.Context, from, to Language, text string) (string, error)
}

type Engine string

const (
	EngineDeepL          Engine = "deepl"
	EngineLibreTranslate Engine = "libretranslate"
)

const DefaultTimeout = 30 * time.Second

var ErrUnknownEngine = errors.New("Unknown translation engine")

type Config struct {
	Engine Engine
	// APIKey is required by DeepL and optional for LibreTranslate.
	APIKey string
	// BaseURL overrides the engine's default endpoint.
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func New(cfg Config) (Translator, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}

	cfg.Logger.Debug("Creating translator",
		slog.String("engine", string(cfg.Engine)),
		slog.String("base_url", cfg.BaseURL),
	)

	switch cfg.Engine {
	case EngineDeepL, "":
		return NewDeepL(cfg.APIKey, cfg.BaseURL, cfg.HTTPClient, cfg.Logger)
	case EngineLibreTranslate:
		return NewLibreTranslate(cfg.BaseURL, cfg.APIKey, cfg.HTTPClient, cfg.Logger), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, cfg.Engine)
	}
}

func ParseEngine(s string) (Engine, error) {
	switch e := Engine(s); e {
	case EngineDeepL, EngineLibreTranslate:
		return e, nil
	case "":
		return EngineDeepL, nil
	default:
		return "", fmt.Errorf("%w: %s (supported: deepl, libretranslate)", ErrUnknownEngine, s)
	}
}

type MockTranslator struct{}

func NewMockTranslator() MockTranslator {
	return MockTranslator{}
}

func (t MockTranslator) Translate(_ context.Context, from, to Language, text string) (string, error) {
	return text, nil
}
