package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"forge.capytal.company/capytal/dislate-relay/router"
	"forge.capytal.company/capytal/dislate-relay/translator"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

var (
	ErrMissing   = errors.New("Required configuration value is not set")
	ErrInvalid   = errors.New("Configuration value is invalid")
	ErrDuplicate = errors.New("Channel IDs must be distinct")
)

const (
	DefaultValidLanguages     = "en,ru"
	DefaultDetectionLanguages = "en,ru,uk,be,de,fr,es,it,pt,pl"
)

// Config is loaded once at startup and never modified afterwards.
type Config struct {
	DiscordToken string

	Engine         translator.Engine
	APIKey         string
	TranslationURL string

	Routes router.Routes

	ValidLanguages     []translator.Language
	DetectionLanguages []translator.Language
	PreloadModels      bool

	ReportAllFailures bool

	LogLevel log.Level
}

// Load reads the configuration from the environment, after loading the .env file of
// the working directory if there is one.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("Failed to load .env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	var errs []error

	required := func(key string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissing, key))
		}
		return v
	}
	withDefault := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}
	boolean := func(key string) bool {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return false
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q", ErrInvalid, key, v))
		}
		return b
	}

	c := Config{
		// An empty token is not checked here, the gateway rejects it on login.
		DiscordToken:   strings.TrimSpace(getenv("DISCORD_TOKEN")),
		TranslationURL: strings.TrimSpace(getenv("TRANSLATION_URL")),
		Routes: router.Routes{
			English: required("ENGLISH_CHANNEL_ID"),
			Russian: required("RUSSIAN_CHANNEL_ID"),
			General: required("GENERAL_CHANNEL_ID"),
			Error:   required("ERROR_CHANNEL_ID"),
		},
		PreloadModels:     boolean("PRELOAD_LANGUAGE_MODELS"),
		ReportAllFailures: boolean("REPORT_ALL_FAILURES"),
	}

	e, err := translator.ParseEngine(strings.ToLower(withDefault("TRANSLATION_ENGINE", string(translator.EngineDeepL))))
	if err != nil {
		errs = append(errs, errors.Join(ErrInvalid, err))
	}
	c.Engine = e

	switch c.Engine {
	case translator.EngineDeepL:
		c.APIKey = required("DEEPL_API_KEY")
	case translator.EngineLibreTranslate:
		c.APIKey = strings.TrimSpace(getenv("LIBRETRANSLATE_API_KEY"))
		c.TranslationURL = withDefault("LIBRETRANSLATE_URL", c.TranslationURL)
	}

	if c.ValidLanguages, err = translator.ParseLanguages(withDefault("VALID_LANGUAGES", DefaultValidLanguages)); err != nil {
		errs = append(errs, errors.Join(ErrInvalid, err))
	} else if len(c.ValidLanguages) == 0 {
		errs = append(errs, fmt.Errorf("%w: VALID_LANGUAGES is empty", ErrInvalid))
	}

	if c.DetectionLanguages, err = translator.ParseLanguages(
		withDefault("DETECTION_LANGUAGES", DefaultDetectionLanguages),
	); err != nil {
		errs = append(errs, errors.Join(ErrInvalid, err))
	}

	if c.LogLevel, err = log.ParseLevel(withDefault("LOG_LEVEL", "info")); err != nil {
		errs = append(errs, errors.Join(ErrInvalid, err))
	}

	if r := c.Routes; r.English != "" && r.Russian != "" && r.General != "" && r.Error != "" {
		ids := map[string]struct{}{r.English: {}, r.Russian: {}, r.General: {}, r.Error: {}}
		if len(ids) != 4 {
			errs = append(errs, ErrDuplicate)
		}
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return c, nil
}
