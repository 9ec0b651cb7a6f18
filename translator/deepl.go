package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	DeepLFreeURL = "https://api-free.deepl.com"
	DeepLProURL  = "https://api.deepl.com"
)

var (
	ErrMissingAPIKey = errors.New("Translation API key is not set")
	ErrNoTranslation = errors.New("Translation service returned no translations")
)

// DeepL translates using the DeepL REST API v2.
type DeepL struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func NewDeepL(apiKey, baseURL string, client *http.Client, logger *slog.Logger) (*DeepL, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if baseURL == "" {
		// Free account keys carry the ":fx" suffix.
		if strings.HasSuffix(apiKey, ":fx") {
			baseURL = DeepLFreeURL
		} else {
			baseURL = DeepLProURL
		}
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DeepL{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
		logger:  logger,
	}, nil
}

type deeplRequest struct {
	Text       []string `json:"text"`
	SourceLang string   `json:"source_lang"`
	TargetLang string   `json:"target_lang"`
}

type deeplResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

type deeplError struct {
	Message string `json:"message"`
}

func (t *DeepL) Translate(ctx context.Context, from, to Language, text string) (string, error) {
	body := new(bytes.Buffer)
	if err := json.NewEncoder(body).Encode(deeplRequest{
		Text:       []string{text},
		SourceLang: deeplSourceCode(from),
		TargetLang: deeplTargetCode(to),
	}); err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := t.baseURL + "/v2/translate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "DeepL-Auth-Key "+t.apiKey)

	start := time.Now()
	res, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	t.logger.Debug("DeepL request completed",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Int("status", res.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if res.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(res.Body)
		var e deeplError
		if json.Unmarshal(b, &e) == nil && e.Message != "" {
			return "", fmt.Errorf("unexpected status %d: %s", res.StatusCode, e.Message)
		}
		return "", fmt.Errorf("unexpected status %d: %s", res.StatusCode, strings.TrimSpace(string(b)))
	}

	var r deeplResponse
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(r.Translations) == 0 {
		return "", ErrNoTranslation
	}

	return r.Translations[0].Text, nil
}

func deeplSourceCode(l Language) string {
	return strings.ToUpper(l.String())
}

// DeepL deprecated the bare "EN" and "PT" targets in favour of regional variants.
func deeplTargetCode(l Language) string {
	switch l {
	case EN:
		return "EN-US"
	case "pt":
		return "PT-BR"
	default:
		return strings.ToUpper(l.String())
	}
}
