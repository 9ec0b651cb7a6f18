package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const DefaultLibreTranslateURL = "http://localhost:5000"

// LibreTranslate translates using a self-hosted LibreTranslate server.
type LibreTranslate struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

func NewLibreTranslate(baseURL, apiKey string, client *http.Client, logger *slog.Logger) *LibreTranslate {
	if baseURL == "" {
		baseURL = DefaultLibreTranslateURL
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LibreTranslate{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
		logger:  logger,
	}
}

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

func (t *LibreTranslate) Translate(ctx context.Context, from, to Language, text string) (string, error) {
	body := new(bytes.Buffer)
	if err := json.NewEncoder(body).Encode(libreRequest{
		Q:      text,
		Source: from.String(),
		Target: to.String(),
		Format: "text",
		APIKey: t.apiKey,
	}); err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/translate", body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	res, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	t.logger.Debug("LibreTranslate request completed",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Int("status", res.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if res.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(res.Body)
		var r libreResponse
		if json.Unmarshal(b, &r) == nil && r.Error != "" {
			return "", fmt.Errorf("unexpected status %d: %s", res.StatusCode, r.Error)
		}
		return "", fmt.Errorf("unexpected status %d: %s", res.StatusCode, strings.TrimSpace(string(b)))
	}

	var r libreResponse
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return r.TranslatedText, nil
}
