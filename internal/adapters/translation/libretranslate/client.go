package libretranslate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-registry/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("libretranslate client not configured")
	ErrUpstream      = errors.New("libretranslate upstream error")
)

// Config del cliente LibreTranslate.
// BaseURL y APIKey normalmente vendrán de env vars en el servicio que lo
// instancie. Las instancias públicas no piden API key.
type Config struct {
	BaseURL string
	APIKey  string

	// Timeout HTTP de cada traducción. Si es cero, se usan 5s.
	Timeout time.Duration
}

// Client implementa translation.Translator contra LibreTranslate.
// Sin BaseURL queda "no configurado": Translate devuelve ErrNotConfigured
// y el caller decide el fallback (el service de pets cae al texto original).
type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) *Client {
	c := &Client{apiKey: strings.TrimSpace(cfg.APIKey)}

	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return c
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.New(base, timeout)
	if err != nil {
		// URL inválida: el cliente queda sin configurar
		return c
	}
	c.http = hc

	return c
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate llama a POST /translate de LibreTranslate.
// La API key viaja en el body (convención de LibreTranslate, no header).
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if strings.TrimSpace(source) == "" || strings.TrimSpace(target) == "" {
		return "", fmt.Errorf("%w: source/target language missing", ErrUpstream)
	}

	req := translateRequest{
		Q:      text,
		Source: source,
		Target: target,
		Format: "text",
		APIKey: c.apiKey,
	}

	var out translateResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, "/translate", nil, req, &out); err != nil {
		var herr *httpclient.HTTPError
		if errors.As(err, &herr) {
			return "", fmt.Errorf("%w: status=%d", ErrUpstream, herr.StatusCode)
		}
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if strings.TrimSpace(out.TranslatedText) == "" {
		return "", fmt.Errorf("%w: empty translation", ErrUpstream)
	}
	return out.TranslatedText, nil
}
