package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Loader retrieves the content document from a local file or an http(s) URL.
// Every call performs a fresh retrieval; nothing is cached between calls.
type Loader struct {
	source string
	client *http.Client
	logger zerolog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient overrides the client used for URL sources.
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// NewLoader creates a Loader for the given source.
func NewLoader(source string, logger zerolog.Logger, opts ...LoaderOption) *Loader {
	l := &Loader{
		source: strings.TrimSpace(source),
		client: &http.Client{},
		logger: logger.With().Str("component", "content").Logger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the configured location of the content document.
func (l *Loader) Source() string { return l.source }

// IsLocal reports whether the source is a file on disk rather than a URL.
func (l *Loader) IsLocal() bool {
	return !isURL(l.source)
}

// Load retrieves the document. Any failure is logged and reported as nil,
// which callers treat as "no content available".
func (l *Loader) Load(ctx context.Context) *Document {
	doc, err := l.Fetch(ctx)
	if err != nil {
		l.logger.Error().Err(err).Str("source", l.source).Msg("error loading content")
		return nil
	}

	// Issues repeat on every request; `deckshelf check` reports them properly.
	for _, issue := range Validate(doc) {
		l.logger.Debug().Str("source", l.source).Msg(issue.String())
	}

	l.logger.Debug().
		Str("source", l.source).
		Int("folders", len(doc.Folders)).
		Int("presentations", doc.PresentationCount()).
		Msg("content loaded")
	return doc
}

// Fetch retrieves and decodes the document, returning the failure instead of
// swallowing it.
func (l *Loader) Fetch(ctx context.Context) (*Document, error) {
	var (
		data []byte
		err  error
	)
	if l.IsLocal() {
		data, err = os.ReadFile(l.source)
		if err != nil {
			return nil, fmt.Errorf("reading content file: %w", err)
		}
	} else {
		data, err = l.fetchURL(ctx)
		if err != nil {
			return nil, err
		}
	}
	return Decode(data)
}

func (l *Loader) fetchURL(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("building content request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to load content: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading content response: %w", err)
	}
	return data, nil
}

// Decode parses a content document.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	return &doc, nil
}

func isURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
