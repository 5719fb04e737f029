package theme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/deckshelf/internal/db"
)

const cookieMaxAge = 365 * 24 * 60 * 60

// Store persists a visitor's theme between page loads.
type Store interface {
	Load(r *http.Request) State
	Save(w http.ResponseWriter, r *http.Request, s State) error
}

// CookieStore keeps the theme in a cookie named "theme".
type CookieStore struct{}

// NewCookieStore creates a CookieStore.
func NewCookieStore() *CookieStore {
	return &CookieStore{}
}

// Load reads the theme cookie.
func (CookieStore) Load(r *http.Request) State {
	c, err := r.Cookie(Key)
	if err != nil {
		return None
	}
	return Parse(c.Value)
}

// Save writes the theme cookie. It is readable by scripts so the page can
// apply the class before first paint.
func (CookieStore) Save(w http.ResponseWriter, _ *http.Request, s State) error {
	http.SetCookie(w, &http.Cookie{
		Name:     Key,
		Value:    string(s),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
		HttpOnly: false,
	})
	return nil
}

// VisitorCookie names the cookie holding the anonymous visitor ID.
const VisitorCookie = "visitor"

// PreferenceStore keeps the theme in SQLite, keyed by an anonymous visitor ID
// carried in a cookie.
type PreferenceStore struct {
	db  *db.DB
	now func() time.Time
}

// NewPreferenceStore creates a PreferenceStore backed by the given database.
func NewPreferenceStore(database *db.DB) *PreferenceStore {
	return &PreferenceStore{db: database, now: time.Now}
}

// Load looks up the visitor's stored theme. Visitors without an ID, or
// without a stored value, get None.
func (s *PreferenceStore) Load(r *http.Request) State {
	id, ok := visitorID(r)
	if !ok {
		return None
	}
	v, err := s.Get(r.Context(), id, Key)
	if err != nil {
		return None
	}
	return Parse(v)
}

// Save stores the theme, minting a visitor ID first if the request has none.
func (s *PreferenceStore) Save(w http.ResponseWriter, r *http.Request, st State) error {
	id, ok := visitorID(r)
	if !ok {
		id = uuid.New().String()
		http.SetCookie(w, &http.Cookie{
			Name:     VisitorCookie,
			Value:    id,
			Path:     "/",
			MaxAge:   cookieMaxAge,
			SameSite: http.SameSiteLaxMode,
			HttpOnly: true,
		})
	}
	return s.Set(r.Context(), id, Key, string(st))
}

// Get returns a stored preference value, or sql.ErrNoRows.
func (s *PreferenceStore) Get(ctx context.Context, visitorID, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE visitor_id = ? AND key = ?`,
		visitorID, key,
	).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", err
		}
		return "", fmt.Errorf("reading preference %s: %w", key, err)
	}
	return v, nil
}

// Set upserts a preference value.
func (s *PreferenceStore) Set(ctx context.Context, visitorID, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(visitor_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		visitorID, key, value, s.now().UTC().Format(time.DateTime),
	)
	if err != nil {
		return fmt.Errorf("saving preference %s: %w", key, err)
	}
	return nil
}

func visitorID(r *http.Request) (string, bool) {
	c, err := r.Cookie(VisitorCookie)
	if err != nil {
		return "", false
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return "", false
	}
	return c.Value, true
}
