package session

import (
	"crypto/sha256"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/crypto/hkdf"
)

const (
	// CookieName is the name of the signed session cookie.
	CookieName = "fitbot_session"
	idKey      = "sid"
)

// NewCookieStore builds the cookie store that carries session ids. The
// signing and encryption keys are both derived from secret.
func NewCookieStore(secret []byte, ttl time.Duration, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore(deriveKey(secret, "fitbot session hash", 64), deriveKey(secret, "fitbot session block", 32))
	store.MaxAge(int(ttl.Seconds()))
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

func deriveKey(secret []byte, info string, size int) []byte {
	key := make([]byte, size)
	// hkdf only runs dry past 255 digests
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(info)), key); err != nil {
		panic(err)
	}
	return key
}

// Store maps session cookies to in-memory controllers. Idle sessions expire
// after ttl and the least recently used ones are evicted past size.
type Store struct {
	cookies   sessions.Store
	cache     *expirable.LRU[string, *Controller]
	generator PlanGenerator
	ttl       time.Duration
	mu        sync.Mutex
}

// NewStore creates a Store holding at most size sessions.
func NewStore(cookies sessions.Store, generator PlanGenerator, size int, ttl time.Duration) *Store {
	return &Store{
		cookies:   cookies,
		cache:     expirable.NewLRU[string, *Controller](size, nil, ttl),
		generator: generator,
		ttl:       ttl,
	}
}

// Controller returns the controller of the request's session, creating the
// session (and setting its cookie) when there is none or it has expired.
func (s *Store) Controller(w http.ResponseWriter, r *http.Request) (*Controller, string, error) {
	// A cookie that fails to decode still yields a usable new session.
	sess, _ := s.cookies.Get(r, CookieName)

	id, _ := sess.Values[idKey].(string)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
		sess.Values[idKey] = id
	}

	s.mu.Lock()
	ctrl, ok := s.cache.Get(id)
	if !ok {
		ctrl = NewController(s.generator)
	}
	// re-adding refreshes the idle deadline
	s.cache.Add(id, ctrl)
	s.mu.Unlock()

	if err := sess.Save(r, w); err != nil {
		return nil, "", err
	}
	return ctrl, id, nil
}

// Len is the number of live sessions.
func (s *Store) Len() int {
	return s.cache.Len()
}

// TTL is the idle lifetime of a session.
func (s *Store) TTL() time.Duration {
	return s.ttl
}
