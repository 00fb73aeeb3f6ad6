// pkg/mem/session_store.go
package mem

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"travelai/internal/models/domain_models"
)

// SessionStore keeps live sessions in process memory. Sessions expire
// after the configured idle TTL; there is no persistence beyond the
// chat export the user downloads.
type SessionStore interface {
	Put(s *domain_models.Session)
	Get(id string) (*domain_models.Session, bool)
	Delete(id string)
	Count() int
}

type sessionStore struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewSessionStore(ttl time.Duration) SessionStore {
	return &sessionStore{
		cache: gocache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

func (s *sessionStore) Put(sess *domain_models.Session) {
	s.cache.Set(sess.ID, sess, gocache.DefaultExpiration)
}

// Get refreshes the idle TTL on every hit so active conversations stay
// alive for as long as the user keeps talking.
func (s *sessionStore) Get(id string) (*domain_models.Session, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	sess := v.(*domain_models.Session)
	s.cache.Set(id, sess, gocache.DefaultExpiration)
	return sess, true
}

func (s *sessionStore) Delete(id string) {
	s.cache.Delete(id)
}

func (s *sessionStore) Count() int {
	return s.cache.ItemCount()
}
