package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelai/internal/models/domain_models"
)

func TestSessionStorePutGetDelete(t *testing.T) {
	store := NewSessionStore(time.Hour)
	sess := domain_models.NewSession()

	store.Put(sess)
	assert.Equal(t, 1, store.Count())

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	store.Delete(sess.ID)
	_, ok = store.Get(sess.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Count())
}

func TestSessionStoreMiss(t *testing.T) {
	store := NewSessionStore(time.Hour)

	got, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore(20 * time.Millisecond)
	sess := domain_models.NewSession()
	store.Put(sess)

	time.Sleep(50 * time.Millisecond)

	_, ok := store.Get(sess.ID)
	assert.False(t, ok)
}
