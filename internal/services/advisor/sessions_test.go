package advisor

import (
	"sync"
	"testing"
	"time"

	"github.com/findosh/advisor/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(expires time.Time) *models.Session {
	return &models.Session{
		ID:        uuid.New(),
		Profile:   &models.UserProfile{Name: "test"},
		ExpiresAt: expires,
	}
}

func TestSessionStore_GetAndDelete(t *testing.T) {
	store := NewSessionStore()
	session := testSession(time.Now().Add(time.Hour))
	store.Put(session)

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)

	store.Delete(session.ID)
	_, err = store.Get(session.ID)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestSessionStore_ExpiredIsEvicted(t *testing.T) {
	store := NewSessionStore()
	session := testSession(time.Now().Add(-time.Second))
	store.Put(session)

	_, err := store.Get(session.ID)
	assert.ErrorIs(t, err, models.ErrSessionExpired)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStore_DeleteExpired(t *testing.T) {
	store := NewSessionStore()
	store.Put(testSession(time.Now().Add(-time.Minute)))
	store.Put(testSession(time.Now().Add(-time.Hour)))
	live := testSession(time.Now().Add(time.Hour))
	store.Put(live)

	assert.Equal(t, 2, store.DeleteExpired())
	assert.Equal(t, 1, store.Len())

	_, err := store.Get(live.ID)
	assert.NoError(t, err)
}

func TestSessionStore_Concurrent(t *testing.T) {
	store := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := testSession(time.Now().Add(time.Hour))
			store.Put(s)
			_, _ = store.Get(s.ID)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}
