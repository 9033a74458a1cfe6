package session

import (
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"zanara/internal/models"
)

func TestBeginInstallsSession(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Authenticated())

	s.Begin("tok-1", &models.AccountUser{ID: "u1"})
	assert.True(t, s.Authenticated())
	assert.Equal(t, "tok-1", s.Token())
	assert.Equal(t, "u1", s.User().ID)
}

func TestInvalidateFiresHooksOnce(t *testing.T) {
	s := NewStore()
	s.Begin("tok-1", &models.AccountUser{ID: "u1"})

	var mu sync.Mutex
	fired := 0
	s.OnInvalidated(func() {
		mu.Lock()
		fired++
		mu.Unlock()
	})

	// Concurrent 401s race into Invalidate; the teardown runs once.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Invalidate()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, fired)
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.User())

	// Invalidate on an empty session is a no-op.
	s.Invalidate()
	assert.Equal(t, 1, fired)
}

func TestNewSessionReArmsHooks(t *testing.T) {
	s := NewStore()
	fired := 0
	s.OnInvalidated(func() { fired++ })

	s.Begin("tok-1", &models.AccountUser{ID: "u1"})
	s.Clear()
	assert.Equal(t, 1, fired)

	// A fresh login resets the once-guard.
	s.Begin("tok-2", &models.AccountUser{ID: "u1"})
	s.Invalidate()
	assert.Equal(t, 2, fired)
}

func TestExpiresAt(t *testing.T) {
	s := NewStore()
	assert.True(t, s.ExpiresAt().IsZero(), "no session, no expiry")

	s.Begin("opaque-token", nil)
	assert.True(t, s.ExpiresAt().IsZero(), "opaque tokens have no readable exp")

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("irrelevant"))
	assert.NoError(t, err)

	s.Begin(signed, nil)
	assert.Equal(t, exp.Unix(), s.ExpiresAt().Unix())
}
