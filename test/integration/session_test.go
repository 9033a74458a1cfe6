package integration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"zanara/internal/models"
	"zanara/internal/services"
	"zanara/pkg/apperrors"
	"zanara/test/helpers"
)

// A rejected token must tear the session down exactly once, no matter how
// many requests fail with it.
func TestSessionInvalidatedOnceOn401(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	sess, client := ts.NewClientStack()
	sess.Begin("expired-or-forged-token", &models.AccountUser{ID: "ghost"})

	fired := 0
	sess.OnInvalidated(func() { fired++ })

	profiles := services.NewProfileService(client)
	for i := 0; i < 3; i++ {
		_, err := profiles.GetMyProfile(context.Background())
		if i == 0 {
			assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
		}
	}

	assert.Equal(t, 1, fired)
	assert.False(t, sess.Authenticated())
	assert.Nil(t, sess.User())
}

// Logout fires the same hooks as a 401, also exactly once.
func TestSessionClearFiresHooksOnce(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	sess, client := ts.NewClientStack()
	auth := services.NewAuthService(client)

	_, err := auth.Login(context.Background(), "nobody@test.com", "password-123")
	assert.Error(t, err)
	assert.False(t, sess.Authenticated())

	helpers.RegisterUser(t, ts, "hook@test.com", "Hook User", "model")
	_, loginErr := auth.Login(context.Background(), "hook@test.com", "password-123")
	assert.NoError(t, loginErr)

	fired := 0
	sess.OnInvalidated(func() { fired++ })

	auth.Logout()
	auth.Logout() // second logout is a no-op
	assert.Equal(t, 1, fired)
}
