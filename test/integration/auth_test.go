package integration_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"zanara/internal/services"
	"zanara/internal/services/dto"
	"zanara/test/helpers"
)

func TestAuthFlow(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	sess, client := ts.NewClientStack()
	auth := services.NewAuthService(client)

	// Register installs a session immediately.
	user, err := auth.Register(context.Background(), dto.RegisterRequest{
		Email:            "aliya@test.com",
		Password:         "password-123",
		FullName:         "Aliya Test",
		ProfessionalType: "model",
	})
	assert.NoError(t, err)
	assert.True(t, sess.Authenticated())
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.ProfileID)

	// The token is a real JWT with an expiry in the future.
	assert.False(t, sess.ExpiresAt().IsZero())

	// /auth/me round-trips the same account.
	me, err := auth.Me(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, user.ID, me.ID)
	assert.Equal(t, "aliya@test.com", me.Email)

	// Logout tears the session down.
	auth.Logout()
	assert.False(t, sess.Authenticated())

	// Login restores it.
	again, err := auth.Login(context.Background(), "aliya@test.com", "password-123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.True(t, sess.Authenticated())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	helpers.RegisterUser(t, ts, "duplicate@test.com", "User One", "model")

	res, body := ts.SendRequest(t, "POST", "/auth/register", "", map[string]interface{}{
		"email":             "duplicate@test.com",
		"password":          "password-456",
		"full_name":         "User Two",
		"professional_type": "stylist",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "already registered")
}

func TestLogin_BadPassword(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	helpers.RegisterUser(t, ts, "user@test.com", "Test User", "photographer")

	res, body := ts.SendRequest(t, "POST", "/auth/login", "", map[string]interface{}{
		"email":    "user@test.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "invalid email or password")
}

func TestAuthMe_RequiresToken(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	res, _ := ts.SendRequest(t, "GET", "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, "GET", "/auth/me", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
