package integration_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"zanara/internal/controllers"
	"zanara/internal/models"
	"zanara/test/helpers"
)

func TestConnectionRequestFlow(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	_, target := helpers.RegisterUser(t, ts, "wanted@test.com", "Wanted User", "photographer")
	viewer, profiles, connections, notifier := clientStack(t, ts, "seeker@test.com", "Seeker User", "model")

	pc := controllers.NewProfileController(profiles, connections, notifier, viewer, target.ProfileID)
	ctx := context.Background()
	assert.NoError(t, pc.Load(ctx))
	assert.True(t, pc.CanConnect())

	assert.NoError(t, pc.Connect(ctx, "Would love to work together"))
	assert.Equal(t, models.ConnectionPending, pc.ConnectionStatus())
	assert.False(t, pc.CanConnect())
	if assert.NotNil(t, notifier.Current()) {
		assert.Equal(t, controllers.LevelSuccess, notifier.Current().Level)
	}

	// Once pending, a stray call is a no-op, not another network request.
	assert.NoError(t, pc.Connect(ctx, "again"))
	assert.Equal(t, models.ConnectionPending, pc.ConnectionStatus())

	// A reload sees the pending status from the server.
	pc2 := controllers.NewProfileController(profiles, connections, notifier, viewer, target.ProfileID)
	assert.NoError(t, pc2.Load(ctx))
	assert.Equal(t, models.ConnectionPending, pc2.ConnectionStatus())
}

// A duplicate request racing past the client-side guard resolves to
// pending rather than an error: the server already has what we asked for.
func TestConnectionDuplicateResolvesToPending(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	_, target := helpers.RegisterUser(t, ts, "busy@test.com", "Busy User", "stylist")
	viewer, profiles, connections, notifier := clientStack(t, ts, "eager@test.com", "Eager User", "model")

	pc := controllers.NewProfileController(profiles, connections, notifier, viewer, target.ProfileID)
	ctx := context.Background()

	// Mount before any request exists, so the guard believes "none".
	assert.NoError(t, pc.Load(ctx))
	assert.Equal(t, models.ConnectionNone, pc.ConnectionStatus())

	// Another session wins the race while this controller's status is stale.
	assert.NoError(t, connections.SendRequest(ctx, target.ProfileID, "", "stylist"))

	// The stale guard lets the duplicate through; the server's conflict is
	// reconciled to pending, with the success banner, not surfaced as an error.
	assert.NoError(t, pc.Connect(ctx, "hello"))
	assert.Equal(t, models.ConnectionPending, pc.ConnectionStatus())
	assert.False(t, pc.CanConnect())
	if assert.NotNil(t, notifier.Current()) {
		assert.Equal(t, controllers.LevelSuccess, notifier.Current().Level)
	}
}

func TestConnectionEndpointConflicts(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, _ := helpers.RegisterUser(t, ts, "from@test.com", "From User", "model")
	_, target := helpers.RegisterUser(t, ts, "to@test.com", "To User", "brand")

	body := map[string]interface{}{"profile_id": target.ProfileID, "message": "hi"}
	res, _ := ts.SendRequest(t, "POST", "/connections/requests", token, body)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	// The same pair again is a conflict with the dedicated code.
	res, resBody := ts.SendRequest(t, "POST", "/connections/requests", token, body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, resBody, "ALREADY_REQUESTED")
}

func TestConnectionSelfRequestRejected(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, me := helpers.RegisterUser(t, ts, "self@test.com", "Self User", "model")

	res, _ := ts.SendRequest(t, "POST", "/connections/requests", token, map[string]interface{}{
		"profile_id": me.ProfileID,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
