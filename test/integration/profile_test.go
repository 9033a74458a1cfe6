package integration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"zanara/internal/controllers"
	"zanara/internal/models"
	"zanara/internal/services"
	"zanara/internal/services/dto"
	"zanara/test/helpers"
)

// clientStack wires the full client side against one test server and logs
// a fresh account in.
func clientStack(t *testing.T, ts *helpers.TestServer, email, name, profType string) (
	*models.AccountUser, services.ProfileService, services.ConnectionService, *controllers.Notifier,
) {
	t.Helper()
	_, client := ts.NewClientStack()
	auth := services.NewAuthService(client)
	user, err := auth.Register(context.Background(), dto.RegisterRequest{
		Email:            email,
		Password:         "password-123",
		FullName:         name,
		ProfessionalType: profType,
	})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	return user, services.NewProfileService(client), services.NewConnectionService(client), controllers.NewNotifier(nil)
}

func TestProfileEditCycle(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user, profiles, connections, notifier := clientStack(t, ts, "edit@test.com", "Edit Cycle", "model")

	pc := controllers.NewProfileController(profiles, connections, notifier, user, "")
	ctx := context.Background()

	assert.NoError(t, pc.Load(ctx))
	assert.True(t, pc.IsOwner())
	assert.False(t, pc.CanConnect())

	// Draft edits do not leak into the displayed profile.
	assert.NoError(t, pc.BeginEdit())
	assert.NoError(t, pc.SetField("headline", "Runway model"))
	assert.NoError(t, pc.SetField("bio", "Five seasons of fashion week."))
	assert.NoError(t, pc.SetField("measurements.height", "178"))
	assert.Equal(t, "", pc.Profile().Headline)
	assert.Equal(t, "Runway model", pc.FieldValue("headline"))

	// Save promotes the draft and exits edit mode.
	assert.NoError(t, pc.Save(ctx))
	assert.False(t, pc.IsEditing())
	assert.Equal(t, "Runway model", pc.Profile().Headline)
	if assert.NotNil(t, pc.Profile().Measurements) {
		assert.Equal(t, 178, pc.Profile().Measurements.HeightCM)
	}
	if assert.NotNil(t, notifier.Current()) {
		assert.Equal(t, controllers.LevelSuccess, notifier.Current().Level)
	}

	// The saved record is what a second client sees.
	fetched, err := profiles.GetProfileByID(ctx, pc.Profile().ID)
	assert.NoError(t, err)
	assert.Equal(t, "Runway model", fetched.Headline)
}

func TestProfileCancelDiscardsDraft(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user, profiles, connections, notifier := clientStack(t, ts, "cancel@test.com", "Cancel Case", "stylist")

	pc := controllers.NewProfileController(profiles, connections, notifier, user, "")
	ctx := context.Background()
	assert.NoError(t, pc.Load(ctx))

	assert.NoError(t, pc.BeginEdit())
	assert.NoError(t, pc.SetField("location", "Almaty"))
	pc.CancelEdit()

	assert.False(t, pc.IsEditing())
	assert.Equal(t, "", pc.Profile().Location)
	assert.Equal(t, "", pc.FieldValue("location"))

	// Canceling is a pure state reset; nothing reached the server.
	fetched, err := profiles.GetMyProfile(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "", fetched.Location)
}

func TestProfileSaveFailureKeepsDraft(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user, profiles, connections, notifier := clientStack(t, ts, "fail@test.com", "Fail Case", "model")

	pc := controllers.NewProfileController(profiles, connections, notifier, user, "")
	ctx := context.Background()
	assert.NoError(t, pc.Load(ctx))

	assert.NoError(t, pc.BeginEdit())
	assert.NoError(t, pc.SetField("fullName", ""))
	assert.Error(t, pc.Save(ctx))

	// Still editing with the draft intact, and an error banner visible.
	assert.True(t, pc.IsEditing())
	assert.NotNil(t, pc.Draft())
	if assert.NotNil(t, notifier.Current()) {
		assert.Equal(t, controllers.LevelError, notifier.Current().Level)
	}
	// The canonical record kept its name.
	assert.Equal(t, "Fail Case", pc.Profile().FullName)
}

func TestProfileViewOtherUser(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	_, target := helpers.RegisterUser(t, ts, "target@test.com", "Target User", "photographer")
	viewer, profiles, connections, notifier := clientStack(t, ts, "viewer@test.com", "Viewer User", "model")

	pc := controllers.NewProfileController(profiles, connections, notifier, viewer, target.ProfileID)
	ctx := context.Background()
	assert.NoError(t, pc.Load(ctx))

	assert.False(t, pc.IsOwner())
	assert.Equal(t, models.ConnectionNone, pc.ConnectionStatus())
	assert.True(t, pc.CanConnect())

	// Editing someone else's profile is refused.
	err := pc.BeginEdit()
	assert.Error(t, err)
	assert.False(t, pc.IsEditing())
}

func TestProfileSectionsFollowType(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user, profiles, connections, notifier := clientStack(t, ts, "sections@test.com", "Sections User", "photographer")

	pc := controllers.NewProfileController(profiles, connections, notifier, user, "")
	assert.NoError(t, pc.Load(context.Background()))

	ids := map[string]bool{}
	for _, s := range pc.Sections() {
		ids[s.Section.ID] = true
		// A fresh profile renders every section as an empty-state prompt,
		// except basics which carries the registration name.
		if s.Section.ID != "basics" {
			assert.True(t, s.Empty, "section %s should be empty", s.Section.ID)
		}
	}
	assert.True(t, ids["equipment"])
	assert.True(t, ids["rates"])
	assert.False(t, ids["measurements"])
}
