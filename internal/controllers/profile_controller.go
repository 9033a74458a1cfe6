package controllers

import (
	"context"
	"fmt"
	"sync"

	"zanara/internal/api"
	"zanara/internal/logger"
	"zanara/internal/models"
	"zanara/internal/services"
	"zanara/pkg/apperrors"
)

// ProfileController owns the view/draft duality for one mounted profile.
// The canonical `profile` is the last server-confirmed record; `editData`
// is the uncommitted draft, created as a deep copy on entering edit mode
// and either promoted by a successful save or discarded on cancel. One
// controller instance serves every professional type, parameterized by the
// type's Schema; the per-type editors differ only in configuration.
//
// All exported methods are safe for concurrent use. Async results are
// generation-checked so a response that raced with a newer Load (or with
// Close after unmount) is discarded instead of overwriting fresher state.
type ProfileController struct {
	profiles    services.ProfileService
	connections services.ConnectionService
	notifier    *Notifier

	viewer    *models.AccountUser
	profileID string // empty means the viewer's own profile

	mu         sync.Mutex
	schema     Schema
	profile    *models.Profile
	editData   *models.Profile
	isEditing  bool
	saving     bool
	uploading  bool
	loading    bool
	loadErr    error
	connStatus models.ConnectionStatus
	gen        uint64
	closed     bool
}

func NewProfileController(
	profiles services.ProfileService,
	connections services.ConnectionService,
	notifier *Notifier,
	viewer *models.AccountUser,
	profileID string,
) *ProfileController {
	return &ProfileController{
		profiles:    profiles,
		connections: connections,
		notifier:    notifier,
		viewer:      viewer,
		profileID:   profileID,
		connStatus:  models.ConnectionNone,
	}
}

// ==========================
// Loading
// ==========================

// Load fetches the profile and, for non-owners, the connection status.
// While in flight the controller reports loading; on failure it holds an
// error state with Retry as the recovery action. A Load supersedes any
// older in-flight operation.
func (c *ProfileController) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.loading = true
	c.loadErr = nil
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	profile, err := c.fetch(ctx)

	c.mu.Lock()
	if c.gen != gen || c.closed {
		c.mu.Unlock()
		return nil // superseded; discard
	}
	c.loading = false
	if err != nil {
		c.loadErr = err
		c.profile = nil
		c.mu.Unlock()
		return err
	}
	c.profile = profile
	c.schema = SchemaForProfile(profile)
	owner := c.viewer.OwnsProfile(profile)
	c.mu.Unlock()

	if !owner {
		// Non-blocking: the service degrades failures to "none" itself.
		status := c.connections.GetStatus(ctx, profile.ID)
		c.mu.Lock()
		if c.gen == gen && !c.closed {
			c.connStatus = status
		}
		c.mu.Unlock()
	}
	return nil
}

func (c *ProfileController) fetch(ctx context.Context) (*models.Profile, error) {
	if c.profileID == "" {
		return c.profiles.GetMyProfile(ctx)
	}
	return c.profiles.GetProfileByID(ctx, c.profileID)
}

// Retry re-runs a failed load.
func (c *ProfileController) Retry(ctx context.Context) error {
	return c.Load(ctx)
}

// Close marks the controller unmounted; in-flight results are discarded
// rather than applied to a view nobody is rendering.
func (c *ProfileController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.gen++
}

// ==========================
// Edit cycle
// ==========================

// BeginEdit copies the canonical profile into the draft. Only the owner
// can edit, and only once a profile is loaded.
func (c *ProfileController) BeginEdit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profile == nil {
		return apperrors.New(apperrors.CodeInvalidOperation, "profile", "No profile loaded", 0)
	}
	if !c.viewer.OwnsProfile(c.profile) {
		return apperrors.NewForbiddenError("Only the profile owner can edit")
	}
	if c.isEditing {
		return nil
	}
	c.editData = c.profile.Clone()
	c.isEditing = true
	return nil
}

// CancelEdit discards the draft; the displayed profile is untouched.
func (c *ProfileController) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editData = nil
	c.isEditing = false
}

// SetField applies one field edit to the draft. Edits are rejected while a
// save is in flight: the save reads the draft at the moment Save was
// invoked, and later edits would otherwise be silently lost.
func (c *ProfileController) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isEditing || c.editData == nil {
		return apperrors.New(apperrors.CodeInvalidOperation, "profile", "Not in edit mode", 0)
	}
	if c.saving {
		return apperrors.New(apperrors.CodeInvalidOperation, "profile", "Save in progress", 0)
	}
	field, ok := c.schema.Field(name)
	if !ok {
		return apperrors.NewBadRequestError(fmt.Sprintf("unknown field %q", name))
	}
	if err := field.Set(c.editData, value); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}
	return nil
}

// FieldValue reads a field from the draft while editing, else from the
// canonical profile. Empty when nothing is loaded.
func (c *ProfileController) FieldValue(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	target := c.profile
	if c.isEditing && c.editData != nil {
		target = c.editData
	}
	if target == nil {
		return ""
	}
	field, ok := c.schema.Field(name)
	if !ok {
		return ""
	}
	return field.Get(target)
}

// Save sends the draft and reconciles the server's answer. Success adopts
// the confirmed record, exits edit mode, and shows a success banner;
// failure keeps the draft and edit mode intact and shows the server's
// message when it provided one.
func (c *ProfileController) Save(ctx context.Context) error {
	c.mu.Lock()
	if !c.isEditing || c.editData == nil {
		c.mu.Unlock()
		return apperrors.New(apperrors.CodeInvalidOperation, "profile", "Not in edit mode", 0)
	}
	if c.saving {
		c.mu.Unlock()
		return apperrors.New(apperrors.CodeInvalidOperation, "profile", "Save already in progress", 0)
	}
	c.saving = true
	draft := c.editData.Clone() // snapshot at the moment Save is invoked
	gen := c.gen
	c.mu.Unlock()

	saved, err := c.profiles.UpdateProfile(ctx, draft)

	c.mu.Lock()
	c.saving = false
	if c.gen != gen || c.closed {
		c.mu.Unlock()
		return nil // superseded by a newer load or unmount
	}
	if err != nil {
		c.mu.Unlock()
		c.notifier.Error(saveErrorMessage(err))
		return err
	}
	c.profile = saved
	c.schema = SchemaForProfile(saved)
	c.editData = nil
	c.isEditing = false
	c.mu.Unlock()

	c.notifier.Success("Profile updated")
	return nil
}

func saveErrorMessage(err error) string {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return "Could not save your changes. Please try again."
}

// ==========================
// Media
// ==========================

// UploadMedia is available only while editing, and one batch at a time:
// the control stays visible but disabled while an upload is in flight.
// The server-confirmed subset is appended to BOTH the canonical profile
// and the draft, so results show immediately without waiting for a save;
// rejected files produce one error banner and are never added.
func (c *ProfileController) UploadMedia(ctx context.Context, kind services.MediaKind, files []api.File, progress api.ProgressFunc) error {
	c.mu.Lock()
	if !c.isEditing {
		c.mu.Unlock()
		return apperrors.New(apperrors.CodeInvalidOperation, "media", "Uploads are only available while editing", 0)
	}
	if c.uploading {
		c.mu.Unlock()
		return apperrors.New(apperrors.CodeInvalidOperation, "media", "Upload already in progress", 0)
	}
	c.uploading = true
	gen := c.gen
	c.mu.Unlock()

	result, err := c.profiles.UploadMedia(ctx, kind, files, progress)

	c.mu.Lock()
	c.uploading = false
	if c.gen != gen || c.closed {
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.mu.Unlock()
		c.notifier.Error(saveErrorMessage(err))
		return err
	}
	c.applyAcceptedMedia(kind, result.Accepted)
	rejected := len(result.Rejected)
	c.mu.Unlock()

	if rejected > 0 {
		c.notifier.Error(fmt.Sprintf("%d file(s) could not be uploaded: %s", rejected, result.Rejected[0].Reason))
	} else {
		c.notifier.Success("Upload complete")
	}
	return nil
}

// applyAcceptedMedia mutates both profile and draft under the lock.
func (c *ProfileController) applyAcceptedMedia(kind services.MediaKind, accepted []models.MediaRef) {
	if len(accepted) == 0 {
		return
	}
	apply := func(p *models.Profile) {
		if p == nil {
			return
		}
		switch kind {
		case services.KindPhoto:
			p.Photos = append(p.Photos, accepted...)
		case services.KindVideo:
			p.Videos = append(p.Videos, accepted...)
		case services.KindProfilePicture:
			p.ProfilePicture = accepted[0].Path
		case services.KindCoverPhoto:
			p.CoverPhoto = accepted[0].Path
		}
	}
	apply(c.profile)
	apply(c.editData)
}

// RemoveMedia drops a portfolio item. Idempotent end to end: the service
// treats an already-absent reference as success, and removal from local
// state is a filter.
func (c *ProfileController) RemoveMedia(ctx context.Context, kind services.MediaKind, mediaID string) error {
	c.mu.Lock()
	if !c.isEditing {
		c.mu.Unlock()
		return apperrors.New(apperrors.CodeInvalidOperation, "media", "Removal is only available while editing", 0)
	}
	gen := c.gen
	c.mu.Unlock()

	if err := c.profiles.RemoveMedia(ctx, kind, mediaID); err != nil {
		c.notifier.Error(saveErrorMessage(err))
		return err
	}

	c.mu.Lock()
	if c.gen == gen && !c.closed {
		drop := func(refs []models.MediaRef) []models.MediaRef {
			out := refs[:0]
			for _, r := range refs {
				if r.ID != mediaID {
					out = append(out, r)
				}
			}
			return out
		}
		for _, p := range []*models.Profile{c.profile, c.editData} {
			if p == nil {
				continue
			}
			switch kind {
			case services.KindPhoto:
				p.Photos = drop(p.Photos)
			case services.KindVideo:
				p.Videos = drop(p.Videos)
			}
		}
	}
	c.mu.Unlock()
	return nil
}

// Reorder applies a new portfolio order optimistically, then confirms with
// the server. On rejection there is no local undo; the controller re-fetches
// so the view converges on the server's order.
func (c *ProfileController) Reorder(ctx context.Context, photoIDs, videoIDs []string) error {
	c.mu.Lock()
	if c.profile == nil || !c.viewer.OwnsProfile(c.profile) {
		c.mu.Unlock()
		return apperrors.NewForbiddenError("Only the profile owner can reorder the portfolio")
	}
	for _, p := range []*models.Profile{c.profile, c.editData} {
		if p == nil {
			continue
		}
		p.Photos = reorderRefs(p.Photos, photoIDs)
		p.Videos = reorderRefs(p.Videos, videoIDs)
	}
	c.mu.Unlock()

	if err := c.profiles.ReorderPortfolio(ctx, photoIDs, videoIDs); err != nil {
		c.notifier.Error("Could not save the new order")
		// Converge on the server's order rather than guessing a rollback.
		if loadErr := c.Load(ctx); loadErr != nil {
			logger.WithError(loadErr).Warn("re-fetch after rejected reorder failed")
		}
		return err
	}
	return nil
}

// reorderRefs rebuilds refs in the order of ids; refs not named keep their
// relative order at the tail, so a stale id list cannot drop media.
func reorderRefs(refs []models.MediaRef, ids []string) []models.MediaRef {
	if len(ids) == 0 {
		return refs
	}
	byID := make(map[string]models.MediaRef, len(refs))
	for _, r := range refs {
		byID[r.ID] = r
	}
	out := make([]models.MediaRef, 0, len(refs))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			out = append(out, r)
			seen[id] = true
		}
	}
	for _, r := range refs {
		if !seen[r.ID] {
			out = append(out, r)
		}
	}
	return out
}

// ==========================
// Connections
// ==========================

// Connect sends a connection request. A no-op once the status left "none";
// the control is rendered disabled in that case and a stray call must not
// produce a duplicate network request.
func (c *ProfileController) Connect(ctx context.Context, message string) error {
	c.mu.Lock()
	if c.profile == nil {
		c.mu.Unlock()
		return apperrors.New(apperrors.CodeInvalidOperation, "connections", "No profile loaded", 0)
	}
	if c.viewer.OwnsProfile(c.profile) {
		c.mu.Unlock()
		return apperrors.New(apperrors.CodeInvalidOperation, "connections", "Cannot connect with yourself", 0)
	}
	if !c.connStatus.CanRequest() {
		c.mu.Unlock()
		return nil // already pending/accepted
	}
	profileID := c.profile.ID
	profileType := c.profile.ProfessionalType
	gen := c.gen
	c.mu.Unlock()

	err := c.connections.SendRequest(ctx, profileID, message, profileType)

	c.mu.Lock()
	stale := c.gen != gen || c.closed
	if !stale {
		if err == nil || apperrors.IsCode(err, apperrors.CodeAlreadyRequested) {
			// Either we created the request or the server already had one;
			// both mean the control must now be disabled.
			c.connStatus = models.ConnectionPending
		}
	}
	c.mu.Unlock()
	if stale {
		return nil
	}

	if err != nil && !apperrors.IsCode(err, apperrors.CodeAlreadyRequested) {
		c.notifier.Error("Could not send the connection request")
		return err
	}
	c.notifier.Success("Connection request sent")
	return nil
}

// ==========================
// View state
// ==========================

// IsOwner reports whether the viewer owns the mounted profile, compared by
// every identifier pair (call sites disagree on which ids they populate).
func (c *ProfileController) IsOwner() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewer.OwnsProfile(c.profile)
}

func (c *ProfileController) Profile() *models.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile
}

func (c *ProfileController) Draft() *models.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editData
}

func (c *ProfileController) IsEditing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isEditing
}

func (c *ProfileController) Saving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saving
}

func (c *ProfileController) Uploading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uploading
}

func (c *ProfileController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// LoadError returns the blocking load failure, nil when the view is fine.
func (c *ProfileController) LoadError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

func (c *ProfileController) ConnectionStatus() models.ConnectionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connStatus
}

// CanConnect reports whether the connect control is actionable.
func (c *ProfileController) CanConnect() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile != nil && !c.viewer.OwnsProfile(c.profile) && c.connStatus.CanRequest()
}

// SectionState pairs a schema section with its empty-state flag, so the
// renderer can distinguish "not yet provided" from a fetch error.
type SectionState struct {
	Section Section
	Empty   bool
}

// Sections describes what to render for the mounted profile. Every section
// is present even when empty; absence of data is a prompt, not an error.
func (c *ProfileController) Sections() []SectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	target := c.profile
	if c.isEditing && c.editData != nil {
		target = c.editData
	}
	if target == nil {
		return nil
	}
	out := make([]SectionState, 0, len(c.schema.Sections))
	for _, sec := range c.schema.Sections {
		out = append(out, SectionState{Section: sec, Empty: sec.Empty(target)})
	}
	return out
}
