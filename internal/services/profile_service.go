package services

import (
	"context"
	"errors"
	"fmt"

	"zanara/internal/api"
	"zanara/internal/models"
	"zanara/internal/services/dto"
	"zanara/internal/validator"
	"zanara/pkg/apperrors"
)

// MediaKind selects which media slot an upload or removal targets.
type MediaKind string

const (
	KindPhoto          MediaKind = "photo"
	KindVideo          MediaKind = "video"
	KindProfilePicture MediaKind = "picture"
	KindCoverPhoto     MediaKind = "cover"
)

// Multi reports whether the kind accepts a multi-file batch. Picture and
// cover are single-file slots.
func (k MediaKind) Multi() bool {
	return k == KindPhoto || k == KindVideo
}

func (k MediaKind) valid() bool {
	switch k {
	case KindPhoto, KindVideo, KindProfilePicture, KindCoverPhoto:
		return true
	}
	return false
}

// ==========================
// Service interface
// ==========================

type ProfileService interface {
	GetProfileByID(ctx context.Context, id string) (*models.Profile, error)
	GetMyProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, draft *models.Profile) (*models.Profile, error)
	UploadMedia(ctx context.Context, kind MediaKind, files []api.File, progress api.ProgressFunc) (*dto.UploadResult, error)
	RemoveMedia(ctx context.Context, kind MediaKind, mediaID string) error
	ReorderPortfolio(ctx context.Context, photoIDs, videoIDs []string) error
}

type profileService struct {
	client   *api.Client
	validate *validator.Validator
}

func NewProfileService(client *api.Client) ProfileService {
	return &profileService{
		client:   client,
		validate: validator.New(),
	}
}

// ==========================
// Reads
// ==========================

func (s *profileService) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	if id == "" {
		return nil, apperrors.NewBadRequestError("profile id is required")
	}
	var profile models.Profile
	if err := s.client.Get(ctx, "/profiles/"+id, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *profileService) GetMyProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := s.client.Get(ctx, "/profiles/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ==========================
// Writes
// ==========================

// UpdateProfile sends the draft for a server-side merge and returns the
// server-confirmed record. Fields absent from the draft keep their stored
// values; the caller adopts the returned record as the new canonical state.
func (s *profileService) UpdateProfile(ctx context.Context, draft *models.Profile) (*models.Profile, error) {
	if draft == nil {
		return nil, apperrors.NewBadRequestError("draft is required")
	}
	if err := s.validateDraft(draft); err != nil {
		return nil, err
	}

	var saved models.Profile
	if err := s.client.Put(ctx, "/profiles/me", draft, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// validateDraft runs the tag-declared checks before a round-trip. The
// server remains authoritative and may still reject with field messages.
func (s *profileService) validateDraft(draft *models.Profile) error {
	err := s.validate.Validate(draft)
	if err == nil {
		return nil
	}
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		return apperrors.ValidationError(vErr.Errors)
	}
	return err
}

// ==========================
// Media
// ==========================

func (s *profileService) UploadMedia(ctx context.Context, kind MediaKind, files []api.File, progress api.ProgressFunc) (*dto.UploadResult, error) {
	if !kind.valid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown media kind %q", kind))
	}
	if len(files) == 0 {
		return nil, apperrors.NewBadRequestError("no files to upload")
	}
	if !kind.Multi() && len(files) > 1 {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("media kind %q accepts a single file", kind))
	}

	var result dto.UploadResult
	err := s.client.Upload(ctx, "/profiles/me/media/"+string(kind), "files", files, progress, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RemoveMedia is idempotent: removing an already-absent reference succeeds.
func (s *profileService) RemoveMedia(ctx context.Context, kind MediaKind, mediaID string) error {
	if !kind.valid() {
		return apperrors.NewBadRequestError(fmt.Sprintf("unknown media kind %q", kind))
	}
	err := s.client.Delete(ctx, "/profiles/me/media/"+string(kind)+"/"+mediaID, nil)
	if apperrors.IsCode(err, apperrors.CodeNotFound) {
		return nil
	}
	return err
}

// ReorderPortfolio replaces the portfolio order wholesale.
func (s *profileService) ReorderPortfolio(ctx context.Context, photoIDs, videoIDs []string) error {
	req := dto.ReorderRequest{
		PhotoIDs: photoIDs,
		VideoIDs: videoIDs,
	}
	return s.client.Put(ctx, "/profiles/me/portfolio/order", &req, nil)
}
