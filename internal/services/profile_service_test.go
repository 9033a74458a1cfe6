package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"zanara/internal/api"
	"zanara/internal/config"
	"zanara/internal/models"
	"zanara/internal/session"
	"zanara/pkg/apperrors"
)

func newProfileService(t *testing.T) *profileService {
	t.Helper()

	cfg := &config.Config{}
	cfg.API.BaseURL = "http://127.0.0.1:0"

	svc, ok := NewProfileService(api.NewClient(cfg, session.NewStore())).(*profileService)
	if !ok {
		t.Fatal("unexpected service implementation")
	}
	return svc
}

func TestUpdateProfileValidatesDraftBeforeRequest(t *testing.T) {
	t.Parallel()

	svc := newProfileService(t)
	ctx := context.Background()

	// The base URL is unroutable, so reaching the transport would fail the
	// test with a connection error instead of a validation error.
	tests := []struct {
		name    string
		draft   *models.Profile
		field   string
		message string
	}{
		{
			name:    "missing full name",
			draft:   &models.Profile{},
			field:   "full_name",
			message: "This field is required",
		},
		{
			name: "bio over limit",
			draft: &models.Profile{
				FullName: "Aliya Bekova",
				Bio:      strings.Repeat("b", 2001),
			},
			field:   "bio",
			message: "Must be at most 2000 items/characters long",
		},
		{
			name: "headline over limit",
			draft: &models.Profile{
				FullName: "Aliya Bekova",
				Headline: strings.Repeat("h", 161),
			},
			field:   "headline",
			message: "Must be at most 160 items/characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateProfile(ctx, tt.draft)
			assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))

			var appErr *apperrors.AppError
			if assert.True(t, apperrors.As(err, &appErr)) {
				fields, ok := appErr.Details.(map[string]string)
				if assert.True(t, ok, "details should carry field messages") {
					assert.Equal(t, tt.message, fields[tt.field])
				}
			}
		})
	}
}

func TestValidateDraftAcceptsBoundaryLengths(t *testing.T) {
	t.Parallel()

	svc := newProfileService(t)
	draft := &models.Profile{
		FullName: "Aliya Bekova",
		Headline: strings.Repeat("h", 160),
		Bio:      strings.Repeat("b", 2000),
	}
	assert.NoError(t, svc.validateDraft(draft))
}
