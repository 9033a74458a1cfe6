package services

import (
	"context"

	"zanara/internal/api"
	"zanara/internal/logger"
	"zanara/internal/models"
	"zanara/internal/services/dto"
)

type ConnectionService interface {
	// GetStatus returns the relationship state with the target profile.
	// Failures degrade to ConnectionNone without surfacing an error: the
	// status display is non-critical and must never block the view.
	GetStatus(ctx context.Context, profileID string) models.ConnectionStatus

	// SendRequest initiates a connection. AlreadyRequested when a pending
	// or accepted connection exists; callers pre-check status and disable
	// the control rather than rely on this alone.
	SendRequest(ctx context.Context, profileID, message string, profileType models.ProfessionalType) error
}

type connectionService struct {
	client *api.Client
}

func NewConnectionService(client *api.Client) ConnectionService {
	return &connectionService{client: client}
}

func (s *connectionService) GetStatus(ctx context.Context, profileID string) models.ConnectionStatus {
	var resp dto.ConnectionStatusResponse
	if err := s.client.Get(ctx, "/connections/status/"+profileID, nil, &resp); err != nil {
		logger.Debug("connection status check failed, defaulting to none",
			"profile_id", profileID,
			"error", err.Error(),
		)
		return models.ConnectionNone
	}
	return models.ParseConnectionStatus(resp.Status)
}

func (s *connectionService) SendRequest(ctx context.Context, profileID, message string, profileType models.ProfessionalType) error {
	req := dto.ConnectionRequest{
		ProfileID:   profileID,
		Message:     message,
		ProfileType: string(profileType),
	}
	return s.client.Post(ctx, "/connections/requests", &req, nil)
}
