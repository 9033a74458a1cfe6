package services

import (
	"context"

	"zanara/internal/api"
	"zanara/internal/services/dto"
	"zanara/pkg/apperrors"
)

type SearchService interface {
	// SearchProfiles requests one page of profiles matching the criteria.
	SearchProfiles(ctx context.Context, criteria dto.FilterCriteria) (*dto.PaginatedResponse, error)
}

type searchService struct {
	client *api.Client
}

func NewSearchService(client *api.Client) SearchService {
	return &searchService{client: client}
}

func (s *searchService) SearchProfiles(ctx context.Context, criteria dto.FilterCriteria) (*dto.PaginatedResponse, error) {
	query, err := criteria.Values()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var page dto.PaginatedResponse
	if err := s.client.Get(ctx, "/profiles/search", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
