package mockdata

import (
	"fmt"
	"time"

	"zanara/internal/models"
	"zanara/internal/services/dto"
)

// Placeholder browse results for when the list query fails and the
// mock_fallback feature flag is on. Deterministic so the layout renders
// the same page for the same request; obviously fake ids so a placeholder
// can never be mistaken for a stored record downstream.

var placeholderNames = []string{
	"Alexis Moreau", "Jordan Reyes", "Sam Okafor", "Casey Lindqvist",
	"Riley Tanaka", "Noa Berger", "Dana Petrov", "Imani Walsh",
	"Luca Fontaine", "Maya Anand", "Robin Castellano", "Sasha Kim",
}

var placeholderCities = []string{
	"Paris", "Milan", "New York", "London", "Tokyo", "Berlin",
}

const pageSize = 12

// Page generates one page of placeholder profiles matching the criteria's
// type filter when set.
func Page(criteria dto.FilterCriteria) *dto.PaginatedResponse {
	page := criteria.Page
	if page < 1 {
		page = 1
	}

	profileType := models.TypeModel
	if t, ok := models.ParseProfessionalType(criteria.Type); ok {
		profileType = t
	}

	items := make([]models.Profile, 0, pageSize)
	for i := 0; i < pageSize; i++ {
		seq := (page-1)*pageSize + i
		name := placeholderNames[seq%len(placeholderNames)]
		items = append(items, models.Profile{
			ID:               fmt.Sprintf("placeholder-%d", seq),
			UserID:           fmt.Sprintf("placeholder-user-%d", seq),
			ProfessionalType: profileType,
			FullName:         name,
			Headline:         fmt.Sprintf("%s placeholder", profileType),
			Location:         placeholderCities[seq%len(placeholderCities)],
			Skills:           []string{"Editorial", "Runway"},
			CreatedAt:        time.Now().Add(-time.Duration(seq) * time.Hour),
		})
	}

	const totalPages = 3
	return &dto.PaginatedResponse{
		Items:      items,
		Total:      totalPages * pageSize,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}
}
