package dto

import (
	"net/url"

	"github.com/gorilla/schema"

	"zanara/internal/models"
)

// ====================
//  Browse / search
// ====================

// FilterCriteria is the flat record of optional browse predicates. String
// fields use "" and "all" as absent sentinels, mirroring the filter UI;
// both are omitted from the serialized query.
type FilterCriteria struct {
	Query        string `schema:"query,omitempty"`
	Type         string `schema:"type,omitempty"`
	Gender       string `schema:"gender,omitempty"`
	Location     string `schema:"location,omitempty"`
	BodyType     string `schema:"bodyType,omitempty"`
	HairColor    string `schema:"hairColor,omitempty"`
	EyeColor     string `schema:"eyeColor,omitempty"`
	Experience   string `schema:"experience,omitempty"`
	Availability string `schema:"availability,omitempty"`
	Skills       string `schema:"skills,omitempty"`
	AgeMin       string `schema:"ageMin,omitempty"`
	AgeMax       string `schema:"ageMax,omitempty"`
	HeightMin    string `schema:"heightMin,omitempty"`
	HeightMax    string `schema:"heightMax,omitempty"`
	Sort         string `schema:"sort,omitempty"`
	Page         int    `schema:"page,omitempty"`
}

// NewFilterCriteria returns the default criteria: no predicates, newest
// first, page one.
func NewFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Sort: "newest",
		Page: 1,
	}
}

var queryEncoder = schema.NewEncoder()

// Values serializes only non-default predicates: "" and "all" sentinels are
// dropped, page appears only past the first.
func (c FilterCriteria) Values() (url.Values, error) {
	normalized := c
	for _, field := range []*string{
		&normalized.Query, &normalized.Type, &normalized.Gender,
		&normalized.Location, &normalized.BodyType, &normalized.HairColor,
		&normalized.EyeColor, &normalized.Experience, &normalized.Availability,
		&normalized.Skills, &normalized.AgeMin, &normalized.AgeMax,
		&normalized.HeightMin, &normalized.HeightMax,
	} {
		if *field == "all" {
			*field = ""
		}
	}
	if normalized.Page <= 1 {
		normalized.Page = 0
	}

	values := url.Values{}
	if err := queryEncoder.Encode(&normalized, values); err != nil {
		return nil, err
	}
	return values, nil
}

// ====================
//  Pagination
// ====================

type PaginatedResponse struct {
	Items      []models.Profile `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
	HasMore    bool             `json:"has_more"`
}
