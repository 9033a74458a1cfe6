package models

import (
	"strings"
	"time"
)

// MediaRef points at a stored media file. Order inside a portfolio slice is
// user-significant and must survive a save round-trip.
type MediaRef struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// Measurements is the model-specific attribute bag.
type Measurements struct {
	Gender    string `json:"gender,omitempty"`
	Age       int    `json:"age,omitempty"`
	HeightCM  int    `json:"height_cm,omitempty"`
	BustCM    int    `json:"bust_cm,omitempty"`
	WaistCM   int    `json:"waist_cm,omitempty"`
	HipsCM    int    `json:"hips_cm,omitempty"`
	ShoeSize  string `json:"shoe_size,omitempty"`
	DressSize string `json:"dress_size,omitempty"`
	HairColor string `json:"hair_color,omitempty"`
	EyeColor  string `json:"eye_color,omitempty"`
	BodyType  string `json:"body_type,omitempty"`
}

// Equipment is the photographer-specific attribute bag.
type Equipment struct {
	Cameras         []string `json:"cameras,omitempty"`
	Lenses          []string `json:"lenses,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	HasStudio       bool     `json:"has_studio,omitempty"`
}

// DesignDetails is the fashion-designer-specific attribute bag.
type DesignDetails struct {
	Materials   []string `json:"materials,omitempty"`
	Techniques  []string `json:"techniques,omitempty"`
	TechPackURL string   `json:"tech_pack_url,omitempty"`
}

// ServiceRates is shared by stylists and makeup artists.
type ServiceRates struct {
	Services []string `json:"services,omitempty"`
	Hourly   float64  `json:"hourly,omitempty"`
	Daily    float64  `json:"daily,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

// CompanyDetails is shared by brands and agencies.
type CompanyDetails struct {
	CompanyName string `json:"company_name,omitempty"`
	Industry    string `json:"industry,omitempty"`
	TeamSize    int    `json:"team_size,omitempty"`
	Website     string `json:"website,omitempty"`
	FoundedYear int    `json:"founded_year,omitempty"`
}

// Profile is one marketplace participant. The attribute bags are optional
// and independently editable; a nil bag means "not yet provided" and must
// render as an empty/prompt state, never an error.
type Profile struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	ProfessionalType ProfessionalType `json:"professional_type"`

	FullName       string `json:"full_name" validate:"required"`
	Headline       string `json:"headline,omitempty" validate:"max=160"`
	Location       string `json:"location,omitempty"`
	Bio            string `json:"bio,omitempty" validate:"max=2000"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	CoverPhoto     string `json:"cover_photo,omitempty"`
	Verified       bool   `json:"verified"`

	ExperienceLevel string `json:"experience_level,omitempty"`
	Availability    string `json:"availability,omitempty"`

	Photos []MediaRef `json:"photos,omitempty"`
	Videos []MediaRef `json:"videos,omitempty"`

	Skills      []string          `json:"skills,omitempty"`
	SocialMedia map[string]string `json:"social_media,omitempty"`

	Measurements *Measurements   `json:"measurements,omitempty"`
	Equipment    *Equipment      `json:"equipment,omitempty"`
	Design       *DesignDetails  `json:"design,omitempty"`
	Rates        *ServiceRates   `json:"rates,omitempty"`
	Company      *CompanyDetails `json:"company,omitempty"`

	// Server-computed, read-only.
	ConnectionsCount int `json:"connections_count"`
	ProfileViews     int `json:"profile_views"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy. Drafts are always clones so that editing never
// mutates the canonical profile in place.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cp := *p

	cp.Photos = append([]MediaRef(nil), p.Photos...)
	cp.Videos = append([]MediaRef(nil), p.Videos...)
	cp.Skills = append([]string(nil), p.Skills...)

	if p.SocialMedia != nil {
		cp.SocialMedia = make(map[string]string, len(p.SocialMedia))
		for k, v := range p.SocialMedia {
			cp.SocialMedia[k] = v
		}
	}
	if p.Measurements != nil {
		m := *p.Measurements
		cp.Measurements = &m
	}
	if p.Equipment != nil {
		e := *p.Equipment
		e.Cameras = append([]string(nil), p.Equipment.Cameras...)
		e.Lenses = append([]string(nil), p.Equipment.Lenses...)
		e.Specializations = append([]string(nil), p.Equipment.Specializations...)
		cp.Equipment = &e
	}
	if p.Design != nil {
		d := *p.Design
		d.Materials = append([]string(nil), p.Design.Materials...)
		d.Techniques = append([]string(nil), p.Design.Techniques...)
		cp.Design = &d
	}
	if p.Rates != nil {
		r := *p.Rates
		r.Services = append([]string(nil), p.Rates.Services...)
		cp.Rates = &r
	}
	if p.Company != nil {
		c := *p.Company
		cp.Company = &c
	}
	return &cp
}

// ParseList splits comma-separated input into trimmed, non-empty entries.
// Idempotent under re-parsing its own serialization.
func ParseList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinList is the inverse of ParseList for rendering into a text input.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
