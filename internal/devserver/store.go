package devserver

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"zanara/internal/models"
	"zanara/pkg/apperrors"
)

const searchPageSize = 12

// UserRecord is the dev server's account row.
type UserRecord struct {
	ID               string
	Email            string
	PasswordHash     string
	FullName         string
	ProfessionalType string
	ProfileID        string
	CreatedAt        time.Time
}

// SearchQuery is the server-side view of the browse filter set.
type SearchQuery struct {
	Query        string
	Type         string
	Gender       string
	Location     string
	BodyType     string
	HairColor    string
	EyeColor     string
	Experience   string
	Availability string
	Skills       string
	AgeMin       string
	AgeMax       string
	HeightMin    string
	HeightMax    string
	Sort         string
	Page         int
}

// Store abstracts persistence so the dev server can run in-memory or
// against Postgres.
type Store interface {
	CreateUser(user *UserRecord, profile *models.Profile) error
	UserByEmail(email string) (*UserRecord, error)
	UserByID(id string) (*UserRecord, error)

	ProfileByID(id string) (*models.Profile, error)
	ProfileByUserID(userID string) (*models.Profile, error)
	SaveProfile(profile *models.Profile) error
	SearchProfiles(q SearchQuery) ([]models.Profile, int64, error)

	ConnectionStatus(fromUserID, toProfileID string) (models.ConnectionStatus, error)
	CreateConnection(fromUserID, toProfileID string) error
}

// ============================================================
// In-memory store
// ============================================================

type memStore struct {
	mu          sync.RWMutex
	users       map[string]*UserRecord
	profiles    map[string]*models.Profile
	connections map[string]models.ConnectionStatus // fromUserID + "|" + toProfileID
}

func NewMemStore() Store {
	s := &memStore{
		users:       make(map[string]*UserRecord),
		profiles:    make(map[string]*models.Profile),
		connections: make(map[string]models.ConnectionStatus),
	}
	s.seed()
	return s
}

func (s *memStore) CreateUser(user *UserRecord, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return apperrors.New(apperrors.CodeAlreadyExists, "auth", "email already registered", 409)
		}
	}
	s.users[user.ID] = user
	s.profiles[profile.ID] = profile
	return nil
}

func (s *memStore) UserByEmail(email string) (*UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("auth", nil)
}

func (s *memStore) UserByID(id string) (*UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("auth", nil)
	}
	copied := *u
	return &copied, nil
}

func (s *memStore) ProfileByID(id string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, apperrors.NotFound("profile", nil)
	}
	return p.Clone(), nil
}

func (s *memStore) ProfileByUserID(userID string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.profiles {
		if p.UserID == userID {
			return p.Clone(), nil
		}
	}
	return nil, apperrors.NotFound("profile", nil)
}

func (s *memStore) SaveProfile(profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[profile.ID]; !ok {
		return apperrors.NotFound("profile", nil)
	}
	profile.UpdatedAt = time.Now()
	s.profiles[profile.ID] = profile.Clone()
	return nil
}

func (s *memStore) SearchProfiles(q SearchQuery) ([]models.Profile, int64, error) {
	s.mu.RLock()
	all := make([]models.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		all = append(all, *p.Clone())
	}
	s.mu.RUnlock()
	return filterProfiles(all, q)
}

func connectionKey(fromUserID, toProfileID string) string {
	return fromUserID + "|" + toProfileID
}

func (s *memStore) ConnectionStatus(fromUserID, toProfileID string) (models.ConnectionStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if status, ok := s.connections[connectionKey(fromUserID, toProfileID)]; ok {
		return status, nil
	}
	return models.ConnectionNone, nil
}

func (s *memStore) CreateConnection(fromUserID, toProfileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := connectionKey(fromUserID, toProfileID)
	if _, ok := s.connections[key]; ok {
		return apperrors.AlreadyRequested()
	}
	s.connections[key] = models.ConnectionPending
	return nil
}

// ============================================================
// Shared filtering
// ============================================================

// filterProfiles applies the browse filters, sorts and paginates. Both
// stores use it; dev-scale data makes in-process filtering fine.
func filterProfiles(all []models.Profile, q SearchQuery) ([]models.Profile, int64, error) {
	matched := make([]models.Profile, 0, len(all))
	for _, p := range all {
		if matchProfile(&p, q) {
			matched = append(matched, p)
		}
	}

	switch q.Sort {
	case "name":
		sort.Slice(matched, func(i, j int) bool {
			return strings.ToLower(matched[i].FullName) < strings.ToLower(matched[j].FullName)
		})
	default: // newest
		sort.Slice(matched, func(i, j int) bool {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
	}

	total := int64(len(matched))
	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * searchPageSize
	if start >= len(matched) {
		return []models.Profile{}, total, nil
	}
	end := start + searchPageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func matchProfile(p *models.Profile, q SearchQuery) bool {
	if q.Type != "" && string(p.ProfessionalType) != q.Type {
		return false
	}
	if q.Query != "" {
		needle := strings.ToLower(q.Query)
		if !strings.Contains(strings.ToLower(p.FullName), needle) &&
			!strings.Contains(strings.ToLower(p.Headline), needle) &&
			!strings.Contains(strings.ToLower(p.Bio), needle) {
			return false
		}
	}
	if q.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(q.Location)) {
		return false
	}
	if q.Experience != "" && p.ExperienceLevel != q.Experience {
		return false
	}
	if q.Availability != "" && p.Availability != q.Availability {
		return false
	}
	if q.Skills != "" {
		wanted := models.ParseList(q.Skills)
		if !hasAnySkill(p.Skills, wanted) {
			return false
		}
	}

	m := p.Measurements
	if q.Gender != "" && (m == nil || m.Gender != q.Gender) {
		return false
	}
	if q.BodyType != "" && (m == nil || m.BodyType != q.BodyType) {
		return false
	}
	if q.HairColor != "" && (m == nil || m.HairColor != q.HairColor) {
		return false
	}
	if q.EyeColor != "" && (m == nil || m.EyeColor != q.EyeColor) {
		return false
	}
	if min, ok := parseBound(q.AgeMin); ok && (m == nil || float64(m.Age) < min) {
		return false
	}
	if max, ok := parseBound(q.AgeMax); ok && (m == nil || float64(m.Age) > max) {
		return false
	}
	if min, ok := parseBound(q.HeightMin); ok && (m == nil || float64(m.HeightCM) < min) {
		return false
	}
	if max, ok := parseBound(q.HeightMax); ok && (m == nil || float64(m.HeightCM) > max) {
		return false
	}
	return true
}

func hasAnySkill(have, wanted []string) bool {
	for _, w := range wanted {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func parseBound(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ============================================================
// Seed data
// ============================================================

func (s *memStore) seed() {
	now := time.Now()
	add := func(p models.Profile, offsetDays int) {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		p.CreatedAt = now.AddDate(0, 0, -offsetDays)
		p.UpdatedAt = p.CreatedAt
		s.profiles[p.ID] = &p
	}

	add(models.Profile{
		UserID:           uuid.New().String(),
		ProfessionalType: models.TypeModel,
		FullName:         "Aliya Bekova",
		Headline:         "Editorial and runway model",
		Location:         "Almaty",
		Bio:              "Runway and print model with five seasons of fashion week experience.",
		ExperienceLevel:  "experienced",
		Availability:     "full-time",
		Skills:           []string{"runway", "editorial", "commercial"},
		Measurements: &models.Measurements{
			Gender: "female", Age: 24, HeightCM: 178, BustCM: 84, WaistCM: 61, HipsCM: 89,
			HairColor: "black", EyeColor: "brown", BodyType: "slim", ShoeSize: "39",
		},
	}, 1)

	add(models.Profile{
		UserID:           uuid.New().String(),
		ProfessionalType: models.TypePhotographer,
		FullName:         "Daniyar Seitkali",
		Headline:         "Fashion and portrait photographer",
		Location:         "Astana",
		Bio:              "Studio and location shoots for brands and agencies.",
		ExperienceLevel:  "expert",
		Availability:     "freelance",
		Skills:           []string{"studio", "retouching", "lookbooks"},
		Equipment: &models.Equipment{
			Cameras:         []string{"Canon R5"},
			Lenses:          []string{"50mm f/1.2", "85mm f/1.4"},
			Specializations: []string{"fashion", "portrait"},
			HasStudio:       true,
		},
		Rates: &models.ServiceRates{Hourly: 80, Daily: 500, Currency: "USD"},
	}, 2)

	add(models.Profile{
		UserID:           uuid.New().String(),
		ProfessionalType: models.TypeFashionDesigner,
		FullName:         "Madina Orazbek",
		Headline:         "Womenswear designer",
		Location:         "Almaty",
		Bio:              "Capsule collections and made-to-measure pieces.",
		ExperienceLevel:  "experienced",
		Skills:           []string{"pattern-making", "draping"},
		Design: &models.DesignDetails{
			Materials:  []string{"silk", "wool"},
			Techniques: []string{"draping", "tailoring"},
		},
	}, 3)

	add(models.Profile{
		UserID:           uuid.New().String(),
		ProfessionalType: models.TypeStylist,
		FullName:         "Kamila Nurlan",
		Headline:         "Editorial stylist",
		Location:         "Astana",
		Bio:              "Styling for shoots, shows and personal clients.",
		Skills:           []string{"editorial", "personal styling"},
		Rates:            &models.ServiceRates{Services: []string{"shoot styling", "wardrobe audit"}, Hourly: 45, Currency: "USD"},
	}, 4)

	add(models.Profile{
		UserID:           uuid.New().String(),
		ProfessionalType: models.TypeMakeupArtist,
		FullName:         "Aruzhan Talgat",
		Headline:         "Makeup artist for film and fashion",
		Location:         "Almaty",
		Skills:           []string{"sfx", "bridal", "editorial"},
		Rates:            &models.ServiceRates{Hourly: 40, Daily: 280, Currency: "USD"},
	}, 5)

	add(models.Profile{
		UserID:           uuid.New().String(),
		ProfessionalType: models.TypeBrand,
		FullName:         "Koktem Wear",
		Headline:         "Sustainable outerwear brand",
		Location:         "Almaty",
		Company: &models.CompanyDetails{
			CompanyName: "Koktem Wear", Industry: "apparel", TeamSize: 12,
			Website: "https://koktem.example", FoundedYear: 2019,
		},
	}, 6)

	add(models.Profile{
		UserID:           uuid.New().String(),
		ProfessionalType: models.TypeAgency,
		FullName:         "Steppe Talent Agency",
		Headline:         "Full-service model agency",
		Location:         "Astana",
		Company: &models.CompanyDetails{
			CompanyName: "Steppe Talent Agency", Industry: "talent management", TeamSize: 25,
			Website: "https://steppetalent.example", FoundedYear: 2015,
		},
	}, 7)
}
