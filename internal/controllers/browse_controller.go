package controllers

import (
	"context"
	"sync"

	"zanara/internal/favorites"
	"zanara/internal/logger"
	"zanara/internal/mockdata"
	"zanara/internal/models"
	"zanara/internal/services"
	"zanara/internal/services/dto"
)

// ViewMode selects how the result set is laid out. Both modes render the
// same results and the same favorites set.
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewList
)

// BrowseController owns the talent-browser state: the filter criteria,
// the current result page, and the locally persisted favorites set.
//
// Browsing is a non-critical path: when the list query fails and the
// mock-fallback flag is on, the controller substitutes generated
// placeholder results so the layout stays exercised instead of showing a
// blank screen. With the flag off the failure surfaces as a retryable
// error state.
type BrowseController struct {
	search    services.SearchService
	favorites *favorites.Store // nil when the local_favorites flag is off
	fallback  bool

	mu           sync.Mutex
	criteria     dto.FilterCriteria
	results      []models.Profile
	totalPages   int
	viewMode     ViewMode
	loading      bool
	loadErr      error
	usedFallback bool
	gen          uint64
}

func NewBrowseController(search services.SearchService, favs *favorites.Store, mockFallback bool) *BrowseController {
	return &BrowseController{
		search:    search,
		favorites: favs,
		fallback:  mockFallback,
		criteria:  dto.NewFilterCriteria(),
	}
}

// ==========================
// Criteria lifecycle
// ==========================

// SetFilter mutates one predicate and resets to the first page; only
// explicit pagination keeps the page.
func (b *BrowseController) SetFilter(name, value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch name {
	case "query":
		b.criteria.Query = value
	case "type":
		b.criteria.Type = value
	case "gender":
		b.criteria.Gender = value
	case "location":
		b.criteria.Location = value
	case "bodyType":
		b.criteria.BodyType = value
	case "hairColor":
		b.criteria.HairColor = value
	case "eyeColor":
		b.criteria.EyeColor = value
	case "experience":
		b.criteria.Experience = value
	case "availability":
		b.criteria.Availability = value
	case "skills":
		b.criteria.Skills = value
	case "ageMin":
		b.criteria.AgeMin = value
	case "ageMax":
		b.criteria.AgeMax = value
	case "heightMin":
		b.criteria.HeightMin = value
	case "heightMax":
		b.criteria.HeightMax = value
	case "sort":
		b.criteria.Sort = value
	default:
		logger.Warn("ignoring unknown browse filter", "name", name)
		return
	}
	b.criteria.Page = 1
}

// SetPage navigates without resetting the other predicates.
func (b *BrowseController) SetPage(page int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if page < 1 {
		page = 1
	}
	b.criteria.Page = page
}

// Reset discards all predicates.
func (b *BrowseController) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.criteria = dto.NewFilterCriteria()
}

func (b *BrowseController) Criteria() dto.FilterCriteria {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.criteria
}

// ==========================
// Searching
// ==========================

// Search requests the page matching the current criteria.
func (b *BrowseController) Search(ctx context.Context) error {
	b.mu.Lock()
	criteria := b.criteria
	b.loading = true
	b.gen++
	gen := b.gen
	b.mu.Unlock()

	page, err := b.search.SearchProfiles(ctx, criteria)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gen != gen {
		return nil // a newer search superseded this one
	}
	b.loading = false

	if err != nil {
		if b.fallback {
			logger.WithError(err).Warn("browse query failed, substituting placeholder results")
			fallbackPage := mockdata.Page(criteria)
			b.results = fallbackPage.Items
			b.totalPages = fallbackPage.TotalPages
			b.usedFallback = true
			b.loadErr = nil
			return nil
		}
		b.results = nil
		b.totalPages = 0
		b.usedFallback = false
		b.loadErr = err
		return err
	}

	b.results = page.Items
	b.totalPages = page.TotalPages
	b.usedFallback = false
	b.loadErr = nil
	return nil
}

// ==========================
// Results & view state
// ==========================

func (b *BrowseController) Results() []models.Profile {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.results
}

func (b *BrowseController) TotalPages() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalPages
}

func (b *BrowseController) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

// Err returns the blocking browse failure; always nil while the fallback
// flag is on.
func (b *BrowseController) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loadErr
}

// UsedFallback reports whether the current results are placeholders.
func (b *BrowseController) UsedFallback() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.usedFallback
}

func (b *BrowseController) SetViewMode(mode ViewMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.viewMode = mode
}

func (b *BrowseController) ViewMode() ViewMode {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.viewMode
}

// SelectProfile returns the result with the given id for the profile
// router to mount, nil when it is not on the current page.
func (b *BrowseController) SelectProfile(id string) *models.Profile {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.results {
		if b.results[i].ID == id {
			return &b.results[i]
		}
	}
	return nil
}

// ==========================
// Favorites (client-only)
// ==========================

// ToggleFavorite flips membership in the local favorites set. False when
// favorites are disabled.
func (b *BrowseController) ToggleFavorite(profileID string) bool {
	if b.favorites == nil {
		return false
	}
	return b.favorites.Toggle(profileID)
}

func (b *BrowseController) IsFavorite(profileID string) bool {
	if b.favorites == nil {
		return false
	}
	return b.favorites.Has(profileID)
}
