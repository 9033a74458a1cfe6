package devserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"zanara/internal/config"
	"zanara/internal/models"
	"zanara/internal/services/dto"
	"zanara/pkg/apperrors"
)

type ProfileHandler struct {
	cfg   *config.Config
	store Store
}

func NewProfileHandler(cfg *config.Config, store Store) *ProfileHandler {
	return &ProfileHandler{cfg: cfg, store: store}
}

func (h *ProfileHandler) GetByID(c *gin.Context) {
	profile, err := h.store.ProfileByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetMine(c *gin.Context) {
	profile, err := h.store.ProfileByUserID(c.GetString(ctxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMine replaces the editable fields of the caller's profile. Identity
// and server-managed fields in the payload are ignored.
func (h *ProfileHandler) UpdateMine(c *gin.Context) {
	current, err := h.store.ProfileByUserID(c.GetString(ctxUserID))
	if err != nil {
		respondError(c, err)
		return
	}

	var incoming models.Profile
	if err := c.ShouldBindJSON(&incoming); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}
	if incoming.FullName == "" {
		respondError(c, apperrors.ValidationError(map[string]string{"full_name": "This field is required"}))
		return
	}

	incoming.ID = current.ID
	incoming.UserID = current.UserID
	incoming.ProfessionalType = current.ProfessionalType
	incoming.Verified = current.Verified
	incoming.ConnectionsCount = current.ConnectionsCount
	incoming.ProfileViews = current.ProfileViews
	incoming.CreatedAt = current.CreatedAt

	if err := h.store.SaveProfile(&incoming); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, &incoming)
}

func (h *ProfileHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	q := SearchQuery{
		Query:        c.Query("query"),
		Type:         c.Query("type"),
		Gender:       c.Query("gender"),
		Location:     c.Query("location"),
		BodyType:     c.Query("bodyType"),
		HairColor:    c.Query("hairColor"),
		EyeColor:     c.Query("eyeColor"),
		Experience:   c.Query("experience"),
		Availability: c.Query("availability"),
		Skills:       c.Query("skills"),
		AgeMin:       c.Query("ageMin"),
		AgeMax:       c.Query("ageMax"),
		HeightMin:    c.Query("heightMin"),
		HeightMax:    c.Query("heightMax"),
		Sort:         c.Query("sort"),
		Page:         page,
	}
	if q.Page < 1 {
		q.Page = 1
	}

	items, total, err := h.store.SearchProfiles(q)
	if err != nil {
		respondError(c, err)
		return
	}

	totalPages := int((total + searchPageSize - 1) / searchPageSize)
	c.JSON(http.StatusOK, dto.PaginatedResponse{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		PageSize:   searchPageSize,
		TotalPages: totalPages,
		HasMore:    q.Page < totalPages,
	})
}
