package devserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"zanara/internal/config"
	"zanara/internal/logger"
	"zanara/internal/models"
	"zanara/internal/services/dto"
	"zanara/internal/validator"
	"zanara/pkg/apperrors"
)

type AuthHandler struct {
	cfg      *config.Config
	store    Store
	validate *validator.Validator
}

func NewAuthHandler(cfg *config.Config, store Store) *AuthHandler {
	return &AuthHandler{cfg: cfg, store: store, validate: validator.New()}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Validate(&req); err != nil {
		respondError(c, err)
		return
	}
	profType, ok := models.ParseProfessionalType(req.ProfessionalType)
	if !ok {
		respondError(c, apperrors.NewBadRequestError("unknown professional type"))
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		respondError(c, apperrors.InternalError(err))
		return
	}

	now := time.Now()
	user := &UserRecord{
		ID:               uuid.New().String(),
		Email:            req.Email,
		PasswordHash:     hash,
		FullName:         req.FullName,
		ProfessionalType: string(profType),
		CreatedAt:        now,
	}
	profile := &models.Profile{
		ID:               uuid.New().String(),
		UserID:           user.ID,
		ProfessionalType: profType,
		FullName:         req.FullName,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	user.ProfileID = profile.ID

	if err := h.store.CreateUser(user, profile); err != nil {
		respondError(c, err)
		return
	}

	token, err := GenerateToken(h.cfg, user.ID, user.Email, user.ProfessionalType)
	if err != nil {
		respondError(c, apperrors.InternalError(err))
		return
	}

	logger.Info("account registered", "user_id", user.ID, "type", user.ProfessionalType)
	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  accountUser(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Validate(&req); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.store.UserByEmail(req.Email)
	if err != nil || !CheckPasswordHash(req.Password, user.PasswordHash) {
		respondError(c, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "invalid email or password", http.StatusUnauthorized))
		return
	}

	token, err := GenerateToken(h.cfg, user.ID, user.Email, user.ProfessionalType)
	if err != nil {
		respondError(c, apperrors.InternalError(err))
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  accountUser(user),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.store.UserByID(c.GetString(ctxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accountUser(user))
}

func accountUser(u *UserRecord) models.AccountUser {
	return models.AccountUser{
		ID:               u.ID,
		ProfileID:        u.ProfileID,
		Email:            u.Email,
		FullName:         u.FullName,
		ProfessionalType: models.ProfessionalType(u.ProfessionalType),
		CreatedAt:        u.CreatedAt,
	}
}
