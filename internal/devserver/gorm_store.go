package devserver

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"zanara/internal/logger"
	"zanara/internal/models"
	"zanara/pkg/apperrors"
)

// ============================================================
// Rows
// ============================================================

// Profiles persist as a JSON document. The dev server never queries
// individual attributes in SQL, so a relational breakdown would only
// add migrations for no benefit.
type profileRow struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	UserID    string `gorm:"index"`
	Data      datatypes.JSON
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (profileRow) TableName() string { return "dev_profiles" }

type userRow struct {
	ID               string `gorm:"primaryKey;type:uuid"`
	Email            string `gorm:"uniqueIndex"`
	PasswordHash     string
	FullName         string
	ProfessionalType string
	ProfileID        string
	CreatedAt        time.Time
}

func (userRow) TableName() string { return "dev_users" }

type connectionRow struct {
	ID          uint   `gorm:"primaryKey"`
	FromUserID  string `gorm:"uniqueIndex:idx_conn_pair"`
	ToProfileID string `gorm:"uniqueIndex:idx_conn_pair"`
	Status      string
	CreatedAt   time.Time
}

func (connectionRow) TableName() string { return "dev_connections" }

// ============================================================
// Store
// ============================================================

type gormStore struct {
	db *gorm.DB
}

// NewGormStore connects to Postgres and migrates the dev tables.
func NewGormStore(dsn string) (Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "storage", "database connection failed", 500)
	}
	if err := db.AutoMigrate(&userRow{}, &profileRow{}, &connectionRow{}); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "storage", "migration failed", 500)
	}
	logger.Info("dev store connected to postgres")
	return &gormStore{db: db}, nil
}

func encodeProfile(p *models.Profile) (datatypes.JSON, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return datatypes.JSON(raw), nil
}

func decodeProfile(row *profileRow) (*models.Profile, error) {
	var p models.Profile
	if err := json.Unmarshal(row.Data, &p); err != nil {
		return nil, apperrors.InternalError(err)
	}
	p.ID = row.ID
	p.UserID = row.UserID
	p.CreatedAt = row.CreatedAt
	p.UpdatedAt = row.UpdatedAt
	return &p, nil
}

func (s *gormStore) CreateUser(user *UserRecord, profile *models.Profile) error {
	data, err := encodeProfile(profile)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&userRow{}).Where("lower(email) = lower(?)", user.Email).Count(&count).Error; err != nil {
			return apperrors.InternalError(err)
		}
		if count > 0 {
			return apperrors.New(apperrors.CodeAlreadyExists, "auth", "email already registered", 409)
		}
		row := userRow{
			ID:               user.ID,
			Email:            user.Email,
			PasswordHash:     user.PasswordHash,
			FullName:         user.FullName,
			ProfessionalType: user.ProfessionalType,
			ProfileID:        user.ProfileID,
			CreatedAt:        user.CreatedAt,
		}
		if err := tx.Create(&row).Error; err != nil {
			return apperrors.InternalError(err)
		}
		prow := profileRow{
			ID:        profile.ID,
			UserID:    profile.UserID,
			Data:      data,
			CreatedAt: profile.CreatedAt,
			UpdatedAt: profile.UpdatedAt,
		}
		if err := tx.Create(&prow).Error; err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
}

func (s *gormStore) UserByEmail(email string) (*UserRecord, error) {
	var row userRow
	err := s.db.Where("lower(email) = lower(?)", email).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("auth", nil)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rowToUser(&row), nil
}

func (s *gormStore) UserByID(id string) (*UserRecord, error) {
	var row userRow
	err := s.db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("auth", nil)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rowToUser(&row), nil
}

func rowToUser(row *userRow) *UserRecord {
	return &UserRecord{
		ID:               row.ID,
		Email:            row.Email,
		PasswordHash:     row.PasswordHash,
		FullName:         row.FullName,
		ProfessionalType: row.ProfessionalType,
		ProfileID:        row.ProfileID,
		CreatedAt:        row.CreatedAt,
	}
}

func (s *gormStore) ProfileByID(id string) (*models.Profile, error) {
	var row profileRow
	err := s.db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("profile", nil)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return decodeProfile(&row)
}

func (s *gormStore) ProfileByUserID(userID string) (*models.Profile, error) {
	var row profileRow
	err := s.db.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("profile", nil)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return decodeProfile(&row)
}

func (s *gormStore) SaveProfile(profile *models.Profile) error {
	profile.UpdatedAt = time.Now()
	data, err := encodeProfile(profile)
	if err != nil {
		return err
	}
	res := s.db.Model(&profileRow{}).Where("id = ?", profile.ID).Updates(map[string]interface{}{
		"data":       data,
		"updated_at": profile.UpdatedAt,
	})
	if res.Error != nil {
		return apperrors.InternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("profile", nil)
	}
	return nil
}

func (s *gormStore) SearchProfiles(q SearchQuery) ([]models.Profile, int64, error) {
	var rows []profileRow
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	all := make([]models.Profile, 0, len(rows))
	for i := range rows {
		p, err := decodeProfile(&rows[i])
		if err != nil {
			logger.WithError(err).Warn("skipping undecodable profile row", "id", rows[i].ID)
			continue
		}
		all = append(all, *p)
	}
	return filterProfiles(all, q)
}

func (s *gormStore) ConnectionStatus(fromUserID, toProfileID string) (models.ConnectionStatus, error) {
	var row connectionRow
	err := s.db.Where("from_user_id = ? AND to_profile_id = ?", fromUserID, toProfileID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ConnectionNone, nil
	}
	if err != nil {
		return models.ConnectionNone, apperrors.InternalError(err)
	}
	return models.ParseConnectionStatus(row.Status), nil
}

func (s *gormStore) CreateConnection(fromUserID, toProfileID string) error {
	var count int64
	if err := s.db.Model(&connectionRow{}).
		Where("from_user_id = ? AND to_profile_id = ?", fromUserID, toProfileID).
		Count(&count).Error; err != nil {
		return apperrors.InternalError(err)
	}
	if count > 0 {
		return apperrors.AlreadyRequested()
	}
	row := connectionRow{
		FromUserID:  fromUserID,
		ToProfileID: toProfileID,
		Status:      string(models.ConnectionPending),
		CreatedAt:   time.Now(),
	}
	if err := s.db.Create(&row).Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
