package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/brito-dev/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository provides access to the singleton content records: the
// about section, the home/hero section and the contact info block. Each
// table holds at most one row; upserts follow last write wins.
type ProfileRepository interface {
	GetAbout(ctx context.Context) (*models.AboutMe, error)
	UpsertAbout(ctx context.Context, about *models.AboutMe) error
	GetHome(ctx context.Context) (*models.HomeContent, error)
	UpsertHome(ctx context.Context, home *models.HomeContent) error
	GetContactInfo(ctx context.Context) (*models.ContactInfo, error)
	UpsertContactInfo(ctx context.Context, info *models.ContactInfo) error
}

// profileRepository implements ProfileRepository using GORM
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository instance
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetAbout retrieves the singleton about record
func (r *profileRepository) GetAbout(ctx context.Context) (*models.AboutMe, error) {
	var about models.AboutMe
	if err := r.db.WithContext(ctx).First(&about).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get about content: %w", err)
	}
	return &about, nil
}

// UpsertAbout replaces the singleton about record
func (r *profileRepository) UpsertAbout(ctx context.Context, about *models.AboutMe) error {
	return r.upsertSingleton(ctx, &models.AboutMe{}, func(existingID uint) error {
		about.ID = existingID
		return r.db.WithContext(ctx).Save(about).Error
	})
}

// GetHome retrieves the singleton home record
func (r *profileRepository) GetHome(ctx context.Context) (*models.HomeContent, error) {
	var home models.HomeContent
	if err := r.db.WithContext(ctx).First(&home).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get home content: %w", err)
	}
	return &home, nil
}

// UpsertHome replaces the singleton home record
func (r *profileRepository) UpsertHome(ctx context.Context, home *models.HomeContent) error {
	return r.upsertSingleton(ctx, &models.HomeContent{}, func(existingID uint) error {
		home.ID = existingID
		return r.db.WithContext(ctx).Save(home).Error
	})
}

// GetContactInfo retrieves the singleton contact info record
func (r *profileRepository) GetContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	var info models.ContactInfo
	if err := r.db.WithContext(ctx).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact info: %w", err)
	}
	return &info, nil
}

// UpsertContactInfo replaces the singleton contact info record
func (r *profileRepository) UpsertContactInfo(ctx context.Context, info *models.ContactInfo) error {
	return r.upsertSingleton(ctx, &models.ContactInfo{}, func(existingID uint) error {
		info.ID = existingID
		return r.db.WithContext(ctx).Save(info).Error
	})
}

// upsertSingleton finds the existing row id for a singleton table (0 when the
// table is empty) and hands it to save, so repeated upserts keep one row.
func (r *profileRepository) upsertSingleton(ctx context.Context, model interface{}, save func(existingID uint) error) error {
	var id uint
	err := r.db.WithContext(ctx).Model(model).Select("id").Order("id ASC").Limit(1).Scan(&id).Error
	if err != nil {
		return fmt.Errorf("failed to look up singleton row: %w", err)
	}
	if err := save(id); err != nil {
		return fmt.Errorf("failed to upsert singleton row: %w", err)
	}
	return nil
}
