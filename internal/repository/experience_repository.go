package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/brito-dev/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

// ExperienceRepository defines the interface for experience data access
type ExperienceRepository interface {
	Create(ctx context.Context, experience *models.Experience) error
	List(ctx context.Context) ([]models.Experience, error)
	GetByID(ctx context.Context, id uint) (*models.Experience, error)
	Update(ctx context.Context, experience *models.Experience) error
	Delete(ctx context.Context, id uint) error
}

// experienceRepository implements ExperienceRepository using GORM
type experienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository creates a new ExperienceRepository instance
func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

// Create creates a new experience entry
func (r *experienceRepository) Create(ctx context.Context, experience *models.Experience) error {
	if err := r.db.WithContext(ctx).Create(experience).Error; err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}
	return nil
}

// List retrieves all experience entries ordered by display_order ascending
func (r *experienceRepository) List(ctx context.Context) ([]models.Experience, error) {
	var experiences []models.Experience
	if err := r.db.WithContext(ctx).Order("display_order ASC").Find(&experiences).Error; err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	return experiences, nil
}

// GetByID retrieves an experience entry by its ID
func (r *experienceRepository) GetByID(ctx context.Context, id uint) (*models.Experience, error) {
	var experience models.Experience
	if err := r.db.WithContext(ctx).First(&experience, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}
	return &experience, nil
}

// Update saves the full experience record (last write wins)
func (r *experienceRepository) Update(ctx context.Context, experience *models.Experience) error {
	result := r.db.WithContext(ctx).Model(&models.Experience{}).Where("id = ?", experience.ID).Select("*").Omit("id").Updates(experience)
	if result.Error != nil {
		return fmt.Errorf("failed to update experience: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes an experience entry by its ID
func (r *experienceRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Experience{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete experience: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
