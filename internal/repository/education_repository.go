package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/brito-dev/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

// EducationRepository defines the interface for education data access
type EducationRepository interface {
	Create(ctx context.Context, education *models.Education) error
	List(ctx context.Context) ([]models.Education, error)
	GetByID(ctx context.Context, id uint) (*models.Education, error)
	Update(ctx context.Context, education *models.Education) error
	Delete(ctx context.Context, id uint) error
}

// educationRepository implements EducationRepository using GORM
type educationRepository struct {
	db *gorm.DB
}

// NewEducationRepository creates a new EducationRepository instance
func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &educationRepository{db: db}
}

// Create creates a new education entry
func (r *educationRepository) Create(ctx context.Context, education *models.Education) error {
	if err := r.db.WithContext(ctx).Create(education).Error; err != nil {
		return fmt.Errorf("failed to create education entry: %w", err)
	}
	return nil
}

// List retrieves all education entries ordered by display_order ascending
func (r *educationRepository) List(ctx context.Context) ([]models.Education, error) {
	var entries []models.Education
	if err := r.db.WithContext(ctx).Order("display_order ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list education entries: %w", err)
	}
	return entries, nil
}

// GetByID retrieves an education entry by its ID
func (r *educationRepository) GetByID(ctx context.Context, id uint) (*models.Education, error) {
	var education models.Education
	if err := r.db.WithContext(ctx).First(&education, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get education entry: %w", err)
	}
	return &education, nil
}

// Update saves the full education record (last write wins)
func (r *educationRepository) Update(ctx context.Context, education *models.Education) error {
	result := r.db.WithContext(ctx).Model(&models.Education{}).Where("id = ?", education.ID).Select("*").Omit("id").Updates(education)
	if result.Error != nil {
		return fmt.Errorf("failed to update education entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes an education entry by its ID
func (r *educationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Education{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete education entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
