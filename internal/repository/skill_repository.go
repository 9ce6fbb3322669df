package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/brito-dev/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

// SkillRepository defines the interface for skill data access
type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	List(ctx context.Context) ([]models.Skill, error)
	GetByID(ctx context.Context, id uint) (*models.Skill, error)
	Update(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, id uint) error
}

// skillRepository implements SkillRepository using GORM
type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository instance
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

// Create creates a new skill
func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	if err := r.db.WithContext(ctx).Create(skill).Error; err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

// List retrieves all skills ordered by display_order ascending
func (r *skillRepository) List(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.WithContext(ctx).Order("display_order ASC").Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

// GetByID retrieves a skill by its ID
func (r *skillRepository) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return &skill, nil
}

// Update saves the full skill record (last write wins)
func (r *skillRepository) Update(ctx context.Context, skill *models.Skill) error {
	result := r.db.WithContext(ctx).Model(&models.Skill{}).Where("id = ?", skill.ID).Select("*").Omit("id").Updates(skill)
	if result.Error != nil {
		return fmt.Errorf("failed to update skill: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a skill by its ID
func (r *skillRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Skill{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete skill: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
