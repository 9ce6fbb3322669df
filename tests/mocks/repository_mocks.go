// Package mocks provides testify mocks shared across test packages.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/brito-dev/portfolio-backend/internal/models"
)

// MockMessageRepository implements repository.MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

// Create creates a new message
func (m *MockMessageRepository) Create(ctx context.Context, message *models.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// List retrieves all messages
func (m *MockMessageRepository) List(ctx context.Context) ([]models.Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

// GetByID retrieves a message by its ID
func (m *MockMessageRepository) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

// GetByThreadID retrieves a message by its thread id
func (m *MockMessageRepository) GetByThreadID(ctx context.Context, threadID string) (*models.Message, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

// MarkAsRead flips a message to read
func (m *MockMessageRepository) MarkAsRead(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// DeleteWithReplies removes a message and its replies
func (m *MockMessageRepository) DeleteWithReplies(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReplyRepository implements repository.ReplyRepository
type MockReplyRepository struct {
	mock.Mock
}

// Create stores a reply
func (m *MockReplyRepository) Create(ctx context.Context, reply *models.MessageReply) error {
	args := m.Called(ctx, reply)
	return args.Error(0)
}

// ListByMessageIDs retrieves replies grouped by message id
func (m *MockReplyRepository) ListByMessageIDs(ctx context.Context, messageIDs []uint) (map[uint][]models.MessageReply, error) {
	args := m.Called(ctx, messageIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint][]models.MessageReply), args.Error(1)
}

// MockProjectRepository implements repository.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) List(ctx context.Context, featuredOnly bool) ([]models.Project, error) {
	args := m.Called(ctx, featuredOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSkillRepository implements repository.SkillRepository
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockSkillRepository) List(ctx context.Context) ([]models.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Skill), args.Error(1)
}

func (m *MockSkillRepository) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillRepository) Update(ctx context.Context, skill *models.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockSkillRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockExperienceRepository implements repository.ExperienceRepository
type MockExperienceRepository struct {
	mock.Mock
}

func (m *MockExperienceRepository) Create(ctx context.Context, experience *models.Experience) error {
	args := m.Called(ctx, experience)
	return args.Error(0)
}

func (m *MockExperienceRepository) List(ctx context.Context) ([]models.Experience, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Experience), args.Error(1)
}

func (m *MockExperienceRepository) GetByID(ctx context.Context, id uint) (*models.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Experience), args.Error(1)
}

func (m *MockExperienceRepository) Update(ctx context.Context, experience *models.Experience) error {
	args := m.Called(ctx, experience)
	return args.Error(0)
}

func (m *MockExperienceRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEducationRepository implements repository.EducationRepository
type MockEducationRepository struct {
	mock.Mock
}

func (m *MockEducationRepository) Create(ctx context.Context, education *models.Education) error {
	args := m.Called(ctx, education)
	return args.Error(0)
}

func (m *MockEducationRepository) List(ctx context.Context) ([]models.Education, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Education), args.Error(1)
}

func (m *MockEducationRepository) GetByID(ctx context.Context, id uint) (*models.Education, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Education), args.Error(1)
}

func (m *MockEducationRepository) Update(ctx context.Context, education *models.Education) error {
	args := m.Called(ctx, education)
	return args.Error(0)
}

func (m *MockEducationRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProfileRepository implements repository.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetAbout(ctx context.Context) (*models.AboutMe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AboutMe), args.Error(1)
}

func (m *MockProfileRepository) UpsertAbout(ctx context.Context, about *models.AboutMe) error {
	args := m.Called(ctx, about)
	return args.Error(0)
}

func (m *MockProfileRepository) GetHome(ctx context.Context) (*models.HomeContent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HomeContent), args.Error(1)
}

func (m *MockProfileRepository) UpsertHome(ctx context.Context, home *models.HomeContent) error {
	args := m.Called(ctx, home)
	return args.Error(0)
}

func (m *MockProfileRepository) GetContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactInfo), args.Error(1)
}

func (m *MockProfileRepository) UpsertContactInfo(ctx context.Context, info *models.ContactInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}
