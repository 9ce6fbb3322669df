package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brito-dev/portfolio-backend/internal/models"
)

// ProjectRepositoryTestSuite is the test suite for ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo ProjectRepository
}

// SetupSuite runs once before all tests
func (s *ProjectRepositoryTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	require.NoError(s.T(), db.AutoMigrate(&models.Project{}))

	s.db = db
	s.repo = NewProjectRepository(db)
}

// TearDownSuite runs once after all tests
func (s *ProjectRepositoryTestSuite) TearDownSuite() {
	sqlDB, _ := s.db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// SetupTest runs before each test
func (s *ProjectRepositoryTestSuite) SetupTest() {
	s.db.Exec("DELETE FROM projects")
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}

func (s *ProjectRepositoryTestSuite) TestCreate_RoundTripsTechnologies() {
	project := &models.Project{
		Title:        "Portfolio Site",
		Description:  "This site.",
		Technologies: []string{"Go", "PostgreSQL"},
	}

	require.NoError(s.T(), s.repo.Create(context.Background(), project))

	found, err := s.repo.GetByID(context.Background(), project.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"Go", "PostgreSQL"}, found.Technologies)
}

func (s *ProjectRepositoryTestSuite) TestList_OrderedByDisplayOrder() {
	second := &models.Project{Title: "Second", DisplayOrder: 2}
	first := &models.Project{Title: "First", DisplayOrder: 1}
	require.NoError(s.T(), s.repo.Create(context.Background(), second))
	require.NoError(s.T(), s.repo.Create(context.Background(), first))

	projects, err := s.repo.List(context.Background(), false)
	require.NoError(s.T(), err)
	require.Len(s.T(), projects, 2)
	assert.Equal(s.T(), "First", projects[0].Title)
	assert.Equal(s.T(), "Second", projects[1].Title)
}

func (s *ProjectRepositoryTestSuite) TestList_FeaturedFilter() {
	require.NoError(s.T(), s.repo.Create(context.Background(), &models.Project{Title: "Featured", Featured: true}))
	require.NoError(s.T(), s.repo.Create(context.Background(), &models.Project{Title: "Plain"}))

	featured, err := s.repo.List(context.Background(), true)
	require.NoError(s.T(), err)
	require.Len(s.T(), featured, 1)
	assert.Equal(s.T(), "Featured", featured[0].Title)

	all, err := s.repo.List(context.Background(), false)
	require.NoError(s.T(), err)
	assert.Len(s.T(), all, 2)
}

func (s *ProjectRepositoryTestSuite) TestUpdate_Success() {
	project := &models.Project{Title: "Before"}
	require.NoError(s.T(), s.repo.Create(context.Background(), project))

	project.Title = "After"
	project.Featured = true
	require.NoError(s.T(), s.repo.Update(context.Background(), project))

	found, err := s.repo.GetByID(context.Background(), project.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "After", found.Title)
	assert.True(s.T(), found.Featured)
}

func (s *ProjectRepositoryTestSuite) TestUpdate_NotFound() {
	err := s.repo.Update(context.Background(), &models.Project{ID: 9999, Title: "Ghost"})
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *ProjectRepositoryTestSuite) TestDelete_Success() {
	project := &models.Project{Title: "Doomed"}
	require.NoError(s.T(), s.repo.Create(context.Background(), project))

	require.NoError(s.T(), s.repo.Delete(context.Background(), project.ID))

	_, err := s.repo.GetByID(context.Background(), project.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *ProjectRepositoryTestSuite) TestDelete_NotFound() {
	err := s.repo.Delete(context.Background(), 9999)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}
