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

// ProfileRepositoryTestSuite is the test suite for ProfileRepository
type ProfileRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo ProfileRepository
}

// SetupSuite runs once before all tests
func (s *ProfileRepositoryTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	require.NoError(s.T(), db.AutoMigrate(&models.AboutMe{}, &models.HomeContent{}, &models.ContactInfo{}))

	s.db = db
	s.repo = NewProfileRepository(db)
}

// TearDownSuite runs once after all tests
func (s *ProfileRepositoryTestSuite) TearDownSuite() {
	sqlDB, _ := s.db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// SetupTest runs before each test
func (s *ProfileRepositoryTestSuite) SetupTest() {
	s.db.Exec("DELETE FROM about_me")
	s.db.Exec("DELETE FROM home")
	s.db.Exec("DELETE FROM contact_info")
}

// TestProfileRepositoryTestSuite runs the test suite
func TestProfileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositoryTestSuite))
}

func (s *ProfileRepositoryTestSuite) TestGetAbout_Empty() {
	_, err := s.repo.GetAbout(context.Background())
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *ProfileRepositoryTestSuite) TestUpsertAbout_CreatesThenReplaces() {
	first := &models.AboutMe{
		Headline: "Software Engineer",
		Bio:      "First version.",
		SocialLinks: models.SocialLinks{
			Github: "https://github.com/someone",
		},
	}
	require.NoError(s.T(), s.repo.UpsertAbout(context.Background(), first))

	second := &models.AboutMe{Headline: "Backend Engineer", Bio: "Second version."}
	require.NoError(s.T(), s.repo.UpsertAbout(context.Background(), second))

	found, err := s.repo.GetAbout(context.Background())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Backend Engineer", found.Headline)

	var count int64
	s.db.Model(&models.AboutMe{}).Count(&count)
	assert.EqualValues(s.T(), 1, count)
}

func (s *ProfileRepositoryTestSuite) TestUpsertAbout_RoundTripsSocialLinks() {
	about := &models.AboutMe{
		Headline: "Engineer",
		SocialLinks: models.SocialLinks{
			Github:   "https://github.com/someone",
			Linkedin: "https://linkedin.com/in/someone",
		},
	}
	require.NoError(s.T(), s.repo.UpsertAbout(context.Background(), about))

	found, err := s.repo.GetAbout(context.Background())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "https://github.com/someone", found.SocialLinks.Github)
	assert.Equal(s.T(), "https://linkedin.com/in/someone", found.SocialLinks.Linkedin)
}

func (s *ProfileRepositoryTestSuite) TestUpsertHome_SingletonStays() {
	require.NoError(s.T(), s.repo.UpsertHome(context.Background(), &models.HomeContent{Headline: "Hi"}))
	require.NoError(s.T(), s.repo.UpsertHome(context.Background(), &models.HomeContent{Headline: "Hello"}))

	found, err := s.repo.GetHome(context.Background())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Hello", found.Headline)

	var count int64
	s.db.Model(&models.HomeContent{}).Count(&count)
	assert.EqualValues(s.T(), 1, count)
}

func (s *ProfileRepositoryTestSuite) TestUpsertContactInfo() {
	info := &models.ContactInfo{
		Email:            "owner@example.com",
		Location:         "Lisbon",
		AvailableForWork: true,
	}
	require.NoError(s.T(), s.repo.UpsertContactInfo(context.Background(), info))

	found, err := s.repo.GetContactInfo(context.Background())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "owner@example.com", found.Email)
	assert.True(s.T(), found.AvailableForWork)
}
