package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brito-dev/portfolio-backend/internal/models"
	"github.com/brito-dev/portfolio-backend/internal/repository"
	"github.com/brito-dev/portfolio-backend/tests/mocks"
)

func TestProfileHandler_GetAbout_Success(t *testing.T) {
	repo := new(mocks.MockProfileRepository)
	repo.On("GetAbout", mock.Anything).Return(&models.AboutMe{Headline: "Engineer"}, nil)

	handler := NewProfileHandler(repo, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/about", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetAbout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"headline":"Engineer"`)
}

func TestProfileHandler_GetAbout_DegradesToEmpty(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"missing record", repository.ErrNotFound},
		{"store failure", errors.New("store down")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mocks.MockProfileRepository)
			repo.On("GetAbout", mock.Anything).Return(nil, tc.err)

			handler := NewProfileHandler(repo, nil)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/about", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, handler.GetAbout(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"success":true`)
		})
	}
}

func TestProfileHandler_UpdateAbout_Upserts(t *testing.T) {
	repo := new(mocks.MockProfileRepository)
	repo.On("UpsertAbout", mock.Anything, mock.MatchedBy(func(a *models.AboutMe) bool {
		return a.Headline == "New headline"
	})).Return(nil)

	handler := NewProfileHandler(repo, nil)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPut, "/api/admin/about", `{"headline":"New headline"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, handler.UpdateAbout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestProfileHandler_UpdateHome_StoreFailure(t *testing.T) {
	repo := new(mocks.MockProfileRepository)
	repo.On("UpsertHome", mock.Anything, mock.Anything).Return(errors.New("store down"))

	handler := NewProfileHandler(repo, nil)

	e := echo.New()
	req, rec := jsonRequest(http.MethodPut, "/api/admin/home", `{"headline":"Hi"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, handler.UpdateHome(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestProfileHandler_GetContactInfo_Success(t *testing.T) {
	repo := new(mocks.MockProfileRepository)
	repo.On("GetContactInfo", mock.Anything).Return(&models.ContactInfo{Email: "owner@example.com"}, nil)

	handler := NewProfileHandler(repo, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/contact-info", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetContactInfo(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"owner@example.com"`)
}
