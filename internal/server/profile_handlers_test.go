package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testProfile(id, userID uint) *models.Profile {
	profile := &models.Profile{
		UserID:         userID,
		Company:        "Acme",
		Website:        "https://acme.test",
		Location:       "Berlin",
		Designation:    "Engineer",
		Skills:         models.StringList{"go"},
		Bio:            "builds things",
		GithubUsername: "acme-dev",
	}
	profile.ID = id
	return profile
}

func TestGetMyProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		app, m := newTestApp(t)
		m.profiles.On("GetByUserID", mock.Anything, uint(1)).Return(testProfile(3, 1), nil)

		resp := doRequest(t, app, http.MethodGet, "/api/profiles/me", nil, authToken(t, 1, "alice"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Acme", body["company"])
	})

	t.Run("no profile yet", func(t *testing.T) {
		app, m := newTestApp(t)
		m.profiles.On("GetByUserID", mock.Anything, uint(1)).Return(nil, nil)

		resp := doRequest(t, app, http.MethodGet, "/api/profiles/me", nil, authToken(t, 1, "alice"))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUpsertProfileValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/profiles", map[string]string{
		"company": "Acme",
	}, authToken(t, 1, "alice"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "website is required")
	assert.Contains(t, body["error"], "instagram is required")
}

func TestGetAllProfilesIsPublic(t *testing.T) {
	app, m := newTestApp(t)
	m.profiles.On("List", mock.Anything).
		Return([]models.Profile{*testProfile(3, 1), *testProfile(4, 2)}, nil)

	resp := doRequest(t, app, http.MethodGet, "/api/profiles/all", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var profiles []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&profiles))
	assert.Len(t, profiles, 2)
}

func TestGetProfileByUserIsPublic(t *testing.T) {
	app, m := newTestApp(t)
	m.profiles.On("GetByUserID", mock.Anything, uint(1)).Return(testProfile(3, 1), nil)

	resp := doRequest(t, app, http.MethodGet, "/api/profiles/users/1", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRemoveExperienceNotFound(t *testing.T) {
	app, m := newTestApp(t)
	m.profiles.On("GetByUserID", mock.Anything, uint(1)).Return(testProfile(3, 1), nil)
	m.profiles.On("RemoveExperience", mock.Anything, uint(3), uint(42)).Return(false, nil)

	resp := doRequest(t, app, http.MethodDelete, "/api/profiles/experience/42", nil, authToken(t, 1, "alice"))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteAccount(t *testing.T) {
	t.Run("owner deletes own account", func(t *testing.T) {
		app, m := newTestApp(t)
		alice := &models.User{Name: "alice"}
		alice.ID = 1
		m.users.On("GetByID", mock.Anything, uint(1)).Return(alice, nil)
		m.users.On("DeleteAccount", mock.Anything, uint(1)).Return(nil)

		resp := doRequest(t, app, http.MethodDelete, "/api/profiles/users/1", nil, authToken(t, 1, "alice"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("deleting another account is forbidden", func(t *testing.T) {
		app, m := newTestApp(t)

		resp := doRequest(t, app, http.MethodDelete, "/api/profiles/users/2", nil, authToken(t, 1, "alice"))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		m.users.AssertNotCalled(t, "DeleteAccount", mock.Anything, uint(2))
	})
}
