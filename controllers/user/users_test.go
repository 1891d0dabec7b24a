package userControllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gowty08/Animecosplay/models"
	"github.com/Gowty08/Animecosplay/testutil"
)

func TestGetProfile(t *testing.T) {
	r, _ := testutil.NewTestAPI(t)
	token := testutil.RegisterUser(t, r, "chopper@example.com")

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/profile", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "chopper@example.com", resp.User.Email)

	// The password hash must never appear in responses.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestUpdateProfilePartial(t *testing.T) {
	r, db := testutil.NewTestAPI(t)
	token := testutil.RegisterUser(t, r, "chopper@example.com")

	w := testutil.DoJSON(t, r, http.MethodPut, "/api/profile", token,
		`{"phone":"555-1234","address":"Drum Island"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, db.Where("email = ?", "chopper@example.com").First(&user).Error)
	assert.Equal(t, "555-1234", user.Phone)
	assert.Equal(t, "Drum Island", user.Address)
	assert.Equal(t, "Test User", user.Name) // untouched fields stay
}
