package userControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/phamnguyendevv/fashion-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "user_test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.UserAddress{}))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/user/:user_id", GetUser(db))
	r.PUT("/user/:user_id", UpdateUser(db))
	r.GET("/user/:user_id/addresses", GetAddresses(db))
	r.POST("/user/:user_id/addresses", AddAddress(db))
	r.PUT("/user/:user_id/addresses/:id", UpdateAddress(db))
	r.DELETE("/user/:user_id/addresses/:id", DeleteAddress(db))
	return r
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{ID: "user-1", Email: "user1@example.com", Name: "Lan"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func doJSON(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, &body))
	return w
}

func homeAddress(isDefault bool) AddressInput {
	return AddressInput{
		Name:      "Lan",
		Phone:     "0901234567",
		City:      "Hanoi",
		Country:   "Vietnam",
		Address:   "12 Hang Bac",
		Type:      "home",
		IsDefault: isDefault,
	}
}

func TestAddAddress(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	user := seedUser(t, db)

	w := doJSON(r, http.MethodPost, "/user/no-such-user/addresses", homeAddress(false))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/user/"+user.ID+"/addresses", homeAddress(true))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/user/"+user.ID+"/addresses", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.UserAddress `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.True(t, resp.Data[0].IsDefault)
	assert.Equal(t, "Hanoi", resp.Data[0].City)
}

func TestDefaultAddressSwitches(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	user := seedUser(t, db)

	w := doJSON(r, http.MethodPost, "/user/"+user.ID+"/addresses", homeAddress(true))
	require.Equal(t, http.StatusCreated, w.Code)

	office := homeAddress(true)
	office.Type = "office"
	office.Address = "88 Le Loi"
	w = doJSON(r, http.MethodPost, "/user/"+user.ID+"/addresses", office)
	require.Equal(t, http.StatusCreated, w.Code)

	// only the newest default remains flagged
	var defaults []models.UserAddress
	require.NoError(t, db.Where("user_id = ? AND is_default = ?", user.ID, true).Find(&defaults).Error)
	require.Len(t, defaults, 1)
	assert.Equal(t, "88 Le Loi", defaults[0].Address)
}

func TestUpdateAddressScopedToUser(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	user := seedUser(t, db)
	other := models.User{ID: "user-2", Email: "user2@example.com"}
	require.NoError(t, db.Create(&other).Error)

	w := doJSON(r, http.MethodPost, "/user/"+user.ID+"/addresses", homeAddress(false))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.UserAddress `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	// another user cannot touch the address
	path := fmt.Sprintf("/user/%s/addresses/%d", other.ID, created.Data.ID)
	w = doJSON(r, http.MethodPut, path, homeAddress(false))
	require.Equal(t, http.StatusNotFound, w.Code)

	updated := homeAddress(false)
	updated.City = "Da Nang"
	path = fmt.Sprintf("/user/%s/addresses/%d", user.ID, created.Data.ID)
	w = doJSON(r, http.MethodPut, path, updated)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.UserAddress
	require.NoError(t, db.First(&stored, created.Data.ID).Error)
	assert.Equal(t, "Da Nang", stored.City)
}

func TestDeleteAddress(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	user := seedUser(t, db)

	w := doJSON(r, http.MethodPost, "/user/"+user.ID+"/addresses", homeAddress(false))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.UserAddress `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	path := fmt.Sprintf("/user/%s/addresses/%d", user.ID, created.Data.ID)
	w = doJSON(r, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUserPartialFields(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	user := seedUser(t, db)

	phone := "0987654321"
	w := doJSON(r, http.MethodPut, "/user/"+user.ID, UpdateUserInput{Phone: &phone})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, phone, stored.Phone)
	assert.Equal(t, "Lan", stored.Name)
}
