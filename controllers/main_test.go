package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"stayhub/config"
	"stayhub/models"
	"stayhub/routes"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// setupTest wires the router against a fresh in-memory database.
// Redis stays nil so caching is skipped.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, config.MigrateDB(db))

	config.DB = db
	config.RedisClient = nil

	router := gin.New()
	routes.SetupRoutes(router)
	return router
}

func createTestUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	user, err := services.CreateUser(models.User{
		Email:    email,
		Password: "secret1",
		FullName: "Test User",
		Role:     role,
	})
	require.NoError(t, err)

	token, err := services.GenerateToken(services.UserInfo{Email: user.Email, Role: user.Role}, 60)
	require.NoError(t, err)

	return user, token
}

func createTestRoom(t *testing.T, room models.Room) models.Room {
	t.Helper()
	if room.Title == "" {
		room.Title = "Test Room"
	}
	if room.Price == 0 {
		room.Price = 100
	}
	if room.PropertyType == "" {
		room.PropertyType = "room"
	}
	room.IsAvailable = true
	require.NoError(t, config.DB.Create(&room).Error)
	return room
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// envelope mirrors response.Response for decoding in assertions
type envelope struct {
	Code  int             `json:"code"`
	Mess  string          `json:"mess"`
	Data  json.RawMessage `json:"data"`
	Total int             `json:"total"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	env := decodeEnvelope(t, recorder)
	require.NoError(t, json.Unmarshal(env.Data, target))
}
