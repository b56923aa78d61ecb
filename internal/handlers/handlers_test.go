package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Mrco45/FLEXFINAL/internal/config"
	"github.com/Mrco45/FLEXFINAL/internal/database"
	"github.com/Mrco45/FLEXFINAL/internal/handlers"
	"github.com/Mrco45/FLEXFINAL/internal/models"
	"github.com/Mrco45/FLEXFINAL/internal/routes"
	"github.com/Mrco45/FLEXFINAL/internal/utils"
)

type testEnv struct {
	app   *fiber.App
	db    *gorm.DB
	token string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		AppPort:      "0",
		JWTSecret:    "test-secret",
		TokenExpires: time.Hour,
		UploadDir:    t.TempDir(),
		MaxUploadMB:  5,
	}

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	routes.Register(app, db, cfg)

	user := models.User{Email: "owner@flex.local", DisplayName: "Owner", PasswordHash: "unused"}
	require.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateToken(cfg.JWTSecret, user.ID, time.Hour)
	require.NoError(t, err)

	return &testEnv{app: app, db: db, token: token}
}

func (e *testEnv) request(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if e.token != "" {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

type orderEnvelope struct {
	Success bool         `json:"success"`
	Data    models.Order `json:"data"`
}

type listEnvelope struct {
	Success bool           `json:"success"`
	Data    []models.Order `json:"data"`
	Total   int            `json:"total"`
}

func validOrderBody() map[string]any {
	return map[string]any{
		"customerName": "Omar",
		"phoneNumber":  "01001234567",
		"items": []map[string]any{
			{"description": "Banner", "quantity": 2, "cost": 100},
		},
		"amountPaid": 50,
	}
}

func (e *testEnv) createOrder(t *testing.T, body map[string]any) models.Order {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/api/orders", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decode[orderEnvelope](t, resp).Data
}

func (e *testEnv) multipartUpload(t *testing.T, field, filename string, content []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+e.token)

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
