package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"auctionary/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "Abc123!@"

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// newTestServer builds a full router over a fresh in-memory database.
// cache=shared with a unique name keeps the database alive across the pool's
// connections without leaking state between tests.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	return NewServer(db, ""), db
}

// doJSON performs a request against the test server, marshaling body when
// non-nil and attaching the session token when provided.
func doJSON(t *testing.T, srv *Server, method, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(AuthHeader, token)
	}

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func errorMessageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		ErrorMessage string `json:"error_message"`
	}
	decodeJSON(t, w, &resp)
	return resp.ErrorMessage
}

// registerAndLogin creates a user and returns its id and session token.
func registerAndLogin(t *testing.T, srv *Server, firstName, lastName, email string) (int64, string) {
	t.Helper()

	w := doJSON(t, srv, http.MethodPost, "/users", gin.H{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
		"password":   testPassword,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, srv, http.MethodPost, "/login", gin.H{
		"email":    email,
		"password": testPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		UserID       int64  `json:"user_id"`
		SessionToken string `json:"session_token"`
	}
	decodeJSON(t, w, &resp)
	require.NotZero(t, resp.UserID)
	require.NotEmpty(t, resp.SessionToken)
	return resp.UserID, resp.SessionToken
}

// createItem lists an item ending an hour from now and returns its id.
func createItem(t *testing.T, srv *Server, token, name string, startingBid float64) int64 {
	t.Helper()

	w := doJSON(t, srv, http.MethodPost, "/item", gin.H{
		"name":         name,
		"description":  "a perfectly ordinary " + name,
		"starting_bid": startingBid,
		"end_date":     time.Now().Add(time.Hour).UnixMilli(),
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ItemID int64 `json:"item_id"`
	}
	decodeJSON(t, w, &resp)
	require.NotZero(t, resp.ItemID)
	return resp.ItemID
}

// endItem moves an item's end date into the past directly in the database,
// since the API never accepts past end dates.
func endItem(t *testing.T, db *gorm.DB, itemID int64) {
	t.Helper()
	err := db.Model(&models.Item{}).
		Where("item_id = ?", itemID).
		Update("end_date", time.Now().Add(-time.Hour).UnixMilli()).Error
	require.NoError(t, err)
}
