package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type useCaseFunc func(ctx context.Context, name string, age int) bool

func (f useCaseFunc) RegisterUser(ctx context.Context, name string, age int) bool {
	return f(ctx, name, age)
}

func newRegisterApp(uc useCaseFunc) *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/users/register", NewUserHandler(uc).Register)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestRegister_Created(t *testing.T) {
	var gotName string
	var gotAge int
	app := newRegisterApp(func(ctx context.Context, name string, age int) bool {
		gotName, gotAge = name, age
		return true
	})

	resp, body := postJSON(t, app, "/api/v1/users/register", `{"name":"alice","age":30}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "alice", gotName)
	assert.Equal(t, 30, gotAge)
	assert.Equal(t, true, body["registered"])
}

func TestRegister_Rejected(t *testing.T) {
	app := newRegisterApp(func(ctx context.Context, name string, age int) bool {
		return false
	})

	resp, body := postJSON(t, app, "/api/v1/users/register", `{"name":"","age":25}`)

	// Validation and persistence failures share one answer.
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "registration rejected", body["message"])
}

func TestRegister_InvalidJSON(t *testing.T) {
	called := false
	app := newRegisterApp(func(ctx context.Context, name string, age int) bool {
		called = true
		return true
	})

	resp, body := postJSON(t, app, "/api/v1/users/register", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid JSON payload", body["message"])
	assert.False(t, called)
}
