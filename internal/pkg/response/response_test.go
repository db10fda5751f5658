package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body io.Reader) SemanticResponse {
	t.Helper()
	var out SemanticResponse
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c fiber.Ctx) error { return Success(c, fiber.StatusOK, "", []string{"a"}) })
	app.Get("/created", func(c fiber.Ctx) error { return Created(c, map[string]string{"id": "x"}) })
	app.Get("/gone", func(c fiber.Ctx) error { return NoContent(c) })
	app.Get("/bad", func(c fiber.Ctx) error { return Error(c, 42, "", nil) })

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	body := decode(t, resp.Body)
	assert.Equal(t, 200, body.Status)
	assert.Equal(t, MessageOK, body.Message)

	resp, err = app.Test(httptest.NewRequest("GET", "/created", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, MessageCreated, decode(t, resp.Body).Message)

	resp, err = app.Test(httptest.NewRequest("GET", "/gone", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Empty(t, b)

	resp, err = app.Test(httptest.NewRequest("GET", "/bad", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, MessageInternalServerError, decode(t, resp.Body).Message)
}
