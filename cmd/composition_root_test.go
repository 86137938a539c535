package cmd_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog/cmd"
	httpin "catalog/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCompositionRoot_SharesRepository(t *testing.T) {
	// Given
	root := cmd.NewCompositionRoot(cmd.Config{}, zap.NewNop())
	e := httpin.NewEcho(zap.NewNop())
	root.CreateHTTPServer().Register(e)

	// When
	create := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(`{"name":"Movie"}`))
	create.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	createRec := httptest.NewRecorder()
	e.ServeHTTP(createRec, create)

	listRec := httptest.NewRecorder()
	e.ServeHTTP(listRec, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))

	// Then
	require.Equal(t, http.StatusCreated, createRec.Code)
	require.Equal(t, http.StatusOK, listRec.Code)
	assert.Contains(t, listRec.Body.String(), `"name":"Movie"`)
}

func TestCompositionRoot_CreateJobManager(t *testing.T) {
	root := cmd.NewCompositionRoot(cmd.Config{StatsSchedule: "@every 1h"}, zap.NewNop())
	jm := root.CreateJobManager()

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}
