/*
File   : aoi/internal/httpserver/server_test.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akashmaji946/aoi/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(&config.ServerConfig{Port: 8080, NumericLimit: 148}, zap.NewNop())
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Aoi interpreter server is running", rec.Body.String())
}

func TestHandleRun_ExecutesSource(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/run", strings.NewReader(`write(1+2);`))
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3\n", rec.Body.String())
}

func TestHandleRun_RejectsScanKeyword(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/run", strings.NewReader(`scan(x);`))
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Error: Usage of 'scan' keyword is not allowed.", rec.Body.String())
}

func TestHandleRun_RejectsOversizedLiteral(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/run", strings.NewReader(`write(200);`))
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	assert.Equal(t, "Error: Numeric value '200' exceeds the limit of 148.", rec.Body.String())
}

func TestHandleRun_SyntaxErrorReportedInBody(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/run", strings.NewReader(`var = 1;`))
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Parsing failed due to syntax errors.", rec.Body.String())
}
