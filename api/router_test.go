package api

import (
	"net/http"
	"net/http/httptest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The router must take its CORS origins from the snapshot it was built
// with, not from ambient settings; this suite never loads a config file.
func (s *APITestSuite) TestCORSUsesConfiguredOrigins() {
	req := httptest.NewRequest(http.MethodOptions, "/expense", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	s.api.Router.ServeHTTP(w, req)

	require.Equal(s.T(), http.StatusNoContent, w.Code)
	assert.Equal(s.T(), testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
}

func (s *APITestSuite) TestCORSRejectsUnknownOrigin() {
	req := httptest.NewRequest(http.MethodOptions, "/expense", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	s.api.Router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusForbidden, w.Code)
	assert.Empty(s.T(), w.Header().Get("Access-Control-Allow-Origin"))
}
