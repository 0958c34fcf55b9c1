package errors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorMiddleware_RendersAppError(t *testing.T) {
	r := gin.New()
	r.Use(ErrorMiddleware())
	r.GET("/missing", func(c *gin.Context) {
		c.Error(ErrEventNotFound)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Event not found")
}

func TestErrorMiddleware_WrapsUnknownErrorsWithoutMutatingSentinels(t *testing.T) {
	r := gin.New()
	r.Use(ErrorMiddleware())
	r.GET("/boom", func(c *gin.Context) {
		c.Error(fmt.Errorf("connection reset"))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")

	// The shared sentinel must stay pristine; wrapping happens on a fresh
	// value so concurrent requests never race on it.
	assert.Nil(t, ErrInternalServer.Err)
	assert.Nil(t, ErrUnauthorized.Err)
	assert.Nil(t, ErrEventNotFound.Err)
}

func TestErrorMiddleware_LastErrorWins(t *testing.T) {
	r := gin.New()
	r.Use(ErrorMiddleware())
	r.GET("/multi", func(c *gin.Context) {
		c.Error(ErrUnauthorized)
		c.Error(New(http.StatusBadGateway, "Failed to create checkout session", nil))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/multi", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to create checkout session")
}
