package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("GeneratesCorrelationIDIfNotProvided", func(t *testing.T) {
		router := gin.New()
		router.Use(CorrelationID())
		var capturedID string
		router.GET("/test", func(c *gin.Context) {
			capturedID = c.GetString(CorrelationIDKey)
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		headerID := rr.Header().Get(CorrelationIDHeader)
		assert.NotEmpty(t, headerID)
		_, err := uuid.Parse(headerID)
		assert.NoError(t, err, "generated correlation ID should be a valid UUID")
		assert.Equal(t, headerID, capturedID)
	})

	t.Run("UsesCorrelationIDIfProvided", func(t *testing.T) {
		router := gin.New()
		router.Use(CorrelationID())
		var capturedID string
		router.GET("/test", func(c *gin.Context) {
			capturedID = c.GetString(CorrelationIDKey)
			c.Status(http.StatusOK)
		})

		providedID := uuid.New().String()
		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(CorrelationIDHeader, providedID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, providedID, rr.Header().Get(CorrelationIDHeader))
		assert.Equal(t, providedID, capturedID)
	})
}

func TestGetCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetCorrelationID(c))

	c.Set(CorrelationIDKey, "some-id")
	assert.Equal(t, "some-id", GetCorrelationID(c))
}
