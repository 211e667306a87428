package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCurrentAdminIDReadsMiddlewareValue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("adminId", uint(7))
	assert.Equal(t, uint(7), CurrentAdminID(c))
}

func TestCurrentAdminIDToleratesClaimTypes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("adminId", float64(3))
	assert.Equal(t, uint(3), CurrentAdminID(c))
}

func TestCurrentAdminIDZeroWhenUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, uint(0), CurrentAdminID(c))
}
