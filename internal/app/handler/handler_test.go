package handler

import (
	"net/http/httptest"
	"testing"

	"licensehub/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("userID", uint(7))
	c.Set("userRole", role.Manager)

	id, r, err := userFromContext(c)

	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, role.Manager, r)
}

func TestUserFromContextNotAuthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, _, err := userFromContext(c)

	require.Error(t, err)
}

func TestUserFromContextInvalidIDType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("userID", "7")

	_, _, err := userFromContext(c)

	require.Error(t, err)
}
