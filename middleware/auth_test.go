package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/SHAIK-RUMEENA/PostBloging/models"
	"github.com/SHAIK-RUMEENA/PostBloging/testutils"
	"github.com/SHAIK-RUMEENA/PostBloging/utils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()
	os.Exit(m.Run())
}

func protectedRouter(userID, userName *string) *gin.Engine {
	r := testutils.SetupTestRouter()
	r.POST("/protected", JWTAuth(), func(c *gin.Context) {
		*userID = c.GetString("user_id")
		*userName = c.GetString("user_name")
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuth_ExposesActorClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{ID: "abc12345-e89b-12d3-a456-426614174000", Name: "Amy"}
	token, err := utils.GenerateJWT(user, 1)
	assert.NoError(t, err)

	var userID, userName string
	r := protectedRouter(&userID, &userName)

	req, _ := http.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "Amy", userName)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	var userID, userName string
	r := protectedRouter(&userID, &userName)

	req, _ := http.NewRequest(http.MethodPost, "/protected", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Empty(t, userID)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	var userID, userName string
	r := protectedRouter(&userID, &userName)

	req, _ := http.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Empty(t, userID)
}
