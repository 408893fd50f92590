package categories

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SHAIK-RUMEENA/PostBloging/models"
	"github.com/SHAIK-RUMEENA/PostBloging/testutils"
	"github.com/SHAIK-RUMEENA/PostBloging/utils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()
	os.Exit(m.Run())
}

func TestGetAllCategories(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/categories", GetAllCategories)

	req, _ := http.NewRequest(http.MethodGet, "/categories", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody utils.Response
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.True(t, respBody.Success)

	list, ok := respBody.Data.([]interface{})
	assert.True(t, ok)
	assert.Len(t, list, len(models.Categories))
	assert.Equal(t, "Technology", list[0])
}
