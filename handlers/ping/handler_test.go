package ping

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SHAIK-RUMEENA/PostBloging/testutils"
	"github.com/SHAIK-RUMEENA/PostBloging/utils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()
	os.Exit(m.Run())
}

func TestHandlePing(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/ping", New().HandlePing)

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response utils.Response
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Ping successful", response.Message)

	data, ok := response.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "pong", data["message"])
}
