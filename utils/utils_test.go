package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGenerateDashlessUUID(t *testing.T) {
	uuid := GenerateDashlessUUID()

	// Check length (should be 32 characters)
	if len(uuid) != 32 {
		t.Errorf("Expected UUID length 32, got %d", len(uuid))
	}

	// Check for dashes
	if strings.Contains(uuid, "-") {
		t.Errorf("Generated UUID should not contain dashes, got %s", uuid)
	}

	if uuid == GenerateDashlessUUID() {
		t.Error("Expected two generated UUIDs to differ")
	}
}

// Helper function to create a test Gin context
func createTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/test", nil) // Add a dummy request
	return c, w
}

func TestGinError(t *testing.T) {
	c, w := createTestContext()
	testMsg := "Generic error"
	testCode := http.StatusTeapot // Use a distinct code

	GinError(c, testCode, "teapot", testMsg)

	assert.Equal(t, testCode, w.Code)

	var response APIError
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "teapot", response.Kind)
	assert.Equal(t, testMsg, response.Detail)
	assert.True(t, c.IsAborted(), "Context should be aborted")
}

func TestGinErrorHelpers(t *testing.T) {
	testCases := []struct {
		name       string
		helperFunc func(*gin.Context, string)
		wantCode   int
		wantKind   string
		wantMsg    string
	}{
		{
			name:       "ValidationError",
			helperFunc: GinValidationError,
			wantCode:   http.StatusUnprocessableEntity,
			wantKind:   KindValidation,
			wantMsg:    "Validation test",
		},
		{
			name:       "Unauthorized",
			helperFunc: GinUnauthorized,
			wantCode:   http.StatusUnauthorized,
			wantKind:   KindUnauthorized,
			wantMsg:    "Unauthorized test",
		},
		{
			name:       "Conflict",
			helperFunc: GinConflict,
			wantCode:   http.StatusBadRequest,
			wantKind:   KindConflict,
			wantMsg:    "Conflict test",
		},
		{
			name:       "NotFound",
			helperFunc: GinNotFound,
			wantCode:   http.StatusNotFound,
			wantKind:   KindNotFound,
			wantMsg:    "Not found test",
		},
		{
			name:       "InternalServerError",
			helperFunc: GinInternalServerError,
			wantCode:   http.StatusInternalServerError,
			wantKind:   KindInternal,
			wantMsg:    "Internal server error test",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := createTestContext()
			tc.helperFunc(c, tc.wantMsg)

			assert.Equal(t, tc.wantCode, w.Code)

			var response APIError
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantKind, response.Kind)
			assert.Equal(t, tc.wantMsg, response.Detail)
			assert.True(t, c.IsAborted(), "Context should be aborted")

			if tc.wantCode == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			} else {
				assert.Empty(t, w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
