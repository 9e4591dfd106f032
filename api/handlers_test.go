package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"policyedge/analysis"
	"policyedge/config"
	"policyedge/db"
	"policyedge/models"
	"policyedge/utils"
)

// setupTestServer builds the full router over an empty in-memory database
// using the demo token scheme.
func setupTestServer(t *testing.T) (*gin.Engine, *db.Database, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment:      "test",
		HTTP:             config.HTTPConfig{Address: "127.0.0.1", Port: 8000},
		Auth:             config.AuthConfig{TokenScheme: config.TokenSchemeDemo},
		OpenAIConfigured: true,
	}

	database, err := db.NewDatabase(db.Options{})
	require.NoError(t, err, "Failed to initialize test database")

	tokens, err := utils.NewTokenScheme(cfg)
	require.NoError(t, err)

	engine := analysis.NewEngine(database.Policies, database.Analyses, nil)
	router := SetupRouter(cfg, database, engine, tokens, zerolog.Nop())
	return router, database, cfg
}

// performRequest executes an HTTP request against the test router.
// If token is provided, it adds the Authorization header.
func performRequest(router *gin.Engine, method, path string, body io.Reader, contentType, token string) *httptest.ResponseRecorder {
	// httptest.NewRequest fills RequestURI, which gin-swagger routes on.
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func performForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	return performRequest(router, http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", "")
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, data interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	bodyBytes, err := json.Marshal(data)
	require.NoError(t, err, "Failed to marshal JSON body for request")
	return performRequest(router, method, path, bytes.NewReader(bodyBytes), "application/json", token)
}

// uploadPolicy posts a multipart upload. A nil content omits the file part.
func uploadPolicy(t *testing.T, router *gin.Engine, token string, fields map[string]string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if content != nil {
		part, err := writer.CreateFormFile("file", "policy.txt")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return performRequest(router, http.MethodPost, "/policies", &buf, writer.FormDataContentType(), token)
}

func uploadTestPolicy(t *testing.T, router *gin.Engine, token, name, policyType string, content []byte) int {
	t.Helper()
	rr := uploadPolicy(t, router, token, map[string]string{"policy_name": name, "policy_type": policyType}, content)
	require.Equal(t, http.StatusOK, rr.Code, "upload failed: %s", rr.Body.String())
	var resp UploadPolicyResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.PolicyID
}

// createTestUserAndLogin registers and logs in a user, returning the token.
func createTestUserAndLogin(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	rr := performForm(router, "/users", url.Values{"name": {"Test " + email}, "email": {email}, "password": {password}})
	require.Equal(t, http.StatusOK, rr.Code, "registration failed: %s", rr.Body.String())

	rr = performForm(router, "/token", url.Values{"username": {email}, "password": {password}})
	require.Equal(t, http.StatusOK, rr.Code, "login failed: %s", rr.Body.String())
	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func decodeAPIError(t *testing.T, rr *httptest.ResponseRecorder) utils.APIError {
	t.Helper()
	var apiErr utils.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr), "body: %s", rr.Body.String())
	return apiErr
}

// --- Service endpoints ---

func TestServiceEndpoints(t *testing.T) {
	router, _, cfg := setupTestServer(t)

	t.Run("Root", func(t *testing.T) {
		rr := performRequest(router, http.MethodGet, "/", nil, "", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Welcome to PolicyEdgeAI API", gjson.Get(rr.Body.String(), "message").String())
	})

	t.Run("Health", func(t *testing.T) {
		rr := performRequest(router, http.MethodGet, "/health", nil, "", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())
	})

	t.Run("API key status", func(t *testing.T) {
		rr := performRequest(router, http.MethodGet, "/api-keys", nil, "", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"openai":"Configured","anthropic":"Not configured"}`, rr.Body.String())

		cfg.AnthropicConfigured = true
		rr = performRequest(router, http.MethodGet, "/api-keys", nil, "", "")
		assert.Equal(t, "Configured", gjson.Get(rr.Body.String(), "anthropic").String())
	})

	t.Run("Request id echoed", func(t *testing.T) {
		rr := performRequest(router, http.MethodGet, "/health", nil, "", "")
		assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	})

	t.Run("Swagger document", func(t *testing.T) {
		rr := performRequest(router, http.MethodGet, "/swagger/doc.json", nil, "", "")
		require.Equal(t, http.StatusOK, rr.Code)
		doc := rr.Body.String()
		assert.Equal(t, "PolicyEdgeAI API", gjson.Get(doc, "info.title").String())
		assert.True(t, gjson.Get(doc, `paths./analysis.post`).Exists())
		assert.True(t, gjson.Get(doc, `paths./dashboard/stats.get`).Exists())
	})
}

// --- Authentication ---

func TestAuthEndpoints(t *testing.T) {
	router, database, _ := setupTestServer(t)

	t.Run("Register success", func(t *testing.T) {
		rr := performForm(router, "/users", url.Values{
			"name": {"Alice"}, "email": {"alice@example.com"}, "password": {"pw1"}, "company": {"Acme"},
		})
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"User registered successfully"}`, rr.Body.String())

		user, found := database.Users.GetByEmail("alice@example.com")
		require.True(t, found)
		assert.Equal(t, 1, user.ID)
		require.NotNil(t, user.Company)
		assert.Equal(t, "Acme", *user.Company)
	})

	t.Run("Register duplicate email", func(t *testing.T) {
		rr := performForm(router, "/users", url.Values{"name": {"Alice 2"}, "email": {"alice@example.com"}, "password": {"other"}})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		apiErr := decodeAPIError(t, rr)
		assert.Equal(t, utils.KindConflict, apiErr.Kind)
		assert.Equal(t, "Email already registered", apiErr.Detail)
	})

	t.Run("Register missing field", func(t *testing.T) {
		rr := performForm(router, "/users", url.Values{"name": {"NoEmail"}, "password": {"pw"}})
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, utils.KindValidation, decodeAPIError(t, rr).Kind)
	})

	var token string
	t.Run("Login success", func(t *testing.T) {
		rr := performForm(router, "/token", url.Values{"username": {"alice@example.com"}, "password": {"pw1"}})
		require.Equal(t, http.StatusOK, rr.Code)
		var resp TokenResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "bearer", resp.TokenType)
		assert.True(t, strings.HasPrefix(resp.AccessToken, "token_1_"), "got %s", resp.AccessToken)
		token = resp.AccessToken
	})

	t.Run("Login failures", func(t *testing.T) {
		testCases := []struct {
			name     string
			form     url.Values
			wantCode int
		}{
			{"Wrong password", url.Values{"username": {"alice@example.com"}, "password": {"nope"}}, http.StatusUnauthorized},
			{"Unknown email", url.Values{"username": {"ghost@example.com"}, "password": {"pw1"}}, http.StatusUnauthorized},
			{"Email case differs", url.Values{"username": {"Alice@example.com"}, "password": {"pw1"}}, http.StatusUnauthorized},
			{"Missing password", url.Values{"username": {"alice@example.com"}}, http.StatusUnprocessableEntity},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				rr := performForm(router, "/token", tc.form)
				assert.Equal(t, tc.wantCode, rr.Code)
				if tc.wantCode == http.StatusUnauthorized {
					assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
					assert.Equal(t, "Incorrect email or password", decodeAPIError(t, rr).Detail)
				}
			})
		}
	})

	t.Run("Me", func(t *testing.T) {
		require.NotEmpty(t, token)
		rr := performRequest(router, http.MethodGet, "/users/me", nil, "", token)
		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Equal(t, int64(1), gjson.Get(body, "id").Int())
		assert.Equal(t, "Alice", gjson.Get(body, "name").String())
		assert.Equal(t, "alice@example.com", gjson.Get(body, "email").String())
		assert.Equal(t, "Acme", gjson.Get(body, "company").String())
		assert.False(t, gjson.Get(body, "password").Exists(), "password must never be serialized")
	})

	t.Run("Me without company", func(t *testing.T) {
		bobToken := createTestUserAndLogin(t, router, "bob@example.com", "pw2")
		rr := performRequest(router, http.MethodGet, "/users/me", nil, "", bobToken)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, gjson.Null, gjson.Get(rr.Body.String(), "company").Type)
	})

	t.Run("Forged token for unknown user", func(t *testing.T) {
		rr := performRequest(router, http.MethodGet, "/users/me", nil, "", "token_999_0")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
		assert.Equal(t, utils.KindUnauthorized, decodeAPIError(t, rr).Kind)
	})

	t.Run("Missing token", func(t *testing.T) {
		rr := performRequest(router, http.MethodGet, "/users/me", nil, "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Not authenticated", decodeAPIError(t, rr).Detail)
	})
}

// --- API keys ---

func TestUpdateAPIKeys(t *testing.T) {
	router, _, _ := setupTestServer(t)
	token := createTestUserAndLogin(t, router, "keys@example.com", "pw")

	testCases := []struct {
		name     string
		body     string
		wantCode int
		wantKeys []string
	}{
		{"Both keys", `{"openai_key":"sk-1","anthropic_key":"ak-1"}`, http.StatusOK, []string{"openai_key", "anthropic_key"}},
		{"One key", `{"openai_key":"sk-1"}`, http.StatusOK, []string{"openai_key"}},
		{"Null key", `{"openai_key":null}`, http.StatusOK, []string{}},
		{"Empty object", `{}`, http.StatusOK, []string{}},
		{"Empty body", ``, http.StatusOK, []string{}},
		{"Not JSON", `openai_key=sk`, http.StatusUnprocessableEntity, nil},
		{"Not an object", `["sk-1"]`, http.StatusUnprocessableEntity, nil},
		{"Non-string key", `{"anthropic_key":42}`, http.StatusUnprocessableEntity, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := performRequest(router, http.MethodPut, "/users/api-keys", strings.NewReader(tc.body), "application/json", token)
			assert.Equal(t, tc.wantCode, rr.Code, "body: %s", rr.Body.String())
			if tc.wantCode != http.StatusOK {
				assert.Equal(t, utils.KindValidation, decodeAPIError(t, rr).Kind)
				return
			}
			var resp UpdateAPIKeysResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "API keys updated successfully", resp.Message)
			assert.Equal(t, tc.wantKeys, resp.Keys)
		})
	}

	t.Run("Requires auth", func(t *testing.T) {
		rr := performRequest(router, http.MethodPut, "/users/api-keys", strings.NewReader(`{}`), "application/json", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

// --- Policies and analysis ---

func TestPolicyAnalysisScenario(t *testing.T) {
	router, _, _ := setupTestServer(t)
	token := createTestUserAndLogin(t, router, "alice@example.com", "pw1")

	policyID := uploadTestPolicy(t, router, token, "DPA", "Privacy Policy", []byte("hello"))
	assert.Equal(t, 1, policyID)

	rr := performRequest(router, http.MethodGet, "/policies/1", nil, "", token)
	require.Equal(t, http.StatusOK, rr.Code)
	var policy models.Policy
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &policy))
	assert.Equal(t, "DPA", policy.Name)
	assert.Equal(t, "Privacy Policy", policy.Type)
	assert.Equal(t, "Uploaded", policy.Status)
	assert.Equal(t, "hello", policy.ContentPreview)
	assert.Equal(t, 1, policy.UserID)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, gjson.Get(rr.Body.String(), "upload_date").String())

	rr = performJSON(t, router, http.MethodPost, "/analysis", gin.H{"policy_id": policyID, "analysis_type": "standard"}, token)
	require.Equal(t, http.StatusOK, rr.Code, "body: %s", rr.Body.String())
	var result models.AnalysisResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 1, result.ID)
	assert.Equal(t, policyID, result.PolicyID)
	assert.Equal(t, "standard", result.AnalysisType)
	assert.Equal(t, map[string]string{
		"GDPR":  "87% compliant",
		"CCPA":  "92% compliant",
		"HIPAA": "Not applicable",
	}, result.Compliance)
	assert.Len(t, result.Insights, 3)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, gjson.Get(rr.Body.String(), "created_at").String())
	created := rr.Body.String()

	rr = performRequest(router, http.MethodGet, "/analysis/1", nil, "", token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, created, rr.Body.String())
}

func TestUploadPolicy(t *testing.T) {
	router, _, _ := setupTestServer(t)
	token := createTestUserAndLogin(t, router, "up@example.com", "pw")

	t.Run("Sequential ids", func(t *testing.T) {
		for want := 1; want <= 3; want++ {
			got := uploadTestPolicy(t, router, token, fmt.Sprintf("P%d", want), "Other", []byte("x"))
			assert.Equal(t, want, got)
		}
	})

	t.Run("Notes are kept", func(t *testing.T) {
		rr := uploadPolicy(t, router, token, map[string]string{"policy_name": "N", "policy_type": "Other", "notes": "draft v2"}, []byte("x"))
		require.Equal(t, http.StatusOK, rr.Code)
		id := gjson.Get(rr.Body.String(), "policy_id").Int()

		rr = performRequest(router, http.MethodGet, fmt.Sprintf("/policies/%d", id), nil, "", token)
		assert.Equal(t, "draft v2", gjson.Get(rr.Body.String(), "notes").String())
	})

	t.Run("Empty file", func(t *testing.T) {
		id := uploadTestPolicy(t, router, token, "Empty", "Other", []byte{})
		rr := performRequest(router, http.MethodGet, fmt.Sprintf("/policies/%d", id), nil, "", token)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "", gjson.Get(rr.Body.String(), "content_preview").String())
		assert.True(t, gjson.Get(rr.Body.String(), "content_preview").Exists())
	})

	t.Run("Large file preview", func(t *testing.T) {
		id := uploadTestPolicy(t, router, token, "Big", "Other", bytes.Repeat([]byte("a"), 4096))
		rr := performRequest(router, http.MethodGet, fmt.Sprintf("/policies/%d", id), nil, "", token)
		assert.Len(t, gjson.Get(rr.Body.String(), "content_preview").String(), 500)
	})

	t.Run("Missing fields", func(t *testing.T) {
		testCases := []struct {
			name    string
			fields  map[string]string
			content []byte
		}{
			{"No file", map[string]string{"policy_name": "A", "policy_type": "Other"}, nil},
			{"No name", map[string]string{"policy_type": "Other"}, []byte("x")},
			{"No type", map[string]string{"policy_name": "A"}, []byte("x")},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				rr := uploadPolicy(t, router, token, tc.fields, tc.content)
				assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, "body: %s", rr.Body.String())
			})
		}
	})

	t.Run("Requires auth", func(t *testing.T) {
		rr := uploadPolicy(t, router, "", map[string]string{"policy_name": "A", "policy_type": "Other"}, []byte("x"))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestListPolicies(t *testing.T) {
	router, _, _ := setupTestServer(t)
	token := createTestUserAndLogin(t, router, "list@example.com", "pw")

	rr := performRequest(router, http.MethodGet, "/policies", nil, "", token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	uploadTestPolicy(t, router, token, "Long", "Other", bytes.Repeat([]byte("b"), 300))
	uploadTestPolicy(t, router, token, "Empty", "Other", []byte{})

	rr = performRequest(router, http.MethodGet, "/policies", nil, "", token)
	require.Equal(t, http.StatusOK, rr.Code)
	var summaries []models.PolicySummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summaries))
	require.Len(t, summaries, 2)
	require.NotNil(t, summaries[0].ContentPreview)
	assert.Len(t, *summaries[0].ContentPreview, 100)
	assert.Nil(t, summaries[1].ContentPreview)
	assert.Equal(t, gjson.Null, gjson.Get(rr.Body.String(), "1.content_preview").Type)
}

func TestAnalysisValidation(t *testing.T) {
	router, _, _ := setupTestServer(t)
	token := createTestUserAndLogin(t, router, "val@example.com", "pw")
	uploadTestPolicy(t, router, token, "P", "Other", []byte("x"))

	testCases := []struct {
		name string
		body string
	}{
		{"Missing policy_id", `{"analysis_type":"standard"}`},
		{"Missing analysis_type", `{"policy_id":1}`},
		{"String policy_id", `{"policy_id":"one","analysis_type":"standard"}`},
		{"Malformed JSON", `{"policy_id":`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := performRequest(router, http.MethodPost, "/analysis", strings.NewReader(tc.body), "application/json", token)
			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, "body: %s", rr.Body.String())
			assert.Equal(t, utils.KindValidation, decodeAPIError(t, rr).Kind)
		})
	}

	t.Run("Empty analysis type is recorded", func(t *testing.T) {
		rr := performJSON(t, router, http.MethodPost, "/analysis", gin.H{"policy_id": 1, "analysis_type": ""}, token)
		require.Equal(t, http.StatusOK, rr.Code, "body: %s", rr.Body.String())
		analysisType := gjson.Get(rr.Body.String(), "analysis_type")
		assert.True(t, analysisType.Exists())
		assert.Equal(t, "", analysisType.String())
	})

	t.Run("Null analysis type is missing", func(t *testing.T) {
		rr := performRequest(router, http.MethodPost, "/analysis", strings.NewReader(`{"policy_id":1,"analysis_type":null}`), "application/json", token)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Policy id zero is not missing", func(t *testing.T) {
		rr := performJSON(t, router, http.MethodPost, "/analysis", gin.H{"policy_id": 0, "analysis_type": "standard"}, token)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Non-integer path ids", func(t *testing.T) {
		for _, path := range []string{"/policies/abc", "/analysis/1.5"} {
			rr := performRequest(router, http.MethodGet, path, nil, "", token)
			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, path)
		}
	})

	t.Run("Unknown ids", func(t *testing.T) {
		rr := performRequest(router, http.MethodGet, "/policies/42", nil, "", token)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Policy not found", decodeAPIError(t, rr).Detail)

		rr = performRequest(router, http.MethodGet, "/analysis/42", nil, "", token)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Analysis result not found", decodeAPIError(t, rr).Detail)
	})
}

func TestOwnershipIsolation(t *testing.T) {
	router, _, _ := setupTestServer(t)
	aliceToken := createTestUserAndLogin(t, router, "alice@example.com", "pw1")
	bobToken := createTestUserAndLogin(t, router, "bob@example.com", "pw2")

	alicePolicy := uploadTestPolicy(t, router, aliceToken, "Alice's", "Terms of Service", []byte("terms"))
	rr := performJSON(t, router, http.MethodPost, "/analysis", gin.H{"policy_id": alicePolicy, "analysis_type": "standard"}, aliceToken)
	require.Equal(t, http.StatusOK, rr.Code)
	aliceAnalysis := gjson.Get(rr.Body.String(), "id").Int()
	assert.Equal(t, "76% compliant", gjson.Get(rr.Body.String(), "compliance.Consumer Protection").String())

	t.Run("Get policy", func(t *testing.T) {
		rr := performRequest(router, http.MethodGet, fmt.Sprintf("/policies/%d", alicePolicy), nil, "", bobToken)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, utils.KindNotFound, decodeAPIError(t, rr).Kind)
	})

	t.Run("List policies", func(t *testing.T) {
		rr := performRequest(router, http.MethodGet, "/policies", nil, "", bobToken)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Analyse policy", func(t *testing.T) {
		rr := performJSON(t, router, http.MethodPost, "/analysis", gin.H{"policy_id": alicePolicy, "analysis_type": "standard"}, bobToken)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Get analysis", func(t *testing.T) {
		rr := performRequest(router, http.MethodGet, fmt.Sprintf("/analysis/%d", aliceAnalysis), nil, "", bobToken)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Analysis result not found", decodeAPIError(t, rr).Detail)
	})

	t.Run("Dashboard", func(t *testing.T) {
		rr := performRequest(router, http.MethodGet, "/dashboard/stats", nil, "", bobToken)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, int64(0), gjson.Get(rr.Body.String(), "total_policies").Int())
		assert.Equal(t, int64(0), gjson.Get(rr.Body.String(), "total_analyses").Int())
	})
}

func TestDashboardStats(t *testing.T) {
	router, _, _ := setupTestServer(t)
	token := createTestUserAndLogin(t, router, "dash@example.com", "pw")

	for i := 1; i <= 4; i++ {
		id := uploadTestPolicy(t, router, token, fmt.Sprintf("P%d", i), "Privacy Policy", []byte("x"))
		if i <= 2 {
			rr := performJSON(t, router, http.MethodPost, "/analysis", gin.H{"policy_id": id, "analysis_type": "standard"}, token)
			require.Equal(t, http.StatusOK, rr.Code)
		}
	}

	rr := performRequest(router, http.MethodGet, "/dashboard/stats", nil, "", token)
	require.Equal(t, http.StatusOK, rr.Code)

	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 4, stats.TotalPolicies)
	assert.Equal(t, 2, stats.TotalAnalyses)
	assert.Equal(t, "85%", stats.AvgComplianceScore)
	require.Len(t, stats.RecentActivities, 3)
	// All uploaded on the same day, so upload order is kept.
	assert.Equal(t, "P1", stats.RecentActivities[0].PolicyName)
	assert.Equal(t, "upload", stats.RecentActivities[0].Type)

	t.Run("Requires auth", func(t *testing.T) {
		rr := performRequest(router, http.MethodGet, "/dashboard/stats", nil, "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestCORSPreflight(t *testing.T) {
	router, _, _ := setupTestServer(t)
	req, _ := http.NewRequest(http.MethodOptions, "/policies", nil)
	req.Header.Set("Origin", "http://ui.test")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://ui.test", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestParseAPIKeys(t *testing.T) {
	keys, err := parseAPIKeys([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, keys)

	keys, err = parseAPIKeys([]byte(`{"anthropic_key":"a","openai_key":"o","extra":1}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"openai_key", "anthropic_key"}, keys, "order follows the known fields")

	_, err = parseAPIKeys([]byte(`"just a string"`))
	assert.Error(t, err)
}
