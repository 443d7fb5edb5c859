package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest creates and executes an HTTP request with a JSON body
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders creates and executes an HTTP request with custom headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// MakeRawRequest executes a request with a pre-built body
func (suite *HTTPTestSuite) MakeRawRequest(method, url, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// Envelope mirrors the result envelope for decoding in tests
type Envelope struct {
	OK      bool            `json:"ok"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Kind    string            `json:"kind"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

// DecodeEnvelope asserts the status code and decodes the result envelope
func DecodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int) Envelope {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	var env Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	return env
}

// AssertErrorResponse asserts a failed envelope with the given kind and message
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, kind, message string) {
	t.Helper()
	env := DecodeEnvelope(t, recorder, expectedStatus)
	assert.False(t, env.OK)
	require.NotNil(t, env.Error)
	assert.Equal(t, kind, env.Error.Kind)
	if message != "" {
		assert.Equal(t, message, env.Error.Message)
	}
}

// DecodeData asserts a successful envelope and unmarshals its data into target
func DecodeData(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) Envelope {
	t.Helper()
	env := DecodeEnvelope(t, recorder, expectedStatus)
	assert.True(t, env.OK)
	if target != nil {
		require.NoError(t, json.Unmarshal(env.Data, target))
	}
	return env
}

// FindCookie returns the named cookie set on the response
func FindCookie(recorder *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range recorder.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
