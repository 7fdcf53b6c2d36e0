package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		raw, country, want string
		ok                 bool
	}{
		{"08031234567", "NG", "+2348031234567", true},
		{"+234 803 123 4567", "", "+2348031234567", true},
		{"234-703-123-4567", "NG", "+2347031234567", true},
		{"0241234567", "GH", "+233241234567", true},
		{"+233 54 123 4567", "", "+233541234567", true},
		{"0241234567", "NG", "", false},
		{"12345", "", "", false},
		{"08531234567", "NG", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizePhone(tc.raw, tc.country)
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "hello world", SanitizeText("  hello\t\n  world \x00", 0))
	assert.Equal(t, "abc", SanitizeText("abcdef", 3))
	assert.Equal(t, "", SanitizeText("\u200b\x07", 10))
	assert.Equal(t, "çà va", SanitizeText("çà   va", 10))
}

func TestSanitizeList(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, SanitizeList([]string{" a ", "", "b   c", "\x01"}, 10))
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Minute)

	token, err := issuer.CreateToken("admin", "admin")
	require.NoError(t, err)

	claims, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "admin", claims.Subject)

	_, err = NewTokenIssuer("other", time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenIssuer_MissingSecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Minute).CreateToken("a", "admin")
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestHashAdminPassword(t *testing.T) {
	hash, err := HashAdminPassword("correct horse battery\n")
	require.NoError(t, err)
	assert.NoError(t, ComparePasswords(hash, "correct horse battery"))
	assert.Error(t, ComparePasswords(hash, "wrong"))

	_, err = HashAdminPassword("  short  \n")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestValidationError_IsInvalidRequest(t *testing.T) {
	err := NewValidationError("phone", "must be a valid %s number", "NG")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Equal(t, "phone: must be a valid NG number", err.Error())
}

func TestHandleServiceError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		err  error
		code int
	}{
		{NewValidationError("phone", "bad"), http.StatusBadRequest},
		{&DetailedError{Err: ErrPriceMismatch, Details: map[string]int{"serverTotal": 5000}}, http.StatusBadRequest},
		{fmt.Errorf("wrap: %w", ErrInvalidSignature), http.StatusUnauthorized},
		{ErrOrderNotFound, http.StatusNotFound},
		{&DetailedError{Err: ErrFileTooLarge}, http.StatusRequestEntityTooLarge},
		{ErrUnsupportedMedia, http.StatusUnsupportedMediaType},
		{ErrMissingConfig, http.StatusInternalServerError},
		{fmt.Errorf("%w: timeout", ErrUpstream), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("trace_id", "t-1")

		HandleServiceError(c, tc.err)
		assert.Equal(t, tc.code, w.Code, tc.err.Error())

		var resp APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp.Status)
		assert.Equal(t, "t-1", resp.TraceID)
	}
}
