package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	userID uuid.UUID
	role   string
}

func (c stubClaims) GetUserID() uuid.UUID { return c.userID }
func (c stubClaims) GetRole() string      { return c.role }

type stubValidator struct {
	wantToken string
	claims    stubClaims
}

func (v stubValidator) ValidateToken(tokenString string) (ClaimsGetter, error) {
	if tokenString != v.wantToken {
		return nil, fmt.Errorf("unknown token")
	}
	return v.claims, nil
}

func TestAuthInjectsIdentity(t *testing.T) {
	userID := uuid.New()
	validator := stubValidator{
		wantToken: "good-token",
		claims:    stubClaims{userID: userID, role: "admin"},
	}

	var gotID uuid.UUID
	var gotRole string
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		gotID, err = GetUserID(r)
		require.NoError(t, err)
		gotRole, err = GetRole(r)
		require.NoError(t, err)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "admin", gotRole)
}

func TestAuthRejects(t *testing.T) {
	validator := stubValidator{wantToken: "good-token"}
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"Missing header", ""},
		{"Not bearer", "Basic abc"},
		{"Bearer without token", "Bearer"},
		{"Wrong token", "Bearer bad-token"},
		{"Extra parts", "Bearer one two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetIdentityMissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetUserID(req)
	assert.Error(t, err)
	_, err = GetRole(req)
	assert.Error(t, err)
}
