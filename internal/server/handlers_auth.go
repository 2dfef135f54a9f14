package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Sayak1321/faculty-recruitment-system/internal/db"
	"github.com/Sayak1321/faculty-recruitment-system/internal/server/middleware"
)

// RegisterRequest represents the request body for /auth/register
type RegisterRequest struct {
	FullName   string `json:"full_name" validate:"required,min=1,max=200"`
	Department string `json:"department,omitempty" validate:"max=200"`
	Username   string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email      string `json:"email" validate:"required,email"`
	Mobile     string `json:"mobile,omitempty" validate:"omitempty,min=8,max=20"`
	Password   string `json:"password" validate:"required,min=8,max=128"`
	Role       string `json:"role,omitempty" validate:"omitempty,oneof=admin candidate panel"`
}

// LoginRequest represents the request body for /auth/login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the authenticated user and their token
type LoginResponse struct {
	User  db.User `json:"user"`
	Token string  `json:"token"`
}

// handleRegister creates a new account and returns it with a signed token
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	user, err := s.userService.Register(r.Context(), req.FullName, req.Department,
		req.Username, req.Email, req.Mobile, req.Password, req.Role)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusCreated, LoginResponse{User: user, Token: token})
}

// handleLogin authenticates a user and returns a signed token
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	user, err := s.userService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, LoginResponse{User: user, Token: token})
}

// handleMe returns the authenticated user's profile
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := s.db.GetUserByID(r.Context(), userID)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, user)
}

// requireRole rejects the request unless the authenticated user holds one of
// the given roles. Returns false when the response has already been written.
func (s *Server) requireRole(w http.ResponseWriter, r *http.Request, roles ...string) bool {
	role, err := middleware.GetRole(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return false
	}
	for _, want := range roles {
		if role == want {
			return true
		}
	}
	s.serviceError(w, &ErrForbidden{Role: roles[0]})
	return false
}

// extractValidationErrors formats validator errors into a user-friendly message
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
