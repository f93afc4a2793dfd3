package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/authenticating"
	"github.com/agencydash/analytics-dashboard-api/pkg/apiErrors"
	"github.com/agencydash/analytics-dashboard-api/pkg/log"
	"github.com/agencydash/analytics-dashboard-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
)

// GetUser returns one user's profile by ID.
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if idStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user ID is required", nil)
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid user ID", nil)
			return
		}

		user, err := service.GetUserProfile(id)
		if err != nil {
			if errors.Is(err, authenticating.ErrUserNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "user not found", nil)
				return
			}
			log.L.WithError(err).Error("failed to fetch user")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to fetch user", nil)
			return
		}

		writeJSON(w, user)
	}
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user *domain.User

		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if user.Name == "" || user.Email == "" || user.PasswordHash == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "name, email and password are required", nil)
			return
		}

		user, err := service.CreateUser(user)
		if err != nil {
			log.L.WithError(err).Error("failed to create user")

			if errors.Is(err, authenticating.ErrUserAlreadyExists) {
				apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "email already registered", nil)
				return
			}

			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to create user", nil)
			return
		}

		user.PasswordHash = ""

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(user); err != nil {
			log.L.WithError(err).Error("failed to encode response")
		}
	}
}

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser()
		if err != nil {
			log.L.WithError(err).Error("failed to list users")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to list users", nil)
			return
		}

		for _, user := range users {
			user.PasswordHash = ""
		}

		writeJSON(w, users)
	}
}

// UpdateUser updates a user. Users can edit their own profile; only admins
// can edit other users or change roles.
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if idStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user ID is required", nil)
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid user ID", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || (userClaims.UserID != id && userClaims.UserRoleID != middleware.RoleAdmin) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "cannot edit this user", nil)
			return
		}

		var updateReq domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		updateReq.ID = id

		if updateReq.RoleID != nil && userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "only admins can change user roles", nil)
			return
		}

		if err := service.UpdateUser(&updateReq); err != nil {
			log.L.WithError(err).WithField("user_id", id).Error("failed to update user")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to update user", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}
