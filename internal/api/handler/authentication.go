package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/authenticating"
	"github.com/agencydash/analytics-dashboard-api/pkg/apiErrors"
	"github.com/agencydash/analytics-dashboard-api/pkg/log"
	"github.com/agencydash/analytics-dashboard-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		writeJSON(w, map[string]string{
			"token": token,
		})
	}
}

// GetMe returns the profile of the authenticated user.
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		user, err := service.GetUserProfile(userClaims.UserID)
		if err != nil {
			log.L.WithError(err).Error("failed to load user profile")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to load user data", nil)
			return
		}

		writeJSON(w, user)
	}
}

func handleLoginError(w http.ResponseWriter, err error) {
	// Rejected credentials are routine; anything else points at a fault.
	if authenticating.IsCredentialsError(err) {
		log.L.WithError(err).Warn("login rejected")
	} else {
		log.L.WithError(err).Error("login failed")
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "invalid credentials", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "account is disabled", nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "user not found", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "login failed", nil)
	}
}

// ChangePassword lets an authenticated user change their own password. The
// target ID in the URL must match the requester.
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetUserIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if targetUserIDStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user ID is required", nil)
			return
		}

		targetUserID, err := strconv.Atoi(targetUserIDStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid user ID", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if userClaims.UserID != targetUserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "cannot change another user's password", nil)
			return
		}

		err = service.ChangePassword(targetUserID, req.CurrentPassword, req.NewPassword)
		if err != nil {
			log.L.WithError(err).WithField("user_id", targetUserID).Error("failed to change password")

			var authErr *authenticating.AuthError
			switch {
			case errors.As(err, &authErr):
				apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)

			case strings.Contains(err.Error(), "password must"):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to change password", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}
