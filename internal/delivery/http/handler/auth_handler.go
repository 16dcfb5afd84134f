package handler

import (
	"net/http"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/delivery/http/middleware"
	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/response"
	"go-clinic-management/pkg/validator"

	"github.com/gorilla/mux"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login handles account login
// @Summary Login as a role
// @Description Login with username and password; the account must hold the role in the path
// @Tags Auth
// @Accept json
// @Produce json
// @Param role path string true "patient, doctor, admin or clinic_admin"
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /login/{role} [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	result, err := h.authUsecase.Login(r.Context(), mux.Vars(r)["role"], &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidRole:
			response.Error(w, http.StatusBadRequest, "Unknown role", nil)
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid username or password")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", result)
}

// Logout handles account logout
// @Summary Logout
// @Description Revoke the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), accountID, tokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}
