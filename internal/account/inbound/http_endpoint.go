package inbound

import (
	"github.com/shandysiswandi/ayola/internal/account/usecase"
	"github.com/shandysiswandi/ayola/internal/pkg/router"
)

// HTTPEndpoint exposes the on-device account over HTTP.
type HTTPEndpoint struct {
	uc uc
}

// Register stores a new account on the device.
// @Summary Register account
// @Description Validates name, email and password, then writes them to the key-value store.
// @Tags Account
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Register payload"
// @Success 201 {object} router.successResponse{data=RegisterResponse} "Account stored"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Error register"
// @Router /api/v1/account/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return nil, err
	}

	return RegisterResponse{}, nil
}

// Login checks the credentials against the stored account.
// @Summary Login
// @Description Compares email and password with the stored values, exactly and case-sensitively.
// @Tags Account
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Credentials match"
// @Failure 401 {object} router.errorResponse "Invalid Credentials"
// @Failure 500 {object} router.errorResponse "Error Login"
// @Router /api/v1/account/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{Name: resp.Name, Email: resp.Email}, nil
}

// Validate reports the inline message for an email and a password.
// @Summary Validate credential fields
// @Tags Account
// @Accept json
// @Produce json
// @Param request body ValidateRequest true "Fields to check"
// @Success 200 {object} router.successResponse{data=ValidateResponse} "Per-field messages"
// @Router /api/v1/account/validate [post]
func (h *HTTPEndpoint) Validate(r *router.Request) (any, error) {
	var req ValidateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.ValidateCredential(r.Context(), usecase.ValidateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return ValidateResponse{
		Valid:           resp.Valid(),
		EmailMessage:    resp.EmailMessage,
		PasswordMessage: resp.PasswordMessage,
	}, nil
}

// Profile returns the stored name and email.
// @Summary Get stored profile
// @Tags Account
// @Produce json
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Stored profile"
// @Failure 404 {object} router.errorResponse "No account stored"
// @Router /api/v1/account/profile [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{Name: resp.Name, Email: resp.Email}, nil
}

// Forget removes the stored account.
// @Summary Remove stored account
// @Tags Account
// @Success 204 "Removed"
// @Router /api/v1/account/credential [delete]
func (h *HTTPEndpoint) Forget(r *router.Request) (any, error) {
	return nil, h.uc.Forget(r.Context())
}
