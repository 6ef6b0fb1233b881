package inbound

import (
	"net/http"
	"strconv"

	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
	"github.com/shandysiswandi/ayola/internal/pkg/router"
	"github.com/shandysiswandi/ayola/internal/session/entity"
	"github.com/shandysiswandi/ayola/internal/session/usecase"
)

// HTTPEndpoint exposes front-end sessions over HTTP. Every mutating call
// answers with the session as it looks afterwards.
type HTTPEndpoint struct {
	uc uc
}

// Start opens a session on the splash screen.
// @Summary Start session
// @Tags Session
// @Produce json
// @Success 201 {object} router.successResponse{data=SessionResponse} "New session"
// @Router /api/v1/sessions [post]
func (h *HTTPEndpoint) Start(r *router.Request) (any, error) {
	snap, err := h.uc.Start(r.Context())
	if err != nil {
		return nil, err
	}

	resp := newSessionResponse(snap)
	resp.status = http.StatusCreated
	return resp, nil
}

// Get returns the current state of a session.
// @Summary Get session
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} router.successResponse{data=SessionResponse} "Session"
// @Failure 404 {object} router.errorResponse "Session not found"
// @Router /api/v1/sessions/{id} [get]
func (h *HTTPEndpoint) Get(r *router.Request) (any, error) {
	return render(h.uc.Get(r.Context(), r.GetParam("id")))
}

// Close tears a session down.
// @Summary Close session
// @Tags Session
// @Param id path string true "Session ID"
// @Success 204 "Closed"
// @Failure 404 {object} router.errorResponse "Session not found"
// @Router /api/v1/sessions/{id} [delete]
func (h *HTTPEndpoint) Close(r *router.Request) (any, error) {
	return nil, h.uc.Close(r.Context(), r.GetParam("id"))
}

// Navigate follows a link on the current screen.
// @Summary Navigate
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body NavigateRequest true "Target screen"
// @Success 200 {object} router.successResponse{data=SessionResponse} "Session"
// @Failure 409 {object} router.errorResponse "Navigation not allowed"
// @Router /api/v1/sessions/{id}/navigate [post]
func (h *HTTPEndpoint) Navigate(r *router.Request) (any, error) {
	var req NavigateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	screen, err := entity.ParseScreen(req.Screen)
	if err != nil {
		return nil, goerror.NewInvalidInput(nil, "screen", err.Error())
	}

	return render(h.uc.Navigate(r.Context(), usecase.NavigateInput{ID: r.GetParam("id"), Screen: screen}))
}

// Logout leaves the home screen for the login screen.
// @Summary Logout
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} router.successResponse{data=SessionResponse} "Session"
// @Router /api/v1/sessions/{id}/logout [post]
func (h *HTTPEndpoint) Logout(r *router.Request) (any, error) {
	return render(h.uc.Logout(r.Context(), r.GetParam("id")))
}

// LoginInput applies one keystroke to the login form.
// @Summary Edit login form
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body FormInputRequest true "Field and value"
// @Success 200 {object} router.successResponse{data=SessionResponse} "Session"
// @Router /api/v1/sessions/{id}/login [put]
func (h *HTTPEndpoint) LoginInput(r *router.Request) (any, error) {
	in, err := decodeFormInput(r)
	if err != nil {
		return nil, err
	}
	return render(h.uc.LoginInput(r.Context(), in))
}

// LoginSubmit checks the login form against the stored account.
// @Summary Submit login form
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} router.successResponse{data=SessionResponse} "Session on HomeScreen"
// @Failure 401 {object} router.errorResponse "Invalid Credentials"
// @Failure 500 {object} router.errorResponse "Error Login"
// @Router /api/v1/sessions/{id}/login/submit [post]
func (h *HTTPEndpoint) LoginSubmit(r *router.Request) (any, error) {
	return render(h.uc.LoginSubmit(r.Context(), r.GetParam("id")))
}

// RegisterInput applies one keystroke to the register form.
// @Summary Edit register form
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body FormInputRequest true "Field and value"
// @Success 200 {object} router.successResponse{data=SessionResponse} "Session"
// @Router /api/v1/sessions/{id}/register [put]
func (h *HTTPEndpoint) RegisterInput(r *router.Request) (any, error) {
	in, err := decodeFormInput(r)
	if err != nil {
		return nil, err
	}
	return render(h.uc.RegisterInput(r.Context(), in))
}

// RegisterSubmit stores the account and opens the OTP screen.
// @Summary Submit register form
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} router.successResponse{data=SessionResponse} "Session on OtpScreen"
// @Failure 500 {object} router.errorResponse "Error register"
// @Router /api/v1/sessions/{id}/register/submit [post]
func (h *HTTPEndpoint) RegisterSubmit(r *router.Request) (any, error) {
	return render(h.uc.RegisterSubmit(r.Context(), r.GetParam("id")))
}

// OtpDigit types a digit into one cell. An empty digit clears the cell.
// @Summary Enter OTP digit
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param index path int true "Cell index"
// @Param request body OtpDigitRequest true "Digit"
// @Success 200 {object} router.successResponse{data=SessionResponse} "Session"
// @Router /api/v1/sessions/{id}/otp/cells/{index} [put]
func (h *HTTPEndpoint) OtpDigit(r *router.Request) (any, error) {
	index, err := cellIndex(r)
	if err != nil {
		return nil, err
	}

	var req OtpDigitRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return render(h.uc.OtpDigit(r.Context(), usecase.OtpDigitInput{
		ID:    r.GetParam("id"),
		Index: index,
		Digit: req.Digit,
	}))
}

// OtpBackspace presses backspace on one cell.
// @Summary OTP backspace
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Param index path int true "Cell index"
// @Success 200 {object} router.successResponse{data=SessionResponse} "Session"
// @Router /api/v1/sessions/{id}/otp/cells/{index} [delete]
func (h *HTTPEndpoint) OtpBackspace(r *router.Request) (any, error) {
	index, err := cellIndex(r)
	if err != nil {
		return nil, err
	}

	return render(h.uc.OtpBackspace(r.Context(), usecase.OtpBackspaceInput{
		ID:    r.GetParam("id"),
		Index: index,
	}))
}

// OtpResend restarts the resend countdown.
// @Summary Resend OTP
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} router.successResponse{data=SessionResponse} "Session"
// @Router /api/v1/sessions/{id}/otp/resend [post]
func (h *HTTPEndpoint) OtpResend(r *router.Request) (any, error) {
	return render(h.uc.OtpResend(r.Context(), r.GetParam("id")))
}

func render(snap *entity.Snapshot, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return newSessionResponse(snap), nil
}

func decodeFormInput(r *router.Request) (usecase.FormInput, error) {
	var req FormInputRequest
	if err := r.DecodeBody(&req); err != nil {
		return usecase.FormInput{}, err
	}

	field, err := entity.ParseField(req.Field)
	if err != nil {
		return usecase.FormInput{}, goerror.NewInvalidInput(nil, "field", err.Error())
	}

	return usecase.FormInput{ID: r.GetParam("id"), Field: field, Value: req.Value}, nil
}

func cellIndex(r *router.Request) (int, error) {
	index, err := strconv.Atoi(r.GetParam("index"))
	if err != nil {
		return 0, goerror.NewInvalidInput(nil, "index", "index must be a number")
	}
	return index, nil
}
