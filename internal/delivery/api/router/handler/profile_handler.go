package handler

import (
	"log/slog"
	"net/http"
	"time"

	"account/internal/delivery/api/middleware"
	"account/internal/delivery/api/response"
	"account/internal/domain/entity"
	"account/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest is a partial update; omitted fields are left unchanged.
type UpdateProfileRequest struct {
	BirthDate *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=M F O"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
}

// GetProfile returns the profile of the authenticated user.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(profile))
}

// UpdateProfile applies a partial update to the profile of the authenticated user.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	input := &usecase.UpdateProfileInput{Phone: req.Phone}
	if req.BirthDate != nil {
		birthDate, err := time.Parse(dateLayout, *req.BirthDate)
		if err != nil {
			return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", map[string]string{"birth_date": "datetime"})
		}
		input.BirthDate = &birthDate
	}
	if req.Gender != nil {
		gender := entity.Gender(*req.Gender)
		input.Gender = &gender
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(profile))
}
