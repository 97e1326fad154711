package handler

import (
	"log/slog"
	"net/http"

	"account/internal/delivery/api/middleware"
	"account/internal/delivery/api/response"
	"account/internal/domain/entity"
	"account/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the delivery addresses of the caller's profile.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// ListAddresses returns the caller's addresses, default first.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ctx := c.Request().Context()
	addresses, err := h.addressUC.ListAddresses(ctx, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.GetProfile(ctx, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]*AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		items = append(items, newAddressResponse(address, profile.DefaultAddressID))
	}

	return response.Success(c, http.StatusOK, items)
}

// AddAddress creates an address. The first address of a profile becomes its default.
func (h *AddressHandler) AddAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&input); err != nil {
		return validationFailed(c, err)
	}

	address, err := h.addressUC.AddAddress(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.renderAddress(c, http.StatusCreated, userID, address)
}

// UpdateAddress replaces the fields of an address owned by the caller.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var input usecase.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&input); err != nil {
		return validationFailed(c, err)
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), userID, addressID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.renderAddress(c, http.StatusOK, userID, address)
}

// DeleteAddress removes an address owned by the caller.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetDefaultAddress designates an address owned by the caller as the profile default.
func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.SetDefaultAddress(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Default address updated successfully"})
}

// renderAddress reloads the profile so the response reflects the default chosen by the write.
func (h *AddressHandler) renderAddress(c echo.Context, status int, userID uuid.UUID, address *entity.DeliveryAddress) error {
	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, status, newAddressResponse(address, profile.DefaultAddressID))
}
