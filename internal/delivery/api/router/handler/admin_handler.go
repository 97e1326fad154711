package handler

import (
	"log/slog"
	"net/http"
	"time"

	"account/internal/delivery/api/response"
	"account/internal/domain/entity"
	"account/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the staff reporting listings.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ListUsers handles GET /admin/users?search=&role=&is_active=&page=
func (h *AdminHandler) ListUsers(c echo.Context) error {
	query := &usecase.UserListQuery{}
	binder := echo.QueryParamsBinder(c).
		String("search", &query.Search).
		Int("page", &query.Page)

	if raw := c.QueryParam("role"); raw != "" {
		role := entity.Role(raw)
		query.Role = &role
	}

	var isActive bool
	if c.QueryParam("is_active") != "" {
		binder = binder.Bool("is_active", &isActive)
		query.IsActive = &isActive
	}

	if err := binder.BindError(); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid query parameters")
	}

	page, err := h.adminUC.ListUsers(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rows := make([]UserRow, 0, len(page.Users))
	for _, user := range page.Users {
		rows = append(rows, newUserRow(user))
	}

	return response.Success(c, http.StatusOK, &PageResponse[UserRow]{
		Items:    rows,
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
	})
}

// ListProfiles handles GET /admin/profiles?search=&gender=&created_after=&created_before=&page=
// Dates use the YYYY-MM-DD layout; created_before is exclusive.
func (h *AdminHandler) ListProfiles(c echo.Context) error {
	query := &usecase.ProfileListQuery{}
	binder := echo.QueryParamsBinder(c).
		String("search", &query.Search).
		Int("page", &query.Page)

	if raw := c.QueryParam("gender"); raw != "" {
		gender := entity.Gender(raw)
		query.Gender = &gender
	}

	var createdAfter, createdBefore time.Time
	if c.QueryParam("created_after") != "" {
		binder = binder.Time("created_after", &createdAfter, dateLayout)
		query.CreatedAfter = &createdAfter
	}
	if c.QueryParam("created_before") != "" {
		binder = binder.Time("created_before", &createdBefore, dateLayout)
		query.CreatedBefore = &createdBefore
	}

	if err := binder.BindError(); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid query parameters")
	}

	page, err := h.adminUC.ListProfiles(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rows := make([]ProfileRow, 0, len(page.Profiles))
	for _, profile := range page.Profiles {
		rows = append(rows, newProfileRow(profile))
	}

	return response.Success(c, http.StatusOK, &PageResponse[ProfileRow]{
		Items:    rows,
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
	})
}
