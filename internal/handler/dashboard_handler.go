package handler

import (
	"net/http"

	"warkop/internal/config"
	"warkop/internal/middleware"
	"warkop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

// DI
func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/dashboard")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.StaffRoleGuard())
	g.GET("/stats", h.stats)
}

func (h *DashboardHandler) stats(c echo.Context) error {
	out, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"stats": out})
}
