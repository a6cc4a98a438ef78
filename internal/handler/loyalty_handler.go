package handler

import (
	"net/http"
	"strconv"

	"warkop/internal/config"
	"warkop/internal/domain/model"
	"warkop/internal/middleware"
	"warkop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type LoyaltyHandler struct {
	uc *usecase.LoyaltyUsecase
}

// DI
func NewLoyaltyHandler(uc *usecase.LoyaltyUsecase) *LoyaltyHandler {
	return &LoyaltyHandler{uc: uc}
}

func (h *LoyaltyHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/loyalty")
	g.Use(middleware.AuthJWT(cfg))
	g.GET("/:userId", h.get)
}

func (h *LoyaltyHandler) get(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}

	// customerは自分のロイヤルティしか見られない
	role, _ := c.Get(middleware.CtxUserRoleKey).(string)
	tokenUserID, _ := c.Get(middleware.CtxUserIDKey).(int64)
	if role == string(model.RoleCustomer) && userID != tokenUserID {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	}

	out, err := h.uc.GetByUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"loyalty": out})
}
