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

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type orderCreateRequest struct {
	UserID        int64              `json:"userId"`
	TableID       *int64             `json:"tableId"`
	Items         []usecase.CartLine `json:"items"`
	PaymentMethod string             `json:"paymentMethod"`
	Notes         string             `json:"notes"`
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.create)
	g.GET("/:id", h.detail)

	// 一覧と状態変更はスタッフ専用
	staff := e.Group("/orders", middleware.AuthJWT(cfg), middleware.StaffRoleGuard())
	staff.GET("", h.list)
	staff.PATCH("/:id/status", h.updateStatus)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req orderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	// customerは自分の注文しか作れない。
	// スタッフ（admin/kasir）は任意のuserIdで代理注文できる。
	role, _ := c.Get(middleware.CtxUserRoleKey).(string)
	tokenUserID, _ := c.Get(middleware.CtxUserIDKey).(int64)
	if role == string(model.RoleCustomer) && req.UserID != tokenUserID {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	}

	out, err := h.uc.Submit(c.Request().Context(), usecase.SubmitOrderInput{
		UserID:        req.UserID,
		TableID:       req.TableID,
		Items:         req.Items,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"order": out})
}

func (h *OrderHandler) list(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = n
	}

	out, err := h.uc.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": out})
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	role, _ := c.Get(middleware.CtxUserRoleKey).(string)
	tokenUserID, _ := c.Get(middleware.CtxUserIDKey).(int64)
	staff := role != string(model.RoleCustomer)

	out, err := h.uc.GetDetail(c.Request().Context(), id, tokenUserID, staff)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"order": out})
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "status updated"})
}
