package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type CheckoutRequest struct {
	AddressID string `json:"addressId"`
}

// 失敗時も店ごとの結果を返す（失敗した店だけ再送できるように）
type CheckoutErrorResponse struct {
	Error   string                `json:"error"`
	Results []usecase.GroupResult `json:"results,omitempty"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, sessions repository.SessionStore) {
	g := e.Group("/checkout")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.SessionGuard(sessions))

	g.POST("", h.checkout)
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	sessionID, ok := sessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PlaceOrders(c.Request().Context(), sessionID, usecase.CheckoutInput{
		AddressID: req.AddressID,
	})
	if err != nil {
		if he, ok := usecase.AsHTTPError(err); ok {
			return c.JSON(he.Status, CheckoutErrorResponse{Error: he.Message, Results: out.Results})
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
