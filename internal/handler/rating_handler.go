package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type RatingHandler struct {
	uc *usecase.RatingUsecase
}

func NewRatingHandler(uc *usecase.RatingUsecase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

// 認証済みグループに登録する
func (h *RatingHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/ratings", h.ListMine)
	g.POST("/ratings", h.Create)
}

func (h *RatingHandler) ListMine(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	list, err := h.uc.ListMine(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *RatingHandler) Create(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req usecase.CreateRatingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	created, err := h.uc.Create(c.Request().Context(), userID, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}
