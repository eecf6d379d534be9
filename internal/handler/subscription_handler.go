package handler

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/meetapp-service/internal/dto"
	"github.com/Eursukkul/meetapp-service/internal/middleware"
	"github.com/Eursukkul/meetapp-service/internal/service"
	"github.com/labstack/echo/v4"
)

type SubscriptionHandler struct {
	svc service.SubscriptionService
}

func NewSubscriptionHandler(svc service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

func (h *SubscriptionHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/subscription", h.Subscribe)
	g.GET("/subscription", h.ListSubscriptions)
}

func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var req dto.CreateSubscriptionRequest
	if err := c.Bind(&req); err != nil || req.MeetappID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, msgValidationFails)
	}

	subscription, err := h.svc.Subscribe(c.Request().Context(), middleware.UserID(c), req.MeetappID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMeetapp):
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid meetapp id")
		case errors.Is(err, service.ErrOwnMeetapp),
			errors.Is(err, service.ErrPastMeetapp),
			errors.Is(err, service.ErrAlreadySubscribed),
			errors.Is(err, service.ErrSlotConflict):
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToSubscriptionResponse(subscription))
}

func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	subscriptions, err := h.svc.ListUpcoming(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.SubscriptionListResponse, len(subscriptions))
	for i, s := range subscriptions {
		resp[i] = dto.ToSubscriptionListResponse(&s)
	}

	return c.JSON(http.StatusOK, resp)
}
