package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Eursukkul/meetapp-service/internal/dto"
	"github.com/Eursukkul/meetapp-service/internal/middleware"
	"github.com/Eursukkul/meetapp-service/internal/service"
	"github.com/labstack/echo/v4"
)

const msgValidationFails = "Validation fails"

type MeetappHandler struct {
	svc service.MeetappService
}

func NewMeetappHandler(svc service.MeetappService) *MeetappHandler {
	return &MeetappHandler{svc: svc}
}

// RegisterRoutes mounts the meetapp routes on an authenticated group.
func (h *MeetappHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/meetapps", h.CreateMeetapp)
	g.PUT("/meetapps", h.UpdateMeetapp)
	g.GET("/meetapps", h.ListMeetapps)
	g.GET("/meetappsDate", h.ListMeetappsByDate)
	g.DELETE("/meetapps/:id", h.DeleteMeetapp)
}

func (h *MeetappHandler) CreateMeetapp(c echo.Context) error {
	var req dto.CreateMeetappRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgValidationFails)
	}

	in, ok := meetappInput(req.Name, req.Description, req.Location, req.Date, req.BannerID)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, msgValidationFails)
	}

	meetapp, err := h.svc.CreateMeetapp(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return meetappWriteError(err)
	}

	return c.JSON(http.StatusOK, dto.ToMeetappResponse(meetapp))
}

func (h *MeetappHandler) UpdateMeetapp(c echo.Context) error {
	var req dto.UpdateMeetappRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgValidationFails)
	}

	in, ok := meetappInput(req.Name, req.Description, req.Location, req.Date, req.BannerID)
	if !ok || req.ID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, msgValidationFails)
	}

	meetapp, err := h.svc.UpdateMeetapp(c.Request().Context(), middleware.UserID(c), req.ID, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMeetappNotFound):
			return echo.NewHTTPError(http.StatusBadRequest, "Meetapp does not exist")
		case errors.Is(err, service.ErrNotOrganizer):
			return echo.NewHTTPError(http.StatusBadRequest, "Meetapp creator does not match user")
		case errors.Is(err, service.ErrMeetappFinished):
			return echo.NewHTTPError(http.StatusBadRequest, "Can't update past meetapps")
		default:
			return meetappWriteError(err)
		}
	}

	return c.JSON(http.StatusOK, dto.ToMeetappUpdateResponse(meetapp))
}

func (h *MeetappHandler) DeleteMeetapp(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid meetapp id")
	}

	if err := h.svc.DeleteMeetapp(c.Request().Context(), middleware.UserID(c), uint(id)); err != nil {
		switch {
		case errors.Is(err, service.ErrMeetappNotFound):
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid meetapp id")
		case errors.Is(err, service.ErrNotOrganizer):
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to delete meetapp from another user")
		case errors.Is(err, service.ErrMeetappFinished):
			return echo.NewHTTPError(http.StatusUnauthorized, "Can't delete past meetapps")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.NoContent(http.StatusOK)
}

func (h *MeetappHandler) ListMeetapps(c echo.Context) error {
	meetapps, err := h.svc.ListOrganized(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp := make([]dto.MeetappResponse, len(meetapps))
	for i, m := range meetapps {
		resp[i] = dto.ToMeetappResponse(&m)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *MeetappHandler) ListMeetappsByDate(c echo.Context) error {
	day, err := parseDate(c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid date")
	}

	page := 1
	if p := c.QueryParam("page"); p != "" {
		page, err = strconv.Atoi(p)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid page")
		}
	}

	meetapps, err := h.svc.ListByDay(c.Request().Context(), day, page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp := make([]dto.MeetappDayResponse, len(meetapps))
	for i, m := range meetapps {
		resp[i] = dto.ToMeetappDayResponse(&m)
	}

	return c.JSON(http.StatusOK, resp)
}

// meetappInput trims and checks the required meetapp fields.
func meetappInput(name, description, location, date string, bannerID *uint) (service.MeetappInput, bool) {
	in := service.MeetappInput{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Location:    strings.TrimSpace(location),
		BannerID:    bannerID,
	}
	if in.Name == "" || in.Description == "" || in.Location == "" {
		return in, false
	}
	d, err := parseDate(strings.TrimSpace(date))
	if err != nil || d.IsZero() {
		return in, false
	}
	in.Date = d
	return in, true
}

// meetappWriteError maps the rules shared by create and update.
func meetappWriteError(err error) error {
	switch {
	case errors.Is(err, service.ErrPastDate):
		return echo.NewHTTPError(http.StatusBadRequest, "Past date are not permitted")
	case errors.Is(err, service.ErrInvalidBanner):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid banner_id")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// parseDate accepts a calendar date (local midnight) or an RFC 3339 instant.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	if d, err := time.ParseInLocation(time.DateOnly, raw, time.Local); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, raw)
}
