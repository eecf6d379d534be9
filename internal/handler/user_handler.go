package handler

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/Eursukkul/meetapp-service/internal/dto"
	"github.com/Eursukkul/meetapp-service/internal/middleware"
	"github.com/Eursukkul/meetapp-service/internal/service"
	"github.com/labstack/echo/v4"
)

const minPasswordLen = 6

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// RegisterPublicRoutes mounts sign-up and sign-in, which need no token.
func (h *UserHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/users", h.CreateUser)
	g.POST("/sessions", h.CreateSession)
}

func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.PUT("/users", h.UpdateUser)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgValidationFails)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || !validEmail(req.Email) || len(req.Password) < minPasswordLen {
		return echo.NewHTTPError(http.StatusBadRequest, msgValidationFails)
	}

	user, err := h.svc.Register(c.Request().Context(), name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return echo.NewHTTPError(http.StatusBadRequest, "User already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgValidationFails)
	}

	if req.Email != "" && !validEmail(req.Email) {
		return echo.NewHTTPError(http.StatusBadRequest, msgValidationFails)
	}
	if req.Password != "" && (len(req.Password) < minPasswordLen || req.OldPassword == "") {
		return echo.NewHTTPError(http.StatusBadRequest, msgValidationFails)
	}

	user, err := h.svc.UpdateUser(c.Request().Context(), middleware.UserID(c), service.UserUpdate{
		Name:            strings.TrimSpace(req.Name),
		Email:           req.Email,
		OldPassword:     req.OldPassword,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserExists):
			return echo.NewHTTPError(http.StatusBadRequest, "User already exists")
		case errors.Is(err, service.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
		case errors.Is(err, service.ErrPasswordMismatch):
			return echo.NewHTTPError(http.StatusUnauthorized, "Password does not match")
		case errors.Is(err, service.ErrPasswordUnconfirmed):
			return echo.NewHTTPError(http.StatusBadRequest, msgValidationFails)
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) CreateSession(c echo.Context) error {
	var req dto.SessionRequest
	if err := c.Bind(&req); err != nil || !validEmail(req.Email) || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, msgValidationFails)
	}

	user, token, err := h.svc.CreateSession(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
		case errors.Is(err, service.ErrPasswordMismatch):
			return echo.NewHTTPError(http.StatusUnauthorized, "Password does not match")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.SessionResponse{User: dto.ToUserResponse(user), Token: token})
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
