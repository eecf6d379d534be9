package handler

import (
	"net/http"

	"github.com/Eursukkul/meetapp-service/internal/dto"
	"github.com/Eursukkul/meetapp-service/internal/service"
	"github.com/labstack/echo/v4"
)

type FileHandler struct {
	svc service.FileService
}

func NewFileHandler(svc service.FileService) *FileHandler {
	return &FileHandler{svc: svc}
}

func (h *FileHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/files", h.UploadFile)
}

func (h *FileHandler) UploadFile(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := header.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	file, err := h.svc.StoreFile(c.Request().Context(), header.Filename, src)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToFileResponse(file))
}
