package handler

import (
	"errors"
	"net/http"

	"attendra/internal/dto"
	"attendra/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ScheduleHandler struct {
	Service *service.ScheduleService
}

func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

func (h *ScheduleHandler) List(c echo.Context) error {
	schedules, err := h.Service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ScheduleResponsesFromEntities(schedules))
}

func (h *ScheduleHandler) ListForGuardian(c echo.Context) error {
	guardianID, err := uuid.Parse(c.Param("parentId"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid parent id"))
	}
	schedules, err := h.Service.ListForGuardian(c.Request().Context(), guardianID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ScheduleResponsesFromEntities(schedules))
}
