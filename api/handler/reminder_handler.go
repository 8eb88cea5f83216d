package handler

import (
	"errors"
	"net/http"

	"attendra/internal/dto"
	"attendra/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ReminderHandler struct {
	Service  *service.ReminderService
	Validate *validator.Validate
}

func NewReminderHandler(svc *service.ReminderService, validate *validator.Validate) *ReminderHandler {
	return &ReminderHandler{Service: svc, Validate: validate}
}

func (h *ReminderHandler) List(c echo.Context) error {
	reminders, err := h.Service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ReminderResponsesFromEntities(reminders))
}

func (h *ReminderHandler) ListByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid user id"))
	}
	reminders, err := h.Service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ReminderResponsesFromEntities(reminders))
}

func (h *ReminderHandler) Create(c echo.Context) error {
	var req dto.CreateReminderRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid user id"))
	}

	reminder, err := h.Service.Create(c.Request().Context(), service.CreateReminderInput{
		Title:        req.Title,
		Description:  req.Description,
		UserID:       userID,
		ReminderDate: req.ReminderDate,
		IsCompleted:  req.IsCompleted,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.ReminderResponseFromEntity(reminder))
}

func (h *ReminderHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid reminder id"))
	}
	var req dto.UpdateReminderRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	reminder, err := h.Service.Update(c.Request().Context(), id, service.UpdateReminderInput{
		Title:        req.Title,
		Description:  req.Description,
		ReminderDate: req.ReminderDate,
		IsCompleted:  req.IsCompleted,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ReminderResponseFromEntity(reminder))
}

func (h *ReminderHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid reminder id"))
	}
	if err := h.Service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ReminderHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
