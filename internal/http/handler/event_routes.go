package handler

import (
	"net/http"

	"eventide/internal/contract"
	"eventide/internal/domain/entity"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type EventService interface {
	GetEvents(actor *entity.Profile) ([]*contract.EventResponse, apierror.ErrorResponse)
	CreateEvent(actor *entity.Profile, req *contract.CreateEventRequest) (*contract.EventResponse, apierror.ErrorResponse)
	UpdateEvent(actor *entity.Profile, eventID string, req *contract.UpdateEventRequest) (*contract.EventResponse, apierror.ErrorResponse)
	DeleteEvent(actor *entity.Profile, eventID string) apierror.ErrorResponse
	ExportCalendar(actor *entity.Profile) (string, apierror.ErrorResponse)
}

type DefaultEventRoute struct {
	EventService EventService
}

func NewEventDefault(eventService EventService) *DefaultEventRoute {
	return &DefaultEventRoute{EventService: eventService}
}

func (h *DefaultEventRoute) GetEvents(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	events, apierr := h.EventService.GetEvents(actor)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"events": events}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultEventRoute) CreateEvent(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	event, apierr := h.EventService.CreateEvent(actor, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &event)
}

func (h *DefaultEventRoute) UpdateEvent(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	eventID := c.Param("eventId")
	if eventID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("eventId"))
	}

	var req contract.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	event, apierr := h.EventService.UpdateEvent(actor, eventID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &event)
}

func (h *DefaultEventRoute) DeleteEvent(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	eventID := c.Param("eventId")
	if eventID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("eventId"))
	}

	if apierr := h.EventService.DeleteEvent(actor, eventID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultEventRoute) ExportCalendar(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	ics, apierr := h.EventService.ExportCalendar(actor)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="eventide.ics"`)
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}
