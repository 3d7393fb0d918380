package handler

import (
	"net/http"

	"eventide/internal/contract"
	"eventide/internal/domain/entity"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type MessageService interface {
	GetMessages(actor *entity.Profile, collabID string) ([]*contract.MessageResponse, apierror.ErrorResponse)
	CreateMessage(actor *entity.Profile, collabID string, req *contract.CreateMessageRequest) (*contract.MessageResponse, bool, apierror.ErrorResponse)
}

type DefaultMessageRoute struct {
	MessageService MessageService
}

func NewMessageDefault(messageService MessageService) *DefaultMessageRoute {
	return &DefaultMessageRoute{MessageService: messageService}
}

func (h *DefaultMessageRoute) GetMessages(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	collabID := c.Param("collabId")
	if collabID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("collabId"))
	}

	messages, apierr := h.MessageService.GetMessages(actor, collabID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"messages": messages}
	return c.JSON(http.StatusOK, &resp)
}

// CreateMessage inserts a chat message. Replaying an already seen client
// key returns the stored row with 200 instead of inserting again.
func (h *DefaultMessageRoute) CreateMessage(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	collabID := c.Param("collabId")
	if collabID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("collabId"))
	}

	var req contract.CreateMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	message, created, apierr := h.MessageService.CreateMessage(actor, collabID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if !created {
		return c.JSON(http.StatusOK, &message)
	}
	return c.JSON(http.StatusCreated, &message)
}
