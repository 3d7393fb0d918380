package handler

import (
	"net/http"

	"eventide/internal/contract"
	"eventide/internal/domain/entity"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type InvitationService interface {
	GetInvitations(actor *entity.Profile) ([]*contract.InvitationResponse, apierror.ErrorResponse)
	CreateInvitation(actor *entity.Profile, req *contract.CreateInvitationRequest) (*contract.InvitationResponse, apierror.ErrorResponse)
	AnswerInvitation(actor *entity.Profile, inviteID string, req *contract.AnswerInvitationRequest) (*contract.InvitationResponse, apierror.ErrorResponse)
}

type DefaultInvitationRoute struct {
	InvitationService InvitationService
}

func NewInvitationDefault(invitationService InvitationService) *DefaultInvitationRoute {
	return &DefaultInvitationRoute{InvitationService: invitationService}
}

func (h *DefaultInvitationRoute) GetInvitations(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	invites, apierr := h.InvitationService.GetInvitations(actor)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"invitations": invites}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultInvitationRoute) CreateInvitation(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateInvitationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	invite, apierr := h.InvitationService.CreateInvitation(actor, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &invite)
}

func (h *DefaultInvitationRoute) AnswerInvitation(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	inviteID := c.Param("inviteId")
	if inviteID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("inviteId"))
	}

	var req contract.AnswerInvitationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	invite, apierr := h.InvitationService.AnswerInvitation(actor, inviteID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &invite)
}
