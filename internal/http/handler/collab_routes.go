package handler

import (
	"net/http"

	"eventide/internal/contract"
	"eventide/internal/domain/entity"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CollabService interface {
	CreateCollab(actor *entity.Profile, req *contract.CreateCollabRequest) (*contract.CollabResponse, apierror.ErrorResponse)
	GetUserCollabs(actor *entity.Profile) ([]*contract.CollabResponse, apierror.ErrorResponse)
	GetCollab(actor *entity.Profile, collabID string) (*contract.CollabResponse, apierror.ErrorResponse)
	RenameCollab(actor *entity.Profile, collabID string, req *contract.RenameCollabRequest) (*contract.CollabResponse, apierror.ErrorResponse)
	DeleteCollab(actor *entity.Profile, collabID string) apierror.ErrorResponse
	GetMembers(actor *entity.Profile, collabID string) ([]*contract.MemberResponse, apierror.ErrorResponse)
	UpdateMemberRole(actor *entity.Profile, collabID, targetEmail string, req *contract.UpdateMemberRequest) (*contract.MemberResponse, apierror.ErrorResponse)
	RemoveMember(actor *entity.Profile, collabID, targetEmail string) apierror.ErrorResponse
}

type DefaultCollabRoute struct {
	CollabService CollabService
}

func NewCollabDefault(collabService CollabService) *DefaultCollabRoute {
	return &DefaultCollabRoute{CollabService: collabService}
}

func (h *DefaultCollabRoute) CreateCollab(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateCollabRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	collab, apierr := h.CollabService.CreateCollab(actor, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &collab)
}

func (h *DefaultCollabRoute) GetUserCollabs(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	collabs, apierr := h.CollabService.GetUserCollabs(actor)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"collaborations": collabs}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultCollabRoute) GetCollab(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	collabID := c.Param("collabId")
	if collabID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("collabId"))
	}

	collab, apierr := h.CollabService.GetCollab(actor, collabID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &collab)
}

func (h *DefaultCollabRoute) RenameCollab(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	collabID := c.Param("collabId")
	if collabID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("collabId"))
	}

	var req contract.RenameCollabRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	collab, apierr := h.CollabService.RenameCollab(actor, collabID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &collab)
}

func (h *DefaultCollabRoute) DeleteCollab(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	collabID := c.Param("collabId")
	if collabID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("collabId"))
	}

	if apierr := h.CollabService.DeleteCollab(actor, collabID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultCollabRoute) GetMembers(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	collabID := c.Param("collabId")
	if collabID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("collabId"))
	}

	members, apierr := h.CollabService.GetMembers(actor, collabID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"members": members}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultCollabRoute) UpdateMember(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	collabID := c.Param("collabId")
	targetEmail := c.Param("email")
	if collabID == "" || targetEmail == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("collabId/email"))
	}

	var req contract.UpdateMemberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	member, apierr := h.CollabService.UpdateMemberRole(actor, collabID, targetEmail, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &member)
}

func (h *DefaultCollabRoute) RemoveMember(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	collabID := c.Param("collabId")
	targetEmail := c.Param("email")
	if collabID == "" || targetEmail == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("collabId/email"))
	}

	if apierr := h.CollabService.RemoveMember(actor, collabID, targetEmail); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
