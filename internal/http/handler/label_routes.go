package handler

import (
	"net/http"

	"eventide/internal/contract"
	"eventide/internal/domain/entity"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type LabelService interface {
	GetLabels(actor *entity.Profile) ([]*contract.LabelResponse, apierror.ErrorResponse)
	CreateLabel(actor *entity.Profile, req *contract.CreateLabelRequest) (*contract.LabelResponse, apierror.ErrorResponse)
	UpdateLabel(actor *entity.Profile, labelID string, req *contract.UpdateLabelRequest) (*contract.LabelResponse, apierror.ErrorResponse)
	DeleteLabel(actor *entity.Profile, labelID string) apierror.ErrorResponse
}

type DefaultLabelRoute struct {
	LabelService LabelService
}

func NewLabelDefault(labelService LabelService) *DefaultLabelRoute {
	return &DefaultLabelRoute{LabelService: labelService}
}

func (h *DefaultLabelRoute) GetLabels(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	labels, apierr := h.LabelService.GetLabels(actor)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"labels": labels}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultLabelRoute) CreateLabel(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateLabelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	label, apierr := h.LabelService.CreateLabel(actor, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &label)
}

func (h *DefaultLabelRoute) UpdateLabel(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	labelID := c.Param("labelId")
	if labelID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("labelId"))
	}

	var req contract.UpdateLabelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	label, apierr := h.LabelService.UpdateLabel(actor, labelID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &label)
}

func (h *DefaultLabelRoute) DeleteLabel(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	labelID := c.Param("labelId")
	if labelID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("labelId"))
	}

	if apierr := h.LabelService.DeleteLabel(actor, labelID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
