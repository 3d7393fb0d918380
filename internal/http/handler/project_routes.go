package handler

import (
	"net/http"

	"eventide/internal/contract"
	"eventide/internal/domain/entity"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ProjectService interface {
	GetProjects(actor *entity.Profile) ([]*contract.ProjectResponse, apierror.ErrorResponse)
	CreateProject(actor *entity.Profile, req *contract.CreateProjectRequest) (*contract.ProjectResponse, apierror.ErrorResponse)
	DeleteProject(actor *entity.Profile, projectID string) apierror.ErrorResponse
}

type DefaultProjectRoute struct {
	ProjectService ProjectService
}

func NewProjectDefault(projectService ProjectService) *DefaultProjectRoute {
	return &DefaultProjectRoute{ProjectService: projectService}
}

func (h *DefaultProjectRoute) GetProjects(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	projects, apierr := h.ProjectService.GetProjects(actor)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"projects": projects}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultProjectRoute) CreateProject(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	project, apierr := h.ProjectService.CreateProject(actor, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &project)
}

func (h *DefaultProjectRoute) DeleteProject(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	projectID := c.Param("projectId")
	if projectID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("projectId"))
	}

	if apierr := h.ProjectService.DeleteProject(actor, projectID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
