package service

import (
	"eventide/internal/contract"
	"eventide/internal/domain/entity"
	"eventide/internal/domain/policy"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"
	"eventide/internal/utils/uid"
	"eventide/internal/views"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ProjectRepository interface {
	FindVisible(email string, collabIDs []string) ([]*entity.Project, error)
	FindByID(id string) (*entity.Project, error)
	FindPersonalByName(email, name string) (*entity.Project, error)
	Save(project *entity.Project) error
	Delete(project *entity.Project) error
}

type ProjectService struct {
	ProjectRepo ProjectRepository
	Scope       *scope
	Validate    *validator.Validate
}

func NewProjectService(projectRepo ProjectRepository, collabRepo CollabRepository, memberRepo MemberRepository, pol *policy.CollabPolicy, validate *validator.Validate) *ProjectService {
	return &ProjectService{
		ProjectRepo: projectRepo,
		Scope:       &scope{CollabRepo: collabRepo, MemberRepo: memberRepo, Policy: pol},
		Validate:    validate,
	}
}

// GetProjects lists the actor's projects, provisioning the personal Inbox
// when missing so it is always present, and always sorted first.
func (s *ProjectService) GetProjects(actor *entity.Profile) ([]*contract.ProjectResponse, apierror.ErrorResponse) {
	if _, apierr := s.EnsureInbox(actor); apierr != nil {
		return nil, apierr
	}

	collabIDs, apierr := s.Scope.collabIDs(actor)
	if apierr != nil {
		return nil, apierr
	}

	projects, err := s.ProjectRepo.FindVisible(actor.Email, collabIDs)
	if err != nil {
		log.Errorf("failed to fetch projects: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ProjectResponse, len(projects))
	for i, project := range projects {
		resp[i] = toProjectResponse(project)
	}
	return views.SortProjects(resp), nil
}

func (s *ProjectService) CreateProject(actor *entity.Profile, req *contract.CreateProjectRequest) (*contract.ProjectResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if req.CollabID != nil {
		if apierr := s.Scope.canWrite(req.CollabID, actor.Email, actor); apierr != nil {
			return nil, apierr
		}
	}

	project := &entity.Project{
		ProjectID: uid.NewString(),
		UserEmail: actor.Email,
		Name:      req.Name,
		CollabID:  req.CollabID,
		CreatedAt: utils.NowUTC(),
	}

	if err := s.ProjectRepo.Save(project); err != nil {
		log.Errorf("failed to save project: %v", err)
		return nil, apierror.InternalServerError
	}
	return toProjectResponse(project), nil
}

// DeleteProject removes the project; its todos go with it by cascade.
func (s *ProjectService) DeleteProject(actor *entity.Profile, projectID string) apierror.ErrorResponse {
	project, err := s.ProjectRepo.FindByID(projectID)
	if err != nil {
		log.Errorf("failed to fetch project: %v", err)
		return apierror.InternalServerError
	}

	if project == nil {
		return apierror.NotFoundError
	}

	if apierr := s.Scope.canWrite(project.CollabID, project.UserEmail, actor); apierr != nil {
		return apierr
	}

	if err := s.ProjectRepo.Delete(project); err != nil {
		log.Errorf("failed to delete project: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// EnsureInbox returns the actor's personal Inbox project, creating it on
// first use.
func (s *ProjectService) EnsureInbox(actor *entity.Profile) (*entity.Project, apierror.ErrorResponse) {
	inbox, err := s.ProjectRepo.FindPersonalByName(actor.Email, entity.InboxProjectName)
	if err != nil {
		log.Errorf("failed to fetch inbox project: %v", err)
		return nil, apierror.InternalServerError
	}
	if inbox != nil {
		return inbox, nil
	}

	inbox = &entity.Project{
		ProjectID: uid.NewString(),
		UserEmail: actor.Email,
		Name:      entity.InboxProjectName,
		CreatedAt: utils.NowUTC(),
	}
	if err := s.ProjectRepo.Save(inbox); err != nil {
		log.Errorf("failed to provision inbox project: %v", err)
		return nil, apierror.InternalServerError
	}
	return inbox, nil
}
