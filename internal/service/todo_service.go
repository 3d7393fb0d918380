package service

import (
	"eventide/internal/contract"
	"eventide/internal/domain/entity"
	"eventide/internal/domain/policy"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"
	"eventide/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type TodoRepository interface {
	FindVisible(email string, collabIDs []string) ([]*entity.Todo, error)
	FindByID(id string) (*entity.Todo, error)
	Save(todo *entity.Todo) error
	ReplaceSubtasks(todoID string, subtasks []entity.Subtask) error
	Delete(todo *entity.Todo) error
}

type TodoService struct {
	TodoRepo       TodoRepository
	ProjectService *ProjectService
	Scope          *scope
	Validate       *validator.Validate
}

func NewTodoService(todoRepo TodoRepository, projectService *ProjectService, collabRepo CollabRepository, memberRepo MemberRepository, pol *policy.CollabPolicy, validate *validator.Validate) *TodoService {
	return &TodoService{
		TodoRepo:       todoRepo,
		ProjectService: projectService,
		Scope:          &scope{CollabRepo: collabRepo, MemberRepo: memberRepo, Policy: pol},
		Validate:       validate,
	}
}

func (s *TodoService) GetTodos(actor *entity.Profile) ([]*contract.TodoResponse, apierror.ErrorResponse) {
	collabIDs, apierr := s.Scope.collabIDs(actor)
	if apierr != nil {
		return nil, apierr
	}

	todos, err := s.TodoRepo.FindVisible(actor.Email, collabIDs)
	if err != nil {
		log.Errorf("failed to fetch todos: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.TodoResponse, len(todos))
	for i, todo := range todos {
		resp[i] = toTodoResponse(todo)
	}
	return resp, nil
}

func (s *TodoService) GetTodo(actor *entity.Profile, todoID string) (*contract.TodoResponse, apierror.ErrorResponse) {
	todo, apierr := s.fetchWritable(actor, todoID)
	if apierr != nil {
		return nil, apierr
	}
	return toTodoResponse(todo), nil
}

func (s *TodoService) CreateTodo(actor *entity.Profile, req *contract.CreateTodoRequest) (*contract.TodoResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if req.CollabID != nil {
		if apierr := s.Scope.canWrite(req.CollabID, actor.Email, actor); apierr != nil {
			return nil, apierr
		}
	}

	projectID, apierr := s.resolveProject(actor, req.ProjectID)
	if apierr != nil {
		return nil, apierr
	}

	priority := entity.Priority(req.Priority)
	if priority == "" {
		priority = entity.PriorityCasual
	}

	now := utils.NowUTC()
	todo := &entity.Todo{
		TodoID:      uid.NewString(),
		UserEmail:   actor.Email,
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    priority,
		Completed:   false,
		LabelID:     req.LabelID,
		CollabID:    req.CollabID,
		CreatedAt:   now,
	}

	if err := s.TodoRepo.Save(todo); err != nil {
		log.Errorf("failed to save todo: %v", err)
		return nil, apierror.InternalServerError
	}

	if len(req.Subtasks) > 0 {
		subtasks := buildSubtasks(todo.TodoID, req.Subtasks)
		if err := s.TodoRepo.ReplaceSubtasks(todo.TodoID, subtasks); err != nil {
			log.Errorf("failed to save subtasks: %v", err)
			return nil, apierror.InternalServerError
		}
		todo.Subtasks = subtasks
	}
	return toTodoResponse(todo), nil
}

func (s *TodoService) UpdateTodo(actor *entity.Profile, todoID string, req *contract.UpdateTodoRequest) (*contract.TodoResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	todo, apierr := s.fetchWritable(actor, todoID)
	if apierr != nil {
		return nil, apierr
	}

	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.Description != nil {
		todo.Description = *req.Description
	}
	if req.ProjectID != nil {
		projectID, apierr := s.resolveProject(actor, *req.ProjectID)
		if apierr != nil {
			return nil, apierr
		}
		todo.ProjectID = projectID
	}
	if req.DueDate != nil {
		todo.DueDate = req.DueDate
	}
	if req.Priority != nil {
		todo.Priority = entity.Priority(*req.Priority)
	}
	if req.LabelID != nil {
		todo.LabelID = req.LabelID
	}
	if req.Completed != nil && *req.Completed != todo.Completed {
		todo.Completed = *req.Completed
		if todo.Completed {
			now := utils.NowUTC()
			todo.CompletedAt = &now
		} else {
			todo.CompletedAt = nil
		}
	}

	if err := s.TodoRepo.Save(todo); err != nil {
		log.Errorf("failed to update todo: %v", err)
		return nil, apierror.InternalServerError
	}

	if req.Subtasks != nil {
		subtasks := buildSubtasks(todo.TodoID, req.Subtasks)
		if err := s.TodoRepo.ReplaceSubtasks(todo.TodoID, subtasks); err != nil {
			log.Errorf("failed to update subtasks: %v", err)
			return nil, apierror.InternalServerError
		}
		todo.Subtasks = subtasks
	}
	return toTodoResponse(todo), nil
}

func (s *TodoService) DeleteTodo(actor *entity.Profile, todoID string) apierror.ErrorResponse {
	todo, apierr := s.fetchWritable(actor, todoID)
	if apierr != nil {
		return apierr
	}

	if err := s.TodoRepo.Delete(todo); err != nil {
		log.Errorf("failed to delete todo: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// resolveProject maps the loose project reference the clients send to a
// real project id. An empty id or the literal "Inbox" lands in the
// actor's personal Inbox, provisioning it if needed.
func (s *TodoService) resolveProject(actor *entity.Profile, projectID string) (string, apierror.ErrorResponse) {
	if projectID == "" || projectID == entity.InboxProjectName {
		inbox, apierr := s.ProjectService.EnsureInbox(actor)
		if apierr != nil {
			return "", apierr
		}
		return inbox.ProjectID, nil
	}

	project, err := s.ProjectService.ProjectRepo.FindByID(projectID)
	if err != nil {
		log.Errorf("failed to fetch project: %v", err)
		return "", apierror.InternalServerError
	}
	if project == nil {
		return "", apierror.NotFoundError
	}
	return projectID, nil
}

func (s *TodoService) fetchWritable(actor *entity.Profile, todoID string) (*entity.Todo, apierror.ErrorResponse) {
	todo, err := s.TodoRepo.FindByID(todoID)
	if err != nil {
		log.Errorf("failed to fetch todo: %v", err)
		return nil, apierror.InternalServerError
	}

	if todo == nil {
		return nil, apierror.NotFoundError
	}

	if apierr := s.Scope.canWrite(todo.CollabID, todo.UserEmail, actor); apierr != nil {
		return nil, apierr
	}
	return todo, nil
}

func buildSubtasks(todoID string, payloads []contract.SubtaskPayload) []entity.Subtask {
	subtasks := make([]entity.Subtask, len(payloads))
	for i, p := range payloads {
		id := p.ID
		if id == "" {
			id = uid.NewString()
		}
		subtasks[i] = entity.Subtask{
			SubtaskID: id,
			TodoID:    todoID,
			Name:      p.Name,
			Completed: p.Completed,
			Position:  i,
		}
	}
	return subtasks
}
