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

type NotebookRepository interface {
	FindVisible(email string, collabIDs []string) ([]*entity.Notebook, error)
	FindByID(id string) (*entity.Notebook, error)
	Save(notebook *entity.Notebook) error
	Delete(notebook *entity.Notebook) error
}

type NoteRepository interface {
	FindByNotebook(notebookID string) ([]*entity.Note, error)
	FindByID(id string) (*entity.Note, error)
	Save(note *entity.Note) error
	Delete(note *entity.Note) error
}

type NoteService struct {
	NotebookRepo NotebookRepository
	NoteRepo     NoteRepository
	Scope        *scope
	Validate     *validator.Validate
}

func NewNoteService(notebookRepo NotebookRepository, noteRepo NoteRepository, collabRepo CollabRepository, memberRepo MemberRepository, pol *policy.CollabPolicy, validate *validator.Validate) *NoteService {
	return &NoteService{
		NotebookRepo: notebookRepo,
		NoteRepo:     noteRepo,
		Scope:        &scope{CollabRepo: collabRepo, MemberRepo: memberRepo, Policy: pol},
		Validate:     validate,
	}
}

func (s *NoteService) GetNotebooks(actor *entity.Profile) ([]*contract.NotebookResponse, apierror.ErrorResponse) {
	collabIDs, apierr := s.Scope.collabIDs(actor)
	if apierr != nil {
		return nil, apierr
	}

	notebooks, err := s.NotebookRepo.FindVisible(actor.Email, collabIDs)
	if err != nil {
		log.Errorf("failed to fetch notebooks: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.NotebookResponse, len(notebooks))
	for i, notebook := range notebooks {
		resp[i] = toNotebookResponse(notebook)
	}
	return resp, nil
}

func (s *NoteService) CreateNotebook(actor *entity.Profile, req *contract.CreateNotebookRequest) (*contract.NotebookResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if req.CollabID != nil {
		if apierr := s.Scope.canWrite(req.CollabID, actor.Email, actor); apierr != nil {
			return nil, apierr
		}
	}

	notebook := &entity.Notebook{
		NotebookID: uid.NewString(),
		UserEmail:  actor.Email,
		Name:       req.Name,
		CollabID:   req.CollabID,
		CreatedAt:  utils.NowUTC(),
	}

	if err := s.NotebookRepo.Save(notebook); err != nil {
		log.Errorf("failed to save notebook: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNotebookResponse(notebook), nil
}

func (s *NoteService) RenameNotebook(actor *entity.Profile, notebookID string, req *contract.UpdateNotebookRequest) (*contract.NotebookResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	notebook, apierr := s.fetchWritableNotebook(actor, notebookID)
	if apierr != nil {
		return nil, apierr
	}

	if req.Name != nil {
		notebook.Name = *req.Name
	}

	if err := s.NotebookRepo.Save(notebook); err != nil {
		log.Errorf("failed to update notebook: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNotebookResponse(notebook), nil
}

// DeleteNotebook removes the notebook; its notes cascade.
func (s *NoteService) DeleteNotebook(actor *entity.Profile, notebookID string) apierror.ErrorResponse {
	notebook, apierr := s.fetchWritableNotebook(actor, notebookID)
	if apierr != nil {
		return apierr
	}

	if err := s.NotebookRepo.Delete(notebook); err != nil {
		log.Errorf("failed to delete notebook: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// GetNotes lists the notes of one notebook, after checking the notebook
// itself is visible to the actor.
func (s *NoteService) GetNotes(actor *entity.Profile, notebookID string) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	if _, apierr := s.fetchReadableNotebook(actor, notebookID); apierr != nil {
		return nil, apierr
	}

	notes, err := s.NoteRepo.FindByNotebook(notebookID)
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp, nil
}

func (s *NoteService) GetNote(actor *entity.Profile, noteID string) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, err := s.NoteRepo.FindByID(noteID)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}

	if apierr := s.Scope.canRead(note.CollabID, note.UserEmail, actor); apierr != nil {
		return nil, apierr
	}
	return toNoteResponse(note), nil
}

func (s *NoteService) CreateNote(actor *entity.Profile, req *contract.CreateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	notebook, apierr := s.fetchWritableNotebook(actor, req.NotebookID)
	if apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	note := &entity.Note{
		NoteID:     uid.NewString(),
		NotebookID: notebook.NotebookID,
		UserEmail:  actor.Email,
		Title:      req.Title,
		Content:    req.Content,
		CollabID:   notebook.CollabID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to save note: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

func (s *NoteService) UpdateNote(actor *entity.Profile, noteID string, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	note, apierr := s.fetchWritableNote(actor, noteID)
	if apierr != nil {
		return nil, apierr
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}

	note.UpdatedAt = utils.NowUTC()
	if err := s.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to update note: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

func (s *NoteService) DeleteNote(actor *entity.Profile, noteID string) apierror.ErrorResponse {
	note, apierr := s.fetchWritableNote(actor, noteID)
	if apierr != nil {
		return apierr
	}

	if err := s.NoteRepo.Delete(note); err != nil {
		log.Errorf("failed to delete note: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *NoteService) fetchWritableNotebook(actor *entity.Profile, notebookID string) (*entity.Notebook, apierror.ErrorResponse) {
	notebook, err := s.NotebookRepo.FindByID(notebookID)
	if err != nil {
		log.Errorf("failed to fetch notebook: %v", err)
		return nil, apierror.InternalServerError
	}

	if notebook == nil {
		return nil, apierror.NotFoundError
	}

	if apierr := s.Scope.canWrite(notebook.CollabID, notebook.UserEmail, actor); apierr != nil {
		return nil, apierr
	}
	return notebook, nil
}

func (s *NoteService) fetchReadableNotebook(actor *entity.Profile, notebookID string) (*entity.Notebook, apierror.ErrorResponse) {
	notebook, err := s.NotebookRepo.FindByID(notebookID)
	if err != nil {
		log.Errorf("failed to fetch notebook: %v", err)
		return nil, apierror.InternalServerError
	}

	if notebook == nil {
		return nil, apierror.NotFoundError
	}

	if apierr := s.Scope.canRead(notebook.CollabID, notebook.UserEmail, actor); apierr != nil {
		return nil, apierr
	}
	return notebook, nil
}

func (s *NoteService) fetchWritableNote(actor *entity.Profile, noteID string) (*entity.Note, apierror.ErrorResponse) {
	note, err := s.NoteRepo.FindByID(noteID)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}

	if apierr := s.Scope.canWrite(note.CollabID, note.UserEmail, actor); apierr != nil {
		return nil, apierr
	}
	return note, nil
}
