package handler

import (
	"net/http"

	"eventide/internal/contract"
	"eventide/internal/domain/entity"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type NoteService interface {
	GetNotebooks(actor *entity.Profile) ([]*contract.NotebookResponse, apierror.ErrorResponse)
	CreateNotebook(actor *entity.Profile, req *contract.CreateNotebookRequest) (*contract.NotebookResponse, apierror.ErrorResponse)
	RenameNotebook(actor *entity.Profile, notebookID string, req *contract.UpdateNotebookRequest) (*contract.NotebookResponse, apierror.ErrorResponse)
	DeleteNotebook(actor *entity.Profile, notebookID string) apierror.ErrorResponse
	GetNotes(actor *entity.Profile, notebookID string) ([]*contract.NoteResponse, apierror.ErrorResponse)
	GetNote(actor *entity.Profile, noteID string) (*contract.NoteResponse, apierror.ErrorResponse)
	CreateNote(actor *entity.Profile, req *contract.CreateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	UpdateNote(actor *entity.Profile, noteID string, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	DeleteNote(actor *entity.Profile, noteID string) apierror.ErrorResponse
}

type DefaultNoteRoute struct {
	NoteService NoteService
}

func NewNoteDefault(noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{NoteService: noteService}
}

func (h *DefaultNoteRoute) GetNotebooks(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	notebooks, apierr := h.NoteService.GetNotebooks(actor)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"notebooks": notebooks}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultNoteRoute) CreateNotebook(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateNotebookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	notebook, apierr := h.NoteService.CreateNotebook(actor, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &notebook)
}

func (h *DefaultNoteRoute) UpdateNotebook(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	notebookID := c.Param("notebookId")
	if notebookID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("notebookId"))
	}

	var req contract.UpdateNotebookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	notebook, apierr := h.NoteService.RenameNotebook(actor, notebookID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &notebook)
}

func (h *DefaultNoteRoute) DeleteNotebook(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	notebookID := c.Param("notebookId")
	if notebookID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("notebookId"))
	}

	if apierr := h.NoteService.DeleteNotebook(actor, notebookID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

// GetNotes lists the notes of the notebook given in the query string.
func (h *DefaultNoteRoute) GetNotes(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	notebookID := c.QueryParam("notebook_id")
	if notebookID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("notebook_id"))
	}

	notes, apierr := h.NoteService.GetNotes(actor, notebookID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"notes": notes}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultNoteRoute) GetNote(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	noteID := c.Param("noteId")
	if noteID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("noteId"))
	}

	note, apierr := h.NoteService.GetNote(actor, noteID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &note)
}

func (h *DefaultNoteRoute) CreateNote(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := h.NoteService.CreateNote(actor, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &note)
}

func (h *DefaultNoteRoute) UpdateNote(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	noteID := c.Param("noteId")
	if noteID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("noteId"))
	}

	var req contract.UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := h.NoteService.UpdateNote(actor, noteID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &note)
}

func (h *DefaultNoteRoute) DeleteNote(c echo.Context) error {
	actor, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	noteID := c.Param("noteId")
	if noteID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("noteId"))
	}

	if apierr := h.NoteService.DeleteNote(actor, noteID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
