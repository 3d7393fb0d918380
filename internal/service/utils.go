package service

import (
	"strconv"

	"eventide/internal/contract"
	"eventide/internal/domain/entity"
	"eventide/internal/domain/policy"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

func collabNameOf(c *entity.Collaboration) *string {
	if c == nil || c.Name == "" {
		return nil
	}
	name := c.Name
	return &name
}

func toEventResponse(e *entity.Event) *contract.EventResponse {
	return &contract.EventResponse{
		EventID:    e.EventID,
		Title:      e.Title,
		Details:    e.Details,
		Date:       e.Date,
		Time:       e.Time,
		Category:   e.Category,
		Indefinite: e.Indefinite,
		UserEmail:  e.UserEmail,
		LabelID:    e.LabelID,
		CollabID:   e.CollabID,
		CollabName: collabNameOf(e.Collaboration),
		CreatedAt:  utils.FormatEpoch(e.CreatedAt),
	}
}

func toTodoResponse(t *entity.Todo) *contract.TodoResponse {
	subtasks := make([]contract.SubtaskPayload, len(t.Subtasks))
	for i, s := range t.Subtasks {
		subtasks[i] = contract.SubtaskPayload{
			ID:        s.SubtaskID,
			Name:      s.Name,
			Completed: s.Completed,
		}
	}

	return &contract.TodoResponse{
		TodoID:      t.TodoID,
		UserEmail:   t.UserEmail,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    string(t.Priority),
		Completed:   t.Completed,
		CompletedAt: utils.FormatEpochPtr(t.CompletedAt),
		LabelID:     t.LabelID,
		CollabID:    t.CollabID,
		CollabName:  collabNameOf(t.Collaboration),
		Subtasks:    subtasks,
		CreatedAt:   utils.FormatEpoch(t.CreatedAt),
	}
}

func toProjectResponse(p *entity.Project) *contract.ProjectResponse {
	return &contract.ProjectResponse{
		ProjectID:  p.ProjectID,
		UserEmail:  p.UserEmail,
		Name:       p.Name,
		CollabID:   p.CollabID,
		CollabName: collabNameOf(p.Collaboration),
		CreatedAt:  utils.FormatEpoch(p.CreatedAt),
	}
}

func toLabelResponse(l *entity.Label) *contract.LabelResponse {
	return &contract.LabelResponse{
		LabelID:   l.LabelID,
		UserEmail: l.UserEmail,
		Name:      l.Name,
		Color:     l.Color,
		CreatedAt: utils.FormatEpoch(l.CreatedAt),
	}
}

func toNotebookResponse(n *entity.Notebook) *contract.NotebookResponse {
	return &contract.NotebookResponse{
		NotebookID: n.NotebookID,
		UserEmail:  n.UserEmail,
		Name:       n.Name,
		CollabID:   n.CollabID,
		CollabName: collabNameOf(n.Collaboration),
		CreatedAt:  utils.FormatEpoch(n.CreatedAt),
	}
}

func toNoteResponse(n *entity.Note) *contract.NoteResponse {
	return &contract.NoteResponse{
		NoteID:     n.NoteID,
		NotebookID: n.NotebookID,
		UserEmail:  n.UserEmail,
		Title:      n.Title,
		Content:    n.Content,
		CollabID:   n.CollabID,
		CreatedAt:  utils.FormatEpoch(n.CreatedAt),
		UpdatedAt:  utils.FormatEpoch(n.UpdatedAt),
	}
}

func toCollabResponse(c *entity.Collaboration) *contract.CollabResponse {
	return &contract.CollabResponse{
		CollabID:   c.CollabID,
		Name:       c.Name,
		OwnerEmail: c.OwnerEmail,
		CreatedAt:  utils.FormatEpoch(c.CreatedAt),
	}
}

func toMemberResponse(m *entity.Member) *contract.MemberResponse {
	return &contract.MemberResponse{
		CollabID:  m.CollabID,
		UserEmail: m.UserEmail,
		Role:      string(m.Role),
		JoinedAt:  utils.FormatEpoch(m.JoinedAt),
	}
}

func toInvitationResponse(i *entity.Invitation) *contract.InvitationResponse {
	return &contract.InvitationResponse{
		InviteID:     i.InviteID,
		CollabID:     i.CollabID,
		CollabName:   collabNameOf(&i.Collaboration),
		InviterEmail: i.InviterEmail,
		InviteeEmail: i.InviteeEmail,
		Role:         string(i.Role),
		Status:       string(i.Status),
		CreatedAt:    utils.FormatEpoch(i.CreatedAt),
	}
}

func toMessageResponse(m *entity.Message) *contract.MessageResponse {
	return &contract.MessageResponse{
		MessageID: strconv.FormatInt(m.MessageID, 10),
		CollabID:  m.CollabID,
		UserEmail: m.UserEmail,
		Content:   m.Content,
		ClientKey: m.ClientKey,
		CreatedAt: utils.FormatEpoch(m.CreatedAt),
	}
}

func toProfileResponse(p *entity.Profile) *contract.ProfileResponse {
	return &contract.ProfileResponse{
		Email:       p.Email,
		Username:    p.Username,
		PhotoURL:    p.PhotoURL,
		Theme:       p.Theme,
		LandingPage: p.LandingPage,
		CreatedAt:   utils.FormatEpoch(p.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(p.UpdatedAt),
	}
}

// scope glues the per-resource services to the membership model. Every
// resource row is either personal (nil collab id) or owned by a space.
type scope struct {
	CollabRepo CollabRepository
	MemberRepo MemberRepository
	Policy     *policy.CollabPolicy
}

// collabIDs returns the spaces visible to the actor, for list queries.
func (s *scope) collabIDs(actor *entity.Profile) ([]string, apierror.ErrorResponse) {
	ids, err := s.MemberRepo.FindCollabIDsByEmail(actor.Email)
	if err != nil {
		log.Errorf("failed to fetch memberships: %v", err)
		return nil, apierror.InternalServerError
	}
	return ids, nil
}

// canRead checks visibility of a single row: personal rows require
// ownership, shared rows require any membership. Rows the actor cannot
// see read as not-found.
func (s *scope) canRead(collabID *string, rowOwner string, actor *entity.Profile) apierror.ErrorResponse {
	if collabID == nil {
		if rowOwner != actor.Email {
			return apierror.NotFoundError
		}
		return nil
	}

	collab, err := s.CollabRepo.FindByID(*collabID)
	if err != nil {
		log.Errorf("failed to fetch collaboration: %v", err)
		return apierror.InternalServerError
	}

	member, err := s.MemberRepo.Find(*collabID, actor.Email)
	if err != nil {
		log.Errorf("failed to fetch membership: %v", err)
		return apierror.InternalServerError
	}
	return s.Policy.CanRead(collab, member, actor.Email)
}

// canWrite checks the single authorization precondition for mutating a row:
// personal rows require ownership, shared rows require an editing role.
// Personal rows of other users read as not-found, never as forbidden.
func (s *scope) canWrite(collabID *string, rowOwner string, actor *entity.Profile) apierror.ErrorResponse {
	if collabID == nil {
		if rowOwner != actor.Email {
			return apierror.NotFoundError
		}
		return nil
	}

	collab, err := s.CollabRepo.FindByID(*collabID)
	if err != nil {
		log.Errorf("failed to fetch collaboration: %v", err)
		return apierror.InternalServerError
	}

	member, err := s.MemberRepo.Find(*collabID, actor.Email)
	if err != nil {
		log.Errorf("failed to fetch membership: %v", err)
		return apierror.InternalServerError
	}
	return s.Policy.CanWrite(collab, member, actor.Email)
}
