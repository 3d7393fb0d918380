package service

import (
	"eventide/internal/contract"
	"eventide/internal/domain/entity"
	"eventide/internal/domain/policy"
	"eventide/internal/ics"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"
	"eventide/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type EventRepository interface {
	FindVisible(email string, collabIDs []string) ([]*entity.Event, error)
	FindByID(id string) (*entity.Event, error)
	Save(event *entity.Event) error
	Delete(event *entity.Event) error
}

type EventService struct {
	EventRepo EventRepository
	Scope     *scope
	Validate  *validator.Validate
}

func NewEventService(eventRepo EventRepository, collabRepo CollabRepository, memberRepo MemberRepository, pol *policy.CollabPolicy, validate *validator.Validate) *EventService {
	return &EventService{
		EventRepo: eventRepo,
		Scope:     &scope{CollabRepo: collabRepo, MemberRepo: memberRepo, Policy: pol},
		Validate:  validate,
	}
}

func (s *EventService) GetEvents(actor *entity.Profile) ([]*contract.EventResponse, apierror.ErrorResponse) {
	collabIDs, apierr := s.Scope.collabIDs(actor)
	if apierr != nil {
		return nil, apierr
	}

	events, err := s.EventRepo.FindVisible(actor.Email, collabIDs)
	if err != nil {
		log.Errorf("failed to fetch events: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.EventResponse, len(events))
	for i, event := range events {
		resp[i] = toEventResponse(event)
	}
	return resp, nil
}

func (s *EventService) CreateEvent(actor *entity.Profile, req *contract.CreateEventRequest) (*contract.EventResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if req.CollabID != nil {
		if apierr := s.Scope.canWrite(req.CollabID, actor.Email, actor); apierr != nil {
			return nil, apierr
		}
	}

	event := &entity.Event{
		EventID:    uid.NewString(),
		UserEmail:  actor.Email,
		Title:      req.Title,
		Details:    req.Details,
		Date:       req.Date,
		Time:       req.Time,
		Category:   req.Category,
		Indefinite: req.Indefinite,
		LabelID:    req.LabelID,
		CollabID:   req.CollabID,
		CreatedAt:  utils.NowUTC(),
	}

	if err := s.EventRepo.Save(event); err != nil {
		log.Errorf("failed to save event: %v", err)
		return nil, apierror.InternalServerError
	}
	return toEventResponse(event), nil
}

func (s *EventService) UpdateEvent(actor *entity.Profile, eventID string, req *contract.UpdateEventRequest) (*contract.EventResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	event, apierr := s.fetchWritable(actor, eventID)
	if apierr != nil {
		return nil, apierr
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Details != nil {
		event.Details = *req.Details
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Time != nil {
		event.Time = *req.Time
	}
	if req.Category != nil {
		event.Category = req.Category
	}
	if req.Indefinite != nil {
		event.Indefinite = *req.Indefinite
	}
	if req.LabelID != nil {
		event.LabelID = req.LabelID
	}

	if err := s.EventRepo.Save(event); err != nil {
		log.Errorf("failed to update event: %v", err)
		return nil, apierror.InternalServerError
	}
	return toEventResponse(event), nil
}

func (s *EventService) DeleteEvent(actor *entity.Profile, eventID string) apierror.ErrorResponse {
	event, apierr := s.fetchWritable(actor, eventID)
	if apierr != nil {
		return apierr
	}

	if err := s.EventRepo.Delete(event); err != nil {
		log.Errorf("failed to delete event: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// ExportCalendar renders every event visible to the actor as an iCalendar
// document. Indefinite and dateless events are skipped.
func (s *EventService) ExportCalendar(actor *entity.Profile) (string, apierror.ErrorResponse) {
	collabIDs, apierr := s.Scope.collabIDs(actor)
	if apierr != nil {
		return "", apierr
	}

	events, err := s.EventRepo.FindVisible(actor.Email, collabIDs)
	if err != nil {
		log.Errorf("failed to fetch events for export: %v", err)
		return "", apierror.InternalServerError
	}
	return ics.Render(events), nil
}

func (s *EventService) fetchWritable(actor *entity.Profile, eventID string) (*entity.Event, apierror.ErrorResponse) {
	event, err := s.EventRepo.FindByID(eventID)
	if err != nil {
		log.Errorf("failed to fetch event: %v", err)
		return nil, apierror.InternalServerError
	}

	if event == nil {
		return nil, apierror.NotFoundError
	}

	if apierr := s.Scope.canWrite(event.CollabID, event.UserEmail, actor); apierr != nil {
		return nil, apierr
	}
	return event, nil
}
