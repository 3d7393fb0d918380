package service

import (
	"eventide/internal/contract"
	"eventide/internal/domain/entity"
	"eventide/internal/domain/policy"
	"eventide/internal/realtime"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"
	"eventide/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type MessageRepository interface {
	FindByCollab(collabID string) ([]*entity.Message, error)
	FindByClientKey(collabID, clientKey string) (*entity.Message, error)
	Save(message *entity.Message) error
}

type MessageService struct {
	MessageRepo MessageRepository
	CollabRepo  CollabRepository
	MemberRepo  MemberRepository
	Policy      *policy.CollabPolicy
	Hub         *realtime.Hub
	Validate    *validator.Validate
}

func NewMessageService(
	messageRepo MessageRepository,
	collabRepo CollabRepository,
	memberRepo MemberRepository,
	pol *policy.CollabPolicy,
	hub *realtime.Hub,
	validate *validator.Validate,
) *MessageService {
	return &MessageService{
		MessageRepo: messageRepo,
		CollabRepo:  collabRepo,
		MemberRepo:  memberRepo,
		Policy:      pol,
		Hub:         hub,
		Validate:    validate,
	}
}

func (s *MessageService) GetMessages(actor *entity.Profile, collabID string) ([]*contract.MessageResponse, apierror.ErrorResponse) {
	if apierr := s.CheckMembership(actor, collabID); apierr != nil {
		return nil, apierr
	}

	messages, err := s.MessageRepo.FindByCollab(collabID)
	if err != nil {
		log.Errorf("failed to fetch messages: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.MessageResponse, len(messages))
	for i, message := range messages {
		resp[i] = toMessageResponse(message)
	}
	return resp, nil
}

// CreateMessage stores a chat message and publishes it on the space's
// feed. The client key makes the write idempotent: replaying a key
// returns the already-stored row, with created=false and no feed event.
func (s *MessageService) CreateMessage(actor *entity.Profile, collabID string, req *contract.CreateMessageRequest) (*contract.MessageResponse, bool, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, false, apierror.FromValidationError(valerr)
	}

	if apierr := s.CheckMembership(actor, collabID); apierr != nil {
		return nil, false, apierr
	}

	existing, err := s.MessageRepo.FindByClientKey(collabID, req.ClientKey)
	if err != nil {
		log.Errorf("failed to fetch message by client key: %v", err)
		return nil, false, apierror.InternalServerError
	}
	if existing != nil {
		return toMessageResponse(existing), false, nil
	}

	message := &entity.Message{
		MessageID: uid.Next(),
		CollabID:  collabID,
		UserEmail: actor.Email,
		Content:   req.Content,
		ClientKey: req.ClientKey,
		CreatedAt: utils.NowUTC(),
	}

	if err := s.MessageRepo.Save(message); err != nil {
		log.Errorf("failed to save message: %v", err)
		return nil, false, apierror.InternalServerError
	}

	resp := toMessageResponse(message)
	s.Hub.Publish(collabID, &contract.FeedEnvelope{
		Type: contract.FeedMessageCreated,
		Data: resp,
	})
	return resp, true, nil
}

// CheckMembership is the read precondition shared with the feed handler.
func (s *MessageService) CheckMembership(actor *entity.Profile, collabID string) apierror.ErrorResponse {
	collab, err := s.CollabRepo.FindByID(collabID)
	if err != nil {
		log.Errorf("failed to fetch collaboration: %v", err)
		return apierror.InternalServerError
	}

	member, err := s.MemberRepo.Find(collabID, actor.Email)
	if err != nil {
		log.Errorf("failed to fetch membership: %v", err)
		return apierror.InternalServerError
	}
	return s.Policy.CanRead(collab, member, actor.Email)
}
