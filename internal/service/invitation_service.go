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

type InvitationRepository interface {
	FindByInvitee(email string) ([]*entity.Invitation, error)
	FindByID(id string) (*entity.Invitation, error)
	FindByCollabAndInvitee(collabID, email string) (*entity.Invitation, error)
	Save(invite *entity.Invitation) error
}

type InvitationService struct {
	InviteRepo InvitationRepository
	CollabRepo CollabRepository
	MemberRepo MemberRepository
	Policy     *policy.CollabPolicy
	Validate   *validator.Validate
}

func NewInvitationService(
	inviteRepo InvitationRepository,
	collabRepo CollabRepository,
	memberRepo MemberRepository,
	pol *policy.CollabPolicy,
	validate *validator.Validate,
) *InvitationService {
	return &InvitationService{
		InviteRepo: inviteRepo,
		CollabRepo: collabRepo,
		MemberRepo: memberRepo,
		Policy:     pol,
		Validate:   validate,
	}
}

// GetInvitations lists the invitations addressed to the caller, joined
// with the collaboration name for display.
func (s *InvitationService) GetInvitations(actor *entity.Profile) ([]*contract.InvitationResponse, apierror.ErrorResponse) {
	invites, err := s.InviteRepo.FindByInvitee(actor.Email)
	if err != nil {
		log.Errorf("failed to fetch invitations: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.InvitationResponse, len(invites))
	for i, invite := range invites {
		resp[i] = toInvitationResponse(invite)
	}
	return resp, nil
}

func (s *InvitationService) CreateInvitation(actor *entity.Profile, req *contract.CreateInvitationRequest) (*contract.InvitationResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	collab, err := s.CollabRepo.FindByID(req.CollabID)
	if err != nil {
		log.Errorf("failed to fetch collaboration: %v", err)
		return nil, apierror.InternalServerError
	}
	if collab == nil {
		return nil, apierror.NotFoundError
	}

	actorMember, err := s.MemberRepo.Find(req.CollabID, actor.Email)
	if err != nil {
		log.Errorf("failed to fetch membership: %v", err)
		return nil, apierror.InternalServerError
	}

	if apierr := s.Policy.CanInvite(collab, actorMember, actor.Email); apierr != nil {
		return nil, apierr
	}

	existingMember, err := s.MemberRepo.Find(req.CollabID, req.InviteeEmail)
	if err != nil {
		log.Errorf("failed to fetch invitee membership: %v", err)
		return nil, apierror.InternalServerError
	}
	if existingMember != nil {
		return nil, apierror.NewConflictError("This user is already a member of this space")
	}

	// The unique (collab, invitee) index backs this check up at the store
	existing, err := s.InviteRepo.FindByCollabAndInvitee(req.CollabID, req.InviteeEmail)
	if err != nil {
		log.Errorf("failed to fetch existing invitation: %v", err)
		return nil, apierror.InternalServerError
	}
	if existing != nil {
		return nil, apierror.DuplicateInviteError
	}

	role := entity.Role(req.Role)
	if role == "" {
		role = entity.RoleEditor
	}

	invite := &entity.Invitation{
		InviteID:      uid.NewString(),
		CollabID:      req.CollabID,
		InviterEmail:  actor.Email,
		InviteeEmail:  req.InviteeEmail,
		Role:          role,
		Status:        entity.InviteStatusPending,
		CreatedAt:     utils.NowUTC(),
		Collaboration: *collab,
	}

	if err := s.InviteRepo.Save(invite); err != nil {
		log.Errorf("failed to save invitation: %v", err)
		return nil, apierror.InternalServerError
	}
	return toInvitationResponse(invite), nil
}

// AnswerInvitation settles a pending invitation. The transition happens at
// most once: resubmitting a terminal status is rejected with a conflict.
// Accepting inserts the member row with the invitation's role.
func (s *InvitationService) AnswerInvitation(actor *entity.Profile, inviteID string, req *contract.AnswerInvitationRequest) (*contract.InvitationResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	invite, err := s.InviteRepo.FindByID(inviteID)
	if err != nil {
		log.Errorf("failed to fetch invitation: %v", err)
		return nil, apierror.InternalServerError
	}
	if invite == nil {
		return nil, apierror.NotFoundError
	}

	if invite.InviteeEmail != actor.Email {
		return nil, apierror.NewForbiddenError("Only the invitee can answer an invitation")
	}

	if invite.Status.Terminal() {
		return nil, apierror.InviteAlreadyUsedError
	}

	invite.Status = entity.InvitationStatus(req.Status)
	if err := s.InviteRepo.Save(invite); err != nil {
		log.Errorf("failed to update invitation: %v", err)
		return nil, apierror.InternalServerError
	}

	if invite.Status == entity.InviteStatusAccepted {
		member := &entity.Member{
			CollabID:  invite.CollabID,
			UserEmail: invite.InviteeEmail,
			Role:      invite.Role,
			JoinedAt:  utils.NowUTC(),
		}
		if err := s.MemberRepo.Save(member); err != nil {
			log.Errorf("failed to add member from invitation: %v", err)
			return nil, apierror.InternalServerError
		}
	}
	return toInvitationResponse(invite), nil
}
