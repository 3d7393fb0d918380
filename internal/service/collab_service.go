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

type CollabRepository interface {
	FindByID(id string) (*entity.Collaboration, error)
	FindVisible(email string) ([]*entity.Collaboration, error)
	Save(collab *entity.Collaboration) error
	Delete(collab *entity.Collaboration) error
}

type MemberRepository interface {
	FindByCollab(collabID string) ([]*entity.Member, error)
	Find(collabID, email string) (*entity.Member, error)
	FindCollabIDsByEmail(email string) ([]string, error)
	Save(member *entity.Member) error
	Delete(collabID, email string) error
}

type CollabService struct {
	CollabRepo CollabRepository
	MemberRepo MemberRepository
	Policy     *policy.CollabPolicy
	Validate   *validator.Validate
}

func NewCollabService(collabRepo CollabRepository, memberRepo MemberRepository, pol *policy.CollabPolicy, validate *validator.Validate) *CollabService {
	return &CollabService{
		CollabRepo: collabRepo,
		MemberRepo: memberRepo,
		Policy:     pol,
		Validate:   validate,
	}
}

// CreateCollab creates the space and its owner member row in one step, so
// the single-owner invariant holds from the first moment.
func (s *CollabService) CreateCollab(actor *entity.Profile, req *contract.CreateCollabRequest) (*contract.CollabResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	now := utils.NowUTC()
	collab := &entity.Collaboration{
		CollabID:   uid.NewString(),
		Name:       req.Name,
		OwnerEmail: actor.Email,
		CreatedAt:  now,
	}

	if err := s.CollabRepo.Save(collab); err != nil {
		log.Errorf("failed to save collaboration: %v", err)
		return nil, apierror.InternalServerError
	}

	owner := &entity.Member{
		CollabID:  collab.CollabID,
		UserEmail: actor.Email,
		Role:      entity.RoleOwner,
		JoinedAt:  now,
	}
	if err := s.MemberRepo.Save(owner); err != nil {
		log.Errorf("failed to save owner member: %v", err)
		return nil, apierror.InternalServerError
	}

	return toCollabResponse(collab), nil
}

func (s *CollabService) GetUserCollabs(actor *entity.Profile) ([]*contract.CollabResponse, apierror.ErrorResponse) {
	collabs, err := s.CollabRepo.FindVisible(actor.Email)
	if err != nil {
		log.Errorf("failed to fetch collaborations: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CollabResponse, len(collabs))
	for i, collab := range collabs {
		resp[i] = toCollabResponse(collab)
	}
	return resp, nil
}

func (s *CollabService) GetCollab(actor *entity.Profile, collabID string) (*contract.CollabResponse, apierror.ErrorResponse) {
	collab, member, apierr := s.fetch(actor, collabID)
	if apierr != nil {
		return nil, apierr
	}

	if apierr := s.Policy.CanRead(collab, member, actor.Email); apierr != nil {
		return nil, apierr
	}
	return toCollabResponse(collab), nil
}

func (s *CollabService) RenameCollab(actor *entity.Profile, collabID string, req *contract.RenameCollabRequest) (*contract.CollabResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	collab, _, apierr := s.fetch(actor, collabID)
	if apierr != nil {
		return nil, apierr
	}

	if apierr := s.Policy.CanManage(collab, actor.Email); apierr != nil {
		return nil, apierr
	}

	collab.Name = req.Name
	if err := s.CollabRepo.Save(collab); err != nil {
		log.Errorf("failed to rename collaboration: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCollabResponse(collab), nil
}

// DeleteCollab removes the space. Members, invitations, messages and all
// shared rows go with it through the database cascades.
func (s *CollabService) DeleteCollab(actor *entity.Profile, collabID string) apierror.ErrorResponse {
	collab, _, apierr := s.fetch(actor, collabID)
	if apierr != nil {
		return apierr
	}

	if apierr := s.Policy.CanManage(collab, actor.Email); apierr != nil {
		return apierr
	}

	if err := s.CollabRepo.Delete(collab); err != nil {
		log.Errorf("failed to delete collaboration: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *CollabService) GetMembers(actor *entity.Profile, collabID string) ([]*contract.MemberResponse, apierror.ErrorResponse) {
	collab, member, apierr := s.fetch(actor, collabID)
	if apierr != nil {
		return nil, apierr
	}

	if apierr := s.Policy.CanRead(collab, member, actor.Email); apierr != nil {
		return nil, apierr
	}

	members, err := s.MemberRepo.FindByCollab(collabID)
	if err != nil {
		log.Errorf("failed to fetch members: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.MemberResponse, len(members))
	for i, m := range members {
		resp[i] = toMemberResponse(m)
	}
	return resp, nil
}

func (s *CollabService) UpdateMemberRole(actor *entity.Profile, collabID, targetEmail string, req *contract.UpdateMemberRequest) (*contract.MemberResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	collab, target, apierr := s.authorizeMemberAction(actor, collabID, targetEmail)
	if apierr != nil {
		return nil, apierr
	}
	_ = collab

	target.Role = entity.Role(req.Role)
	if err := s.MemberRepo.Save(target); err != nil {
		log.Errorf("failed to update member role: %v", err)
		return nil, apierror.InternalServerError
	}
	return toMemberResponse(target), nil
}

func (s *CollabService) RemoveMember(actor *entity.Profile, collabID, targetEmail string) apierror.ErrorResponse {
	_, target, apierr := s.authorizeMemberAction(actor, collabID, targetEmail)
	if apierr != nil {
		return apierr
	}

	if err := s.MemberRepo.Delete(target.CollabID, target.UserEmail); err != nil {
		log.Errorf("failed to remove member: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *CollabService) authorizeMemberAction(actor *entity.Profile, collabID, targetEmail string) (*entity.Collaboration, *entity.Member, apierror.ErrorResponse) {
	collab, actorMember, apierr := s.fetch(actor, collabID)
	if apierr != nil {
		return nil, nil, apierr
	}

	if apierr := s.Policy.CanInvite(collab, actorMember, actor.Email); apierr != nil {
		return nil, nil, apierr
	}

	target, err := s.MemberRepo.Find(collabID, targetEmail)
	if err != nil {
		log.Errorf("failed to fetch target member: %v", err)
		return nil, nil, apierror.InternalServerError
	}

	if apierr := s.Policy.CanTouchMember(collab, target); apierr != nil {
		return nil, nil, apierr
	}
	return collab, target, nil
}

func (s *CollabService) fetch(actor *entity.Profile, collabID string) (*entity.Collaboration, *entity.Member, apierror.ErrorResponse) {
	collab, err := s.CollabRepo.FindByID(collabID)
	if err != nil {
		log.Errorf("failed to fetch collaboration: %v", err)
		return nil, nil, apierror.InternalServerError
	}

	if collab == nil {
		return nil, nil, apierror.NotFoundError
	}

	member, err := s.MemberRepo.Find(collabID, actor.Email)
	if err != nil {
		log.Errorf("failed to fetch membership: %v", err)
		return nil, nil, apierror.InternalServerError
	}
	return collab, member, nil
}
