package policy

import (
	"eventide/internal/domain/entity"
	"eventide/internal/utils/apierror"
)

// CollabPolicy encapsulates all business rules for collaboration spaces.
// It returns apierror.ErrorResponse directly for seamless integration with handlers.
type CollabPolicy struct{}

func NewCollabPolicy() *CollabPolicy {
	return &CollabPolicy{}
}

// CanManage checks if 'actorEmail' may rename or delete the space.
// Only the stored owner may.
func (p *CollabPolicy) CanManage(collab *entity.Collaboration, actorEmail string) apierror.ErrorResponse {
	if collab == nil {
		return apierror.NotFoundError
	}

	if collab.OwnerEmail != actorEmail {
		return apierror.OwnerOnlyError
	}
	return nil
}

// CanInvite checks if the actor may send invitations or manage members.
// Owners and admins may.
func (p *CollabPolicy) CanInvite(collab *entity.Collaboration, actor *entity.Member, actorEmail string) apierror.ErrorResponse {
	if collab == nil {
		return apierror.NotFoundError
	}

	if collab.OwnerEmail == actorEmail {
		return nil
	}

	if actor == nil {
		return apierror.NotAMemberError
	}

	if actor.Role != entity.RoleAdmin {
		return apierror.NewForbiddenError("Only the owner or an admin can manage members")
	}
	return nil
}

// CanTouchMember checks if a member-management action may target 'target'.
// The owner row is immutable through this path: it can be neither removed
// nor demoted, so the single-owner invariant holds.
func (p *CollabPolicy) CanTouchMember(collab *entity.Collaboration, target *entity.Member) apierror.ErrorResponse {
	if target == nil {
		return apierror.NotFoundError
	}

	if target.Role == entity.RoleOwner || target.UserEmail == collab.OwnerEmail {
		return apierror.OwnerImmutableError
	}
	return nil
}

// CanRead checks membership. The owner is always a member.
func (p *CollabPolicy) CanRead(collab *entity.Collaboration, actor *entity.Member, actorEmail string) apierror.ErrorResponse {
	if collab == nil {
		return apierror.NotFoundError
	}

	if collab.OwnerEmail == actorEmail {
		return nil
	}

	if actor == nil {
		return apierror.NotAMemberError
	}
	return nil
}

// CanWrite checks for an editing role: owner, admin or editor. Viewers read only.
func (p *CollabPolicy) CanWrite(collab *entity.Collaboration, actor *entity.Member, actorEmail string) apierror.ErrorResponse {
	if apierr := p.CanRead(collab, actor, actorEmail); apierr != nil {
		return apierr
	}

	if collab.OwnerEmail == actorEmail {
		return nil
	}

	if actor.Role == entity.RoleViewer {
		return apierror.NewForbiddenError("Viewers cannot modify this space")
	}
	return nil
}
