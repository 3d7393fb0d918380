package repository

import (
	"errors"

	"eventide/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultInvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *DefaultInvitationRepository {
	return &DefaultInvitationRepository{db: db}
}

func (d *DefaultInvitationRepository) FindByInvitee(email string) ([]*entity.Invitation, error) {
	var invites []*entity.Invitation
	err := d.db.Preload("Collaboration").
		Where("invitee_email = ?", email).
		Order("created_at ASC").
		Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

func (d *DefaultInvitationRepository) FindByID(id string) (*entity.Invitation, error) {
	var invite entity.Invitation
	err := d.db.Preload("Collaboration").First(&invite, "invite_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &invite, nil
}

func (d *DefaultInvitationRepository) FindByCollabAndInvitee(collabID, email string) (*entity.Invitation, error) {
	var invite entity.Invitation
	err := d.db.First(&invite, "collab_id = ? AND invitee_email = ?", collabID, email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &invite, nil
}

func (d *DefaultInvitationRepository) Save(invite *entity.Invitation) error {
	return d.db.Omit("Collaboration").Save(invite).Error
}

// DeleteTerminalBefore purges accepted/declined invitations older than the
// cutoff. Pending invites are never swept.
func (d *DefaultInvitationRepository) DeleteTerminalBefore(cutoff int64) (int64, error) {
	res := d.db.Where("status IN ? AND created_at < ?",
		[]entity.InvitationStatus{entity.InviteStatusAccepted, entity.InviteStatusDeclined},
		cutoff,
	).Delete(&entity.Invitation{})
	return res.RowsAffected, res.Error
}
