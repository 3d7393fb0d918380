package repository

import (
	"errors"

	"eventide/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultCollabRepository struct {
	db *gorm.DB
}

func NewCollabRepository(db *gorm.DB) *DefaultCollabRepository {
	return &DefaultCollabRepository{db: db}
}

func (d *DefaultCollabRepository) FindByID(id string) (*entity.Collaboration, error) {
	var collab entity.Collaboration
	err := d.db.First(&collab, "collab_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &collab, nil
}

// FindVisible returns every space the user owns or is a member of.
func (d *DefaultCollabRepository) FindVisible(email string) ([]*entity.Collaboration, error) {
	var collabs []*entity.Collaboration
	err := d.db.
		Where("owner_email = ? OR collab_id IN (?)",
			email,
			d.db.Model(&entity.Member{}).Select("collab_id").Where("user_email = ?", email),
		).
		Order("created_at ASC").
		Find(&collabs).Error
	if err != nil {
		return nil, err
	}
	return collabs, nil
}

func (d *DefaultCollabRepository) Save(collab *entity.Collaboration) error {
	return d.db.Save(collab).Error
}

func (d *DefaultCollabRepository) Delete(collab *entity.Collaboration) error {
	return d.db.Delete(collab).Error
}

type DefaultMemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *DefaultMemberRepository {
	return &DefaultMemberRepository{db: db}
}

func (d *DefaultMemberRepository) FindByCollab(collabID string) ([]*entity.Member, error) {
	var members []*entity.Member
	err := d.db.Where("collab_id = ?", collabID).Order("joined_at ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (d *DefaultMemberRepository) Find(collabID, email string) (*entity.Member, error) {
	var member entity.Member
	err := d.db.First(&member, "collab_id = ? AND user_email = ?", collabID, email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindCollabIDsByEmail returns the ids of every space the user belongs to.
// This is the scope filter for shared events/todos/notes.
func (d *DefaultMemberRepository) FindCollabIDsByEmail(email string) ([]string, error) {
	var ids []string
	err := d.db.Model(&entity.Member{}).
		Where("user_email = ?", email).
		Pluck("collab_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (d *DefaultMemberRepository) Save(member *entity.Member) error {
	return d.db.Save(member).Error
}

func (d *DefaultMemberRepository) Delete(collabID, email string) error {
	return d.db.Where("collab_id = ? AND user_email = ?", collabID, email).
		Delete(&entity.Member{}).Error
}
