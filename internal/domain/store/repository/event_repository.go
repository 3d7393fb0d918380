package repository

import (
	"errors"

	"eventide/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultEventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *DefaultEventRepository {
	return &DefaultEventRepository{db: db}
}

// FindVisible returns the user's personal events plus every event owned by
// one of the given collaboration spaces.
func (d *DefaultEventRepository) FindVisible(email string, collabIDs []string) ([]*entity.Event, error) {
	var events []*entity.Event

	q := d.db.Preload("Label").Preload("Collaboration").Order("created_at ASC")
	if len(collabIDs) > 0 {
		q = q.Where("(user_email = ? AND collab_id IS NULL) OR collab_id IN ?", email, collabIDs)
	} else {
		q = q.Where("user_email = ? AND collab_id IS NULL", email)
	}

	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (d *DefaultEventRepository) FindByID(id string) (*entity.Event, error) {
	var event entity.Event
	err := d.db.Preload("Label").Preload("Collaboration").First(&event, "event_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (d *DefaultEventRepository) Save(event *entity.Event) error {
	return d.db.Save(event).Error
}

func (d *DefaultEventRepository) Delete(event *entity.Event) error {
	return d.db.Delete(event).Error
}
