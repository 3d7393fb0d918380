package repository

import (
	"errors"

	"eventide/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *DefaultMessageRepository {
	return &DefaultMessageRepository{db: db}
}

// FindByCollab returns the space's chat history in insertion order.
// Message ids are time-ordered, so sorting by id matches insertion.
func (d *DefaultMessageRepository) FindByCollab(collabID string) ([]*entity.Message, error) {
	var messages []*entity.Message
	err := d.db.Where("collab_id = ?", collabID).Order("message_id ASC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// FindByClientKey looks up a message by its idempotency key within a space.
func (d *DefaultMessageRepository) FindByClientKey(collabID, clientKey string) (*entity.Message, error) {
	var message entity.Message
	err := d.db.First(&message, "collab_id = ? AND client_key = ?", collabID, clientKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (d *DefaultMessageRepository) Save(message *entity.Message) error {
	return d.db.Omit("Collaboration").Save(message).Error
}
