package repository

import (
	"errors"

	"eventide/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultLabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *DefaultLabelRepository {
	return &DefaultLabelRepository{db: db}
}

func (d *DefaultLabelRepository) FindByOwner(email string) ([]*entity.Label, error) {
	var labels []*entity.Label
	err := d.db.Where("user_email = ?", email).Order("created_at ASC").Find(&labels).Error
	if err != nil {
		return nil, err
	}
	return labels, nil
}

func (d *DefaultLabelRepository) FindByID(id string) (*entity.Label, error) {
	var label entity.Label
	err := d.db.First(&label, "label_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &label, nil
}

func (d *DefaultLabelRepository) Save(label *entity.Label) error {
	return d.db.Save(label).Error
}

func (d *DefaultLabelRepository) Delete(label *entity.Label) error {
	return d.db.Delete(label).Error
}
