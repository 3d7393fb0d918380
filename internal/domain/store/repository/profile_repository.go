package repository

import (
	"errors"

	"eventide/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *DefaultProfileRepository {
	return &DefaultProfileRepository{db: db}
}

func (d *DefaultProfileRepository) FindBySub(sub string) (*entity.Profile, error) {
	var profile entity.Profile
	err := d.db.First(&profile, "sub = ?", sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (d *DefaultProfileRepository) Save(profile *entity.Profile) error {
	return d.db.Save(profile).Error
}
