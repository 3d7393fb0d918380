package repository

import (
	"errors"

	"eventide/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *DefaultProjectRepository {
	return &DefaultProjectRepository{db: db}
}

func (d *DefaultProjectRepository) FindVisible(email string, collabIDs []string) ([]*entity.Project, error) {
	var projects []*entity.Project

	q := d.db.Preload("Collaboration").Order("created_at ASC")
	if len(collabIDs) > 0 {
		q = q.Where("(user_email = ? AND collab_id IS NULL) OR collab_id IN ?", email, collabIDs)
	} else {
		q = q.Where("user_email = ? AND collab_id IS NULL", email)
	}

	if err := q.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (d *DefaultProjectRepository) FindByID(id string) (*entity.Project, error) {
	var project entity.Project
	err := d.db.Preload("Collaboration").First(&project, "project_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindPersonalByName looks up one of the user's personal projects by its
// exact name. Used to provision the Inbox.
func (d *DefaultProjectRepository) FindPersonalByName(email, name string) (*entity.Project, error) {
	var project entity.Project
	err := d.db.First(&project, "user_email = ? AND collab_id IS NULL AND name = ?", email, name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (d *DefaultProjectRepository) Save(project *entity.Project) error {
	return d.db.Save(project).Error
}

func (d *DefaultProjectRepository) Delete(project *entity.Project) error {
	return d.db.Delete(project).Error
}
