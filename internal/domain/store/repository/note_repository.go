package repository

import (
	"errors"

	"eventide/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultNotebookRepository struct {
	db *gorm.DB
}

func NewNotebookRepository(db *gorm.DB) *DefaultNotebookRepository {
	return &DefaultNotebookRepository{db: db}
}

func (d *DefaultNotebookRepository) FindVisible(email string, collabIDs []string) ([]*entity.Notebook, error) {
	var notebooks []*entity.Notebook

	q := d.db.Preload("Collaboration").Order("created_at ASC")
	if len(collabIDs) > 0 {
		q = q.Where("(user_email = ? AND collab_id IS NULL) OR collab_id IN ?", email, collabIDs)
	} else {
		q = q.Where("user_email = ? AND collab_id IS NULL", email)
	}

	if err := q.Find(&notebooks).Error; err != nil {
		return nil, err
	}
	return notebooks, nil
}

func (d *DefaultNotebookRepository) FindByID(id string) (*entity.Notebook, error) {
	var notebook entity.Notebook
	err := d.db.Preload("Collaboration").First(&notebook, "notebook_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &notebook, nil
}

func (d *DefaultNotebookRepository) Save(notebook *entity.Notebook) error {
	return d.db.Save(notebook).Error
}

func (d *DefaultNotebookRepository) Delete(notebook *entity.Notebook) error {
	return d.db.Delete(notebook).Error
}

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

func (d *DefaultNoteRepository) FindByNotebook(notebookID string) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.Where("notebook_id = ?", notebookID).Order("created_at ASC").Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) FindVisible(email string, collabIDs []string) ([]*entity.Note, error) {
	var notes []*entity.Note

	q := d.db.Order("created_at ASC")
	if len(collabIDs) > 0 {
		q = q.Where("(user_email = ? AND collab_id IS NULL) OR collab_id IN ?", email, collabIDs)
	} else {
		q = q.Where("user_email = ? AND collab_id IS NULL", email)
	}

	if err := q.Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) FindByID(id string) (*entity.Note, error) {
	var note entity.Note
	err := d.db.First(&note, "note_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *DefaultNoteRepository) Save(note *entity.Note) error {
	return d.db.Save(note).Error
}

func (d *DefaultNoteRepository) Delete(note *entity.Note) error {
	return d.db.Delete(note).Error
}
