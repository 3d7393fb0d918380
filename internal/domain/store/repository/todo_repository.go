package repository

import (
	"errors"

	"eventide/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultTodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *DefaultTodoRepository {
	return &DefaultTodoRepository{db: db}
}

func (d *DefaultTodoRepository) FindVisible(email string, collabIDs []string) ([]*entity.Todo, error) {
	var todos []*entity.Todo

	q := d.db.Preload("Subtasks").Preload("Label").Preload("Collaboration").Order("created_at ASC")
	if len(collabIDs) > 0 {
		q = q.Where("(user_email = ? AND collab_id IS NULL) OR collab_id IN ?", email, collabIDs)
	} else {
		q = q.Where("user_email = ? AND collab_id IS NULL", email)
	}

	if err := q.Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (d *DefaultTodoRepository) FindByID(id string) (*entity.Todo, error) {
	var todo entity.Todo
	err := d.db.Preload("Subtasks").Preload("Label").Preload("Collaboration").
		First(&todo, "todo_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (d *DefaultTodoRepository) Save(todo *entity.Todo) error {
	return d.db.Omit("Subtasks", "Label", "Collaboration", "Project").Save(todo).Error
}

// ReplaceSubtasks swaps the full subtask list of a todo. Partial patches
// always carry the whole list, so a wipe-and-insert keeps positions simple.
func (d *DefaultTodoRepository) ReplaceSubtasks(todoID string, subtasks []entity.Subtask) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_id = ?", todoID).Delete(&entity.Subtask{}).Error; err != nil {
			return err
		}
		if len(subtasks) == 0 {
			return nil
		}
		return tx.Create(&subtasks).Error
	})
}

func (d *DefaultTodoRepository) Delete(todo *entity.Todo) error {
	return d.db.Delete(todo).Error
}
