package contract

type SubtaskPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required,notblank,max=120"`
	Completed bool   `json:"completed"`
}

type TodoResponse struct {
	TodoID      string           `json:"todo_id"`
	UserEmail   string           `json:"user_email"`
	ProjectID   string           `json:"project_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	DueDate     *string          `json:"due_date"`
	Priority    string           `json:"priority"`
	Completed   bool             `json:"completed"`
	CompletedAt *string          `json:"completed_at"`
	LabelID     *string          `json:"label_id"`
	CollabID    *string          `json:"collab_id"`
	CollabName  *string          `json:"collab_name,omitempty"`
	Subtasks    []SubtaskPayload `json:"subtasks"`
	CreatedAt   string           `json:"created_at"`
}

type CreateTodoRequest struct {
	Title       string           `json:"title" validate:"required,notblank,max=200"`
	Description string           `json:"description" validate:"max=2000"`
	ProjectID   string           `json:"project_id"`
	DueDate     *string          `json:"due_date" validate:"omitempty,datadate"`
	Priority    string           `json:"priority" validate:"omitempty,oneof='Very Important' 'Important' 'Not Important' 'Casual'"`
	LabelID     *string          `json:"label_id"`
	CollabID    *string          `json:"collab_id"`
	Subtasks    []SubtaskPayload `json:"subtasks" validate:"omitempty,max=50,dive"`
}

type UpdateTodoRequest struct {
	Title       *string          `json:"title" validate:"omitempty,notblank,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	ProjectID   *string          `json:"project_id"`
	DueDate     *string          `json:"due_date" validate:"omitempty,datadate"`
	Priority    *string          `json:"priority" validate:"omitempty,oneof='Very Important' 'Important' 'Not Important' 'Casual'"`
	Completed   *bool            `json:"completed"`
	LabelID     *string          `json:"label_id"`
	Subtasks    []SubtaskPayload `json:"subtasks" validate:"omitempty,max=50,dive"`
}

type ProjectResponse struct {
	ProjectID  string  `json:"project_id"`
	UserEmail  string  `json:"user_email"`
	Name       string  `json:"name"`
	CollabID   *string `json:"collab_id"`
	CollabName *string `json:"collab_name,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type CreateProjectRequest struct {
	Name     string  `json:"name" validate:"required,notblank,max=80"`
	CollabID *string `json:"collab_id"`
}
