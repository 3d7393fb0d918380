package contract

type NotebookResponse struct {
	NotebookID string  `json:"notebook_id"`
	UserEmail  string  `json:"user_email"`
	Name       string  `json:"name"`
	CollabID   *string `json:"collab_id"`
	CollabName *string `json:"collab_name,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type CreateNotebookRequest struct {
	Name     string  `json:"name" validate:"required,notblank,max=80"`
	CollabID *string `json:"collab_id"`
}

type UpdateNotebookRequest struct {
	Name *string `json:"name" validate:"omitempty,notblank,max=80"`
}

type NoteResponse struct {
	NoteID     string  `json:"note_id"`
	NotebookID string  `json:"notebook_id"`
	UserEmail  string  `json:"user_email"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	CollabID   *string `json:"collab_id"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type CreateNoteRequest struct {
	NotebookID string `json:"notebook_id" validate:"required"`
	Title      string `json:"title" validate:"required,notblank,max=160"`
	Content    string `json:"content" validate:"max=1000000"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title" validate:"omitempty,notblank,max=160"`
	Content *string `json:"content" validate:"omitempty,max=1000000"`
}
