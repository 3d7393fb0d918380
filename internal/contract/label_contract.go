package contract

type LabelResponse struct {
	LabelID   string `json:"label_id"`
	UserEmail string `json:"user_email"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"created_at"`
}

type CreateLabelRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=40"`
	Color string `json:"color" validate:"required,hexcolor"`
}

type UpdateLabelRequest struct {
	Name  *string `json:"name" validate:"omitempty,notblank,max=40"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}
