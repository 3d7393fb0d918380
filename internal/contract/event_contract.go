package contract

type EventResponse struct {
	EventID    string  `json:"event_id"`
	Title      string  `json:"title"`
	Details    string  `json:"details"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Category   *string `json:"category"`
	Indefinite bool    `json:"is_indefinite"`
	UserEmail  string  `json:"user_email"`
	LabelID    *string `json:"label_id"`
	CollabID   *string `json:"collab_id"`
	CollabName *string `json:"collab_name,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type CreateEventRequest struct {
	Title      string  `json:"title" validate:"required,notblank,max=120"`
	Details    string  `json:"details" validate:"max=2000"`
	Date       string  `json:"date" validate:"omitempty,datadate"`
	Time       string  `json:"time" validate:"omitempty,daytime"`
	Category   *string `json:"category" validate:"omitempty,oneof=Personal Work Social Health Other"`
	Indefinite bool    `json:"is_indefinite"`
	LabelID    *string `json:"label_id"`
	CollabID   *string `json:"collab_id"`
}

type UpdateEventRequest struct {
	Title      *string `json:"title" validate:"omitempty,notblank,max=120"`
	Details    *string `json:"details" validate:"omitempty,max=2000"`
	Date       *string `json:"date" validate:"omitempty,datadate"`
	Time       *string `json:"time" validate:"omitempty,daytime"`
	Category   *string `json:"category" validate:"omitempty,oneof=Personal Work Social Health Other"`
	Indefinite *bool   `json:"is_indefinite"`
	LabelID    *string `json:"label_id"`
}
