package contract

type ProfileResponse struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	PhotoURL    string `json:"photo_url"`
	Theme       string `json:"theme"`
	LandingPage string `json:"landing_page"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type UpdateProfileRequest struct {
	Username    *string `json:"username" validate:"omitempty,notblank,max=80"`
	PhotoURL    *string `json:"photo_url" validate:"omitempty,url"`
	Theme       *string `json:"theme" validate:"omitempty,oneof=light dark system"`
	LandingPage *string `json:"landing_page" validate:"omitempty,max=120"`
}

type SummarizeRequest struct {
	Text string `json:"text" validate:"required,notblank,max=100000"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}
