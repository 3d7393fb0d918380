package contract

type CollabResponse struct {
	CollabID   string `json:"collab_id"`
	Name       string `json:"name"`
	OwnerEmail string `json:"owner_email"`
	CreatedAt  string `json:"created_at"`
}

type CreateCollabRequest struct {
	Name string `json:"name" validate:"required,notblank,max=80"`
}

type RenameCollabRequest struct {
	Name string `json:"name" validate:"required,notblank,max=80"`
}

type MemberResponse struct {
	CollabID  string `json:"collab_id"`
	UserEmail string `json:"user_email"`
	Role      string `json:"role"`
	JoinedAt  string `json:"joined_at"`
}

type UpdateMemberRequest struct {
	Role string `json:"role" validate:"required,oneof=admin editor viewer"`
}

type InvitationResponse struct {
	InviteID     string  `json:"invite_id"`
	CollabID     string  `json:"collab_id"`
	CollabName   *string `json:"collab_name,omitempty"`
	InviterEmail string  `json:"inviter_email"`
	InviteeEmail string  `json:"invitee_email"`
	Role         string  `json:"role"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

type CreateInvitationRequest struct {
	CollabID     string `json:"collab_id" validate:"required"`
	InviteeEmail string `json:"invitee_email" validate:"required,email"`
	Role         string `json:"role" validate:"omitempty,oneof=admin editor viewer"`
}

type AnswerInvitationRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined"`
}

type MessageResponse struct {
	MessageID string `json:"message_id"`
	CollabID  string `json:"collab_id"`
	UserEmail string `json:"user_email"`
	Content   string `json:"content"`
	ClientKey string `json:"client_key"`
	CreatedAt string `json:"created_at"`
}

type CreateMessageRequest struct {
	Content   string `json:"content" validate:"required,notblank,max=4000"`
	ClientKey string `json:"client_key" validate:"required,min=8,max=64"`
}
