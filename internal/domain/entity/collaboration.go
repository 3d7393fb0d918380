package entity

// Role is the capability tier of a member within a collaboration space.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Collaboration is a named shared context owning events, todos, notes and
// a chat. It has exactly one owner, recorded both here and as the single
// member row with RoleOwner.
type Collaboration struct {
	CollabID   string `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	OwnerEmail string `gorm:"not null"`
	CreatedAt  int64  `gorm:"not null"`
}

type Member struct {
	CollabID  string `gorm:"primaryKey"`
	UserEmail string `gorm:"primaryKey"`
	Role      Role   `gorm:"not null"`
	JoinedAt  int64  `gorm:"not null"`

	// Relations
	Collaboration Collaboration `gorm:"foreignKey:CollabID;references:CollabID;belongsTo;constraint:OnDelete:CASCADE"`
}

type InvitationStatus string

const (
	InviteStatusPending  InvitationStatus = "pending"
	InviteStatusAccepted InvitationStatus = "accepted"
	InviteStatusDeclined InvitationStatus = "declined"
)

// Terminal reports whether the status can no longer transition.
func (s InvitationStatus) Terminal() bool {
	return s == InviteStatusAccepted || s == InviteStatusDeclined
}

// Invitation is keyed by (collaboration, invitee) and transitions
// pending -> accepted/declined exactly once.
type Invitation struct {
	InviteID     string           `gorm:"primaryKey"`
	CollabID     string           `gorm:"not null;uniqueIndex:idx_invitations_collab_invitee,priority:1"`
	InviterEmail string           `gorm:"not null"`
	InviteeEmail string           `gorm:"not null;uniqueIndex:idx_invitations_collab_invitee,priority:2"`
	Role         Role             `gorm:"not null;default:editor"`
	Status       InvitationStatus `gorm:"not null;default:pending"`
	CreatedAt    int64            `gorm:"not null"`

	// Relations
	Collaboration Collaboration `gorm:"foreignKey:CollabID;references:CollabID;belongsTo;constraint:OnDelete:CASCADE"`
}

// Message is one chat entry in a collaboration space. The ID is
// time-ordered so the feed follows insertion order, and ClientKey is the
// caller-generated idempotency key the feed deduplicates by.
type Message struct {
	MessageID int64  `gorm:"primaryKey;autoIncrement:false"`
	CollabID  string `gorm:"not null;index;uniqueIndex:idx_messages_collab_key,priority:1"`
	UserEmail string `gorm:"not null"`
	Content   string `gorm:"not null"`
	ClientKey string `gorm:"not null;uniqueIndex:idx_messages_collab_key,priority:2"`
	CreatedAt int64  `gorm:"not null"`

	// Relations
	Collaboration Collaboration `gorm:"foreignKey:CollabID;references:CollabID;belongsTo;constraint:OnDelete:CASCADE"`
}
