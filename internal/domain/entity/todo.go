package entity

// Priority levels, highest to lowest.
type Priority string

const (
	PriorityVeryImportant Priority = "Very Important"
	PriorityImportant     Priority = "Important"
	PriorityNotImportant  Priority = "Not Important"
	PriorityCasual        Priority = "Casual"
)

type Todo struct {
	TodoID      string `gorm:"primaryKey"`
	UserEmail   string `gorm:"not null;index"`
	ProjectID   string `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	DueDate     *string
	Priority    Priority `gorm:"not null;default:Casual"`
	Completed   bool     `gorm:"not null;default:false"`
	CompletedAt *int64
	LabelID     *string `gorm:"index"`
	CollabID    *string `gorm:"index"`
	CreatedAt   int64   `gorm:"not null"`

	// Relations
	Subtasks      []Subtask      `gorm:"foreignKey:TodoID;references:TodoID;constraint:OnDelete:CASCADE"`
	Project       Project        `gorm:"foreignKey:ProjectID;references:ProjectID;belongsTo;constraint:OnDelete:CASCADE"`
	Label         *Label         `gorm:"foreignKey:LabelID;references:LabelID;belongsTo;constraint:OnDelete:SET NULL"`
	Collaboration *Collaboration `gorm:"foreignKey:CollabID;references:CollabID;belongsTo;constraint:OnDelete:CASCADE"`
}

type Subtask struct {
	SubtaskID string `gorm:"primaryKey"`
	TodoID    string `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	Completed bool   `gorm:"not null;default:false"`
	Position  int    `gorm:"not null;default:0"`
}

// Project groups todos. Every user gets a personal project literally named
// "Inbox", which always sorts first.
type Project struct {
	ProjectID string `gorm:"primaryKey"`
	UserEmail string `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	CollabID  *string
	CreatedAt int64 `gorm:"not null"`

	// Relations
	Collaboration *Collaboration `gorm:"foreignKey:CollabID;references:CollabID;belongsTo;constraint:OnDelete:CASCADE"`
}

const InboxProjectName = "Inbox"
