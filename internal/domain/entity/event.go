package entity

// Event is a calendar entry. Date is a YYYY-MM-DD calendar day and Time an
// optional HH:MM wall-clock time; indefinite events have no scheduled day.
// A nil CollabID means the event is personal.
type Event struct {
	EventID    string `gorm:"primaryKey"`
	UserEmail  string `gorm:"not null;index"`
	Title      string `gorm:"not null"`
	Details    string
	Date       string
	Time       string
	Category   *string
	Indefinite bool    `gorm:"not null;default:false"`
	LabelID    *string `gorm:"index"`
	CollabID   *string `gorm:"index"`
	CreatedAt  int64   `gorm:"not null"`

	// Relations
	Label         *Label         `gorm:"foreignKey:LabelID;references:LabelID;belongsTo;constraint:OnDelete:SET NULL"`
	Collaboration *Collaboration `gorm:"foreignKey:CollabID;references:CollabID;belongsTo;constraint:OnDelete:CASCADE"`
}
