package entity

// Label belongs to one personal user and may be referenced, not owned,
// by many events and todos.
type Label struct {
	LabelID   string `gorm:"primaryKey"`
	UserEmail string `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	Color     string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`
}
