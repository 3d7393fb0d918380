package entity

type Notebook struct {
	NotebookID string `gorm:"primaryKey"`
	UserEmail  string `gorm:"not null;index"`
	Name       string `gorm:"not null"`
	CollabID   *string
	CreatedAt  int64 `gorm:"not null"`

	// Relations
	Collaboration *Collaboration `gorm:"foreignKey:CollabID;references:CollabID;belongsTo;constraint:OnDelete:CASCADE"`
}

type Note struct {
	NoteID     string `gorm:"primaryKey"`
	NotebookID string `gorm:"not null;index"`
	UserEmail  string `gorm:"not null;index"`
	Title      string `gorm:"not null"`
	Content    string
	CollabID   *string
	CreatedAt  int64 `gorm:"not null"`
	UpdatedAt  int64 `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Notebook      Notebook       `gorm:"foreignKey:NotebookID;references:NotebookID;belongsTo;constraint:OnDelete:CASCADE"`
	Collaboration *Collaboration `gorm:"foreignKey:CollabID;references:CollabID;belongsTo;constraint:OnDelete:CASCADE"`
}
