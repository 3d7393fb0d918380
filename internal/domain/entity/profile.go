package entity

// Profile holds the locally stored user data. Identity itself lives at the
// identity provider; a profile row is provisioned from token claims the
// first time a subject is seen.
type Profile struct {
	Sub         string `gorm:"primaryKey"`
	Email       string `gorm:"not null;uniqueIndex"`
	Username    string `gorm:"not null"`
	PhotoURL    string
	Theme       string `gorm:"not null;default:system"`
	LandingPage string `gorm:"not null;default:/"`
	CreatedAt   int64  `gorm:"not null"`
	UpdatedAt   int64  `gorm:"not null;autoUpdateTime:false"`
}
