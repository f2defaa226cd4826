package accounts

import "time"

type User struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}

// Session holds a denormalized copy of the email so protected routes can
// answer without a user lookup.
type Session struct {
	SessionID string    `gorm:"primaryKey" json:"-"`
	UserID    int       `gorm:"not null" json:"-"`
	Email     string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

func (User) TableName() string    { return "app_accounts.users" }
func (Session) TableName() string { return "app_accounts.sessions" }
