package models

import "time"

type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
)

// User is a directory row shown on the admin user list. It is unrelated to
// the session identity; directory rows are seeded baseline data.
type User struct {
	ID       uint64     `gorm:"primarykey" json:"id"`
	Name     string     `gorm:"type:varchar(255);not null" json:"name"`
	Email    string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Role     Role       `gorm:"type:varchar(20);not null" json:"role"`
	Status   UserStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	JoinedAt time.Time  `json:"joined_at"`
}
