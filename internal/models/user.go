package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. The literal "admin" username is a protected identity on top of
// the role system: it can never be deleted and its role can never change.
const (
	RoleAdmin        = "admin"
	RoleSocialWorker = "socialworker"
	RoleCounsellor   = "counsellor"
	RoleHR           = "hr"
)

// ProtectedUsername is the reserved super-account.
const ProtectedUsername = "admin"

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSocialWorker, RoleCounsellor, RoleHR:
		return true
	}
	return false
}

// User represents an agency staff account.
type User struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Role      string    `gorm:"size:32;not null;default:socialworker" json:"role"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// IsProtected reports whether this is the reserved admin account.
func (u *User) IsProtected() bool {
	return u.Username == ProtectedUsername
}
