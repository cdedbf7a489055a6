package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role values for staff accounts
const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
)

// User represents a staff account used to access the API
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:uq_users_email;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Role      string    `gorm:"type:varchar(20);not null;default:'receptionist';index" json:"role"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin checks whether the user may manage staff and reference data
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
