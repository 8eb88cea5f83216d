package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleTeacher UserRole = "teacher"
	UserRoleParent  UserRole = "parent"
	UserRoleAdmin   UserRole = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string   `gorm:"type:text"`
	Role         UserRole  `gorm:"type:varchar(20);not null;index"`

	// Guardians carry a link to the student they are responsible for.
	LinkedStudentID *uuid.UUID `gorm:"type:uuid;index"`
	LinkedStudent   *User      `gorm:"foreignKey:LinkedStudentID"`

	YearLevel     string  `gorm:"type:varchar(20);index:idx_users_scope"`
	Section       string  `gorm:"type:varchar(20);index:idx_users_scope"`
	Courses       string  `gorm:"type:varchar(100);index:idx_users_scope"`
	ContactNumber *string `gorm:"type:varchar(30)"`
	Gender        *string `gorm:"type:varchar(10)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
