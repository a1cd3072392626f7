package model

import (
	"time"

	"taskboard.com/taskboard/internal/constants"
)

type User struct {
	ID             string              `gorm:"primaryKey;size:36" json:"id"`
	Name           string              `gorm:"size:50;not null" json:"name"`
	Email          string              `gorm:"size:100;not null;uniqueIndex" json:"email"`
	PasswordDigest string              `gorm:"size:255;not null" json:"-"`
	Level          constants.UserLevel `gorm:"type:varchar(10);not null;default:user" json:"level"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Level == constants.LevelAdmin
}
