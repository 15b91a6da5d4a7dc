package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string     `json:"name" gorm:"default:''"`
	Email     string     `json:"email" gorm:"unique;not null"`
	Password  string     `json:"-" gorm:"not null"`
	Role      string     `json:"role" gorm:"default:'STUDENT'"` // STUDENT, ADMIN
	Avatar    string     `json:"avatar" gorm:"type:text"`
	LastLogin *time.Time `json:"last_login"`
	IsDeleted bool       `json:"-" gorm:"default:false"`
}
