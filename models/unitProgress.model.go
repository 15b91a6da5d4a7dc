package models

import "gorm.io/gorm"

// UnitProgress tracks a user's viewing progress for one course unit.
// ProgressPercent only ever moves forward; Completed and Delivered flip
// to true once and never revert.
type UnitProgress struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course_unit"`
	CourseID uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course_unit"`
	UnitID   string `json:"unit_id" gorm:"not null;uniqueIndex:idx_user_course_unit"`

	ProgressPercent     int  `json:"progress_percent" gorm:"default:0"`
	LastPositionSeconds int  `json:"last_position_seconds" gorm:"default:0"`
	Completed           bool `json:"completed" gorm:"default:false"`
	Delivered           bool `json:"delivered" gorm:"default:false"`

	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
