package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course represents a video course in the catalog
type Course struct {
	gorm.Model
	Title           string         `json:"title"`
	Author          string         `json:"author"`
	Description     string         `json:"description" gorm:"type:text"`
	LongDescription string         `json:"long_description" gorm:"type:text"`
	Image           string         `json:"image"`
	Price           int            `json:"price"`
	OriginalPrice   int            `json:"original_price"`
	Tags            string         `json:"tags"` // comma separated
	Highlight       bool           `json:"highlight" gorm:"default:false"`
	PromoText       string         `json:"promo_text"`
	Recommended     bool           `json:"recommended" gorm:"default:false"`
	HasTrial        bool           `json:"has_trial" gorm:"default:false"`
	SyllabusJSON    datatypes.JSON `json:"syllabus" gorm:"column:syllabus_json"`
	IsDeleted       bool           `json:"-" gorm:"default:false"`
}
