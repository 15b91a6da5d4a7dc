package models

import "gorm.io/gorm"

const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusCancelled = "CANCELLED"
)

type Order struct {
	gorm.Model
	OrderNo  string `json:"order_no" gorm:"uniqueIndex;not null"`
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Status   string `json:"status" gorm:"default:'PENDING'"` // PENDING, PAID, CANCELLED

	PaymentMethod  string `json:"payment_method"`  // CREDIT, ATM, INSTALLMENT
	InvoiceType    string `json:"invoice_type"`    // GUI, MOBILE, CITIZEN, DONATION
	InvoiceCarrier string `json:"invoice_carrier"` // carrier number / tax id / donation code

	IsDeleted bool   `json:"-" gorm:"default:false"`
	User      User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course    Course `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// IsCoursePaid reports whether the user holds a fully paid order for the
// course. This is the entitlement check every EXP-bearing path goes through.
func IsCoursePaid(db *gorm.DB, userID, courseID uint) (bool, error) {
	var count int64
	err := db.Model(&Order{}).
		Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?", userID, courseID, OrderStatusPaid, false).
		Count(&count).Error
	return count > 0, err
}
