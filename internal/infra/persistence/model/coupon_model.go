package model

import (
	"time"
)

// CouponModel is the GORM-specific struct for the 'coupons' table.
// A coupon row is never deleted; redeemed_by and redeemed_at are set once.
type CouponModel struct {
	Code           string `gorm:"type:varchar(64);primaryKey"`
	FaceValueMinor int64  `gorm:"not null;check:chk_coupons_face_value_positive,face_value_minor > 0"`
	Redeemed       bool   `gorm:"not null;default:false"`
	RedeemedBy     *int64 `gorm:"index"`
	RedeemedAt     *time.Time
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
