package service

import (
	"scout/internal/domain/entity"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCouponQR generates a PNG QR code that carries a coupon code
	GenerateCouponQR(code entity.CouponCode) ([]byte, error)

	// ParseCouponQR parses QR code data and returns the coupon code
	ParseCouponQR(qrData string) (entity.CouponCode, error)
}
