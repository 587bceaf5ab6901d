package qrcode

import (
	"encoding/json"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const couponQRType = "coupon"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Code string `json:"code"`
	Type string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// Payload returns the text encoded in a coupon QR code
func Payload(code entity.CouponCode) (string, error) {
	jsonData, err := json.Marshal(QRCodeData{
		Code: code.String(),
		Type: couponQRType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(jsonData), nil
}

// GenerateCouponQR generates a PNG QR code carrying the coupon code
func (s *qrcodeService) GenerateCouponQR(code entity.CouponCode) ([]byte, error) {
	payload, err := Payload(code)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseCouponQR parses scanned QR code text and returns the coupon code
func (s *qrcodeService) ParseCouponQR(qrData string) (entity.CouponCode, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", domainerrors.ErrQRCodeInvalid.WrapMessage("failed to unmarshal QR code data")
	}

	if data.Type != couponQRType {
		return "", domainerrors.ErrQRCodeInvalid.WrapMessage("invalid QR code type: " + data.Type)
	}

	code, err := entity.NewCouponCode(data.Code)
	if err != nil {
		return "", err
	}

	return code, nil
}
