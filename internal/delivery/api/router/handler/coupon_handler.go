package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"scout/internal/delivery/api/middleware"
	"scout/internal/delivery/api/response"
	"scout/internal/domain/entity"
	"scout/internal/domain/service"
	"scout/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CouponHandlerParams holds dependencies for CouponHandler, injected by Fx.
type CouponHandlerParams struct {
	fx.In

	RedemptionUC usecase.CouponRedemptionUsecase
	MintUC       usecase.CouponMintUsecase
	QRCodeSvc    service.QRCodeService
	Logger       *slog.Logger
}

// CouponHandler serves coupon redemption and admin minting
type CouponHandler struct {
	redemptionUC usecase.CouponRedemptionUsecase
	mintUC       usecase.CouponMintUsecase
	qrCodeSvc    service.QRCodeService
	logger       *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler
func NewCouponHandler(params CouponHandlerParams) *CouponHandler {
	return &CouponHandler{
		redemptionUC: params.RedemptionUC,
		mintUC:       params.MintUC,
		qrCodeSvc:    params.QRCodeSvc,
		logger:       params.Logger,
	}
}

// RedeemCouponRequest carries either a typed code or scanned QR data
type RedeemCouponRequest struct {
	Code        string `json:"code" validate:"required_without=QRData"`
	QRData      string `json:"qr_data"`
	DisplayName string `json:"display_name" validate:"max=255"`
}

// MintCouponsRequest represents the request body for minting coupons
type MintCouponsRequest struct {
	Amount string `json:"amount" validate:"required"`
	Count  int    `json:"count" validate:"omitempty,min=1"`
}

// RedeemCoupon credits a coupon to the caller's balance
func (h *CouponHandler) RedeemCoupon(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account in token")
	}

	var req RedeemCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	code, err := h.resolveCode(&req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.redemptionUC.Execute(c.Request().Context(), &usecase.CouponRedemptionInput{
		AccountID:   principal.AccountID,
		DisplayName: req.DisplayName,
		Code:        code,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &RedemptionView{
		Code:     out.Code.String(),
		Credited: out.Credited.String(),
		Balance:  out.Balance.String(),
	})
}

func (h *CouponHandler) resolveCode(req *RedeemCouponRequest) (entity.CouponCode, error) {
	if strings.TrimSpace(req.QRData) != "" {
		return h.qrCodeSvc.ParseCouponQR(req.QRData)
	}

	return entity.NewCouponCode(req.Code)
}

// MintCoupons creates one or more coupons of the same face value
func (h *CouponHandler) MintCoupons(c echo.Context) error {
	var req MintCouponsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	faceValue, err := entity.ParseAmount(req.Amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()

	var minted []usecase.CouponMintOutput
	if req.Count <= 1 {
		out, err := h.mintUC.Execute(ctx, &usecase.CouponMintInput{FaceValue: faceValue})
		if err != nil {
			return response.HandleAppError(c, err)
		}
		minted = []usecase.CouponMintOutput{*out}
	} else {
		out, err := h.mintUC.MintBatch(ctx, &usecase.CouponMintBatchInput{Count: req.Count, FaceValue: faceValue})
		if err != nil {
			return response.HandleAppError(c, err)
		}
		minted = out.Coupons
	}

	views := make([]CouponView, 0, len(minted))
	for _, coupon := range minted {
		views = append(views, CouponView{Code: coupon.Code.String(), FaceValue: coupon.FaceValue.String()})
	}

	return response.Success(c, http.StatusCreated, map[string]any{"coupons": views})
}

// GetCouponQR renders a coupon code as a PNG QR code
func (h *CouponHandler) GetCouponQR(c echo.Context) error {
	code, err := entity.NewCouponCode(c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCodeSvc.GenerateCouponQR(code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
