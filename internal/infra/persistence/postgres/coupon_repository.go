// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	"scout/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// FindByCode retrieves a coupon by its code.
func (repo *couponRepository) FindByCode(ctx context.Context, code entity.CouponCode) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code.String()).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// Create persists a new unredeemed coupon.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCoupon
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("face_value", "must be positive")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewValidationError("coupon", "missing required coupon information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.CreatedAt = couponM.CreatedAt

	return nil
}

// Save writes the redemption state of an existing coupon unconditionally.
func (repo *couponRepository) Save(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("code = ?", couponM.Code).
		Updates(map[string]any{
			"redeemed":    couponM.Redeemed,
			"redeemed_by": couponM.RedeemedBy,
			"redeemed_at": couponM.RedeemedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save coupon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// MarkRedeemed flips the coupon to redeemed only while it is still unredeemed.
// The WHERE clause makes the check and the write a single statement.
func (repo *couponRepository) MarkRedeemed(ctx context.Context, code entity.CouponCode, redemption entity.Redemption) error {
	redeemedBy := redemption.RedeemedBy.Int64()
	redeemedAt := redemption.RedeemedAt

	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("code = ? AND redeemed = ?", code.String(), false).
		Updates(map[string]any{
			"redeemed":    true,
			"redeemed_by": &redeemedBy,
			"redeemed_at": &redeemedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to redeem coupon")
	}

	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("code = ?", code.String()).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check coupon existence")
	}

	if count == 0 {
		return repository.ErrCouponNotFound
	}

	return repository.ErrCouponAlreadyRedeemed
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	faceValue, err := entity.NewAmount(data.FaceValueMinor)
	if err != nil {
		faceValue = entity.Amount{}
	}

	coupon := &entity.Coupon{
		Code:      entity.CouponCode(data.Code),
		FaceValue: faceValue,
		CreatedAt: data.CreatedAt,
	}

	if data.Redeemed {
		redemption := &entity.Redemption{}
		if data.RedeemedBy != nil {
			redemption.RedeemedBy = entity.AccountID(*data.RedeemedBy)
		}
		if data.RedeemedAt != nil {
			redemption.RedeemedAt = *data.RedeemedAt
		}
		coupon.Redemption = redemption
	}

	return coupon
}

// fromCouponDomain converts a domain Coupon entity to a GORM CouponModel.
func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	couponM := &model.CouponModel{
		Code:           data.Code.String(),
		FaceValueMinor: data.FaceValue.Units(),
		CreatedAt:      data.CreatedAt,
	}

	if data.Redemption != nil {
		redeemedBy := data.Redemption.RedeemedBy.Int64()
		redeemedAt := data.Redemption.RedeemedAt
		couponM.Redeemed = true
		couponM.RedeemedBy = &redeemedBy
		couponM.RedeemedAt = &redeemedAt
	}

	return couponM
}
