package model

import (
	"time"
)

// AccountModel is the GORM-specific struct for the 'accounts' table.
// It holds a prepaid balance in minor currency units.
type AccountModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false"`
	DisplayName  string `gorm:"type:varchar(255);not null;default:''"`
	BalanceMinor int64  `gorm:"not null;default:0;check:chk_accounts_balance_non_negative,balance_minor >= 0"`
	Preference   string `gorm:"type:varchar(16);not null;default:'ACTIVE'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
