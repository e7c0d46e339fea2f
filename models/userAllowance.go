package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserAllowance gán một loại phụ cấp cho một user, amount luôn bắt buộc.
type UserAllowance struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	UserID          uint            `json:"userId" gorm:"index;not null"`
	AllowanceTypeID uint            `json:"allowanceTypeId" gorm:"not null"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(15,2);not null"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`

	User          User          `gorm:"foreignKey:UserID" json:"-"`
	AllowanceType AllowanceType `gorm:"foreignKey:AllowanceTypeID" json:"allowanceType"`
}
