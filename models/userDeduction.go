package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserDeduction gán một loại khấu trừ cho một user.
// AssignedAmount chỉ có khi loại là FIXED_USER, AssignedPercentage chỉ có khi
// loại là PERCENTAGE_USER; bốn kiểu còn lại giá trị lấy từ rule của loại nên cả
// hai field đều null. DeductionTypeID không đổi sau khi tạo.
type UserDeduction struct {
	ID                 uint             `json:"id" gorm:"primaryKey"`
	UserID             uint             `json:"userId" gorm:"index;not null"`
	DeductionTypeID    uint             `json:"deductionTypeId" gorm:"not null"`
	AssignedAmount     *decimal.Decimal `json:"assignedAmount" gorm:"type:decimal(15,2)"`
	AssignedPercentage *decimal.Decimal `json:"assignedPercentage" gorm:"type:decimal(7,4)"`
	CreatedAt          time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`

	User          User          `gorm:"foreignKey:UserID" json:"-"`
	DeductionType DeductionType `gorm:"foreignKey:DeductionTypeID" json:"deductionType"`
}
