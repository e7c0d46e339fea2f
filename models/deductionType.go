package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeductionType struct {
	ID              uint                     `json:"id" gorm:"primaryKey"`
	Name            string                   `json:"name" gorm:"not null"`
	Description     *string                  `json:"description"`
	CalculationType DeductionCalculationType `json:"calculationType" gorm:"type:varchar(32);not null"`
	RuleAmount      *decimal.Decimal         `json:"ruleAmount" gorm:"type:decimal(15,2)"`    // chỉ có với PER_LATE_INSTANCE, PER_ALPHA_DAY
	RulePercentage  *decimal.Decimal         `json:"rulePercentage" gorm:"type:decimal(7,4)"` // chỉ có với PERCENTAGE_ALPHA_DAY, MANDATORY_PERCENTAGE
	IsMandatory     bool                     `json:"isMandatory" gorm:"default:false"`
	CreatedAt       time.Time                `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time                `gorm:"autoUpdateTime" json:"updatedAt"`
}
