package models

import "time"

type LeaveType struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	Name                string    `json:"name" gorm:"not null"`
	DeductsLeaveBalance bool      `json:"deductsLeaveBalance" gorm:"default:true"` // có trừ vào số ngày phép năm không
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
