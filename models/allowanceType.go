package models

import (
	"fmt"
	"time"
)

type AllowanceType struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description *string   `json:"description"`
	IsFixed     bool      `json:"isFixed" gorm:"default:true"` // phụ cấp cố định hay không cố định
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (a *AllowanceType) ValidateName() error {
	if a.Name == "" {
		return fmt.Errorf("tên loại phụ cấp không được để trống")
	}
	return nil
}
