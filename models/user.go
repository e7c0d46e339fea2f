package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type User struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
	Name       string           `gorm:"not null" json:"name"`
	Email      string           `gorm:"unique;not null" json:"email"`
	Password   string           `json:"-"`
	Role       string           `gorm:"type:varchar(20);default:'EMPLOYEE'" json:"role"`
	BaseSalary *decimal.Decimal `gorm:"type:decimal(15,2)" json:"baseSalary"`
	WorkDays   pq.Int64Array    `gorm:"type:integer[]" json:"workDays"` // thứ trong tuần phải đi làm, 0=CN .. 6=Thứ 7

	Allowances  []UserAllowance `gorm:"foreignKey:UserID" json:"allowances,omitempty"`
	Deductions  []UserDeduction `gorm:"foreignKey:UserID" json:"deductions,omitempty"`
	Attendances []Attendance    `gorm:"foreignKey:UserID" json:"-"`
}

// WorksOn kiểm tra weekday có nằm trong lịch làm việc của user không.
func (u *User) WorksOn(weekday time.Weekday) bool {
	for _, d := range u.WorkDays {
		if int(weekday) == int(d) {
			return true
		}
	}
	return false
}
