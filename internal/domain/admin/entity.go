package admin

import "time"

// Admin is a dashboard account. Timestamp columns keep the camelCase names
// of the existing schema.
type Admin struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:password;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:createdAt"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updatedAt"`
}

func (Admin) TableName() string {
	return "admins"
}
