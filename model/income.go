package model

type Income struct {
	ID          uint    `gorm:"primaryKey;autoIncrement;index" json:"id"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Date        Date    `gorm:"not null" json:"date"`
	Source      string  `gorm:"not null" json:"source"`
	IsRecurring bool    `gorm:"default:false" json:"is_recurring"`
	UserID      uint    `gorm:"not null;index" json:"-"`
}
