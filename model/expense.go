package model

type Expense struct {
	ID        uint    `gorm:"primaryKey;autoIncrement;index" json:"id"`
	Amount    float64 `gorm:"not null" json:"amount"`
	Date      Date    `gorm:"not null" json:"date"`
	Note      string  `json:"note"`
	Recurring bool    `gorm:"default:false" json:"recurring"`

	CategoryID    uint `json:"-"`
	PaymentModeID uint `json:"-"`
	UserID        uint `gorm:"not null;index" json:"-"`

	Category    Category    `gorm:"foreignKey:CategoryID" json:"category"`
	PaymentMode PaymentMode `gorm:"foreignKey:PaymentModeID" json:"paymentMode"`
}
