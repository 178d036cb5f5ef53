package model

// PaymentMode shares the dedup-by-triple semantics of Category
type PaymentMode struct {
	ID    uint   `gorm:"primaryKey;autoIncrement;index" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Icon  string `gorm:"not null" json:"icon"`
	Color string `json:"color"`

	Expenses []Expense `gorm:"foreignKey:PaymentModeID" json:"-"`
}
