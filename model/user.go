package model

type User struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string `gorm:"unique;not null" json:"email"`
	Username       string `gorm:"unique;not null" json:"username"`
	PhoneNumber    string `gorm:"unique;not null" json:"phone_number"`
	HashedPassword string `gorm:"not null" json:"-"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
	IsVerified     bool   `gorm:"default:false" json:"is_verified"`
	// One-time SMS code. Cleared on successful verification so a
	// replay with the same code fails
	VerificationCode *string `json:"-"`

	Expenses []Expense `gorm:"foreignKey:UserID" json:"-"`
	Incomes  []Income  `gorm:"foreignKey:UserID" json:"-"`
}
