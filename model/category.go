// Package model defines database models
package model

// Category rows are deduplicated by the (name, icon, color) triple,
// not by name alone. See FindOrCreate in the api package.
type Category struct {
	ID     uint    `gorm:"primaryKey;autoIncrement;index" json:"id"`
	Name   string  `gorm:"not null" json:"name"`
	Icon   string  `gorm:"not null" json:"icon"`
	Budget float64 `gorm:"not null;default:0" json:"budget"`
	Color  string  `json:"color"`

	Expenses []Expense `gorm:"foreignKey:CategoryID" json:"-"`
}
