package model

// Testimonial is static display content for the landing page
type Testimonial struct {
	ID     uint   `gorm:"primaryKey;autoIncrement;index" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	Role   string `gorm:"not null" json:"role"`
	Quote  string `gorm:"not null" json:"quote"`
	Rating int    `gorm:"not null" json:"rating"`
	Image  string `json:"image"`
}
