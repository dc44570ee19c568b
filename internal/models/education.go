package models

import (
	"time"
)

type Education struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	PortfolioID uint64     `gorm:"not null;index" json:"portfolio_id"`
	Degree      string     `gorm:"type:varchar(200);not null" json:"degree"`
	Institution string     `gorm:"type:varchar(200);not null" json:"institution"`
	Location    string     `gorm:"type:varchar(100)" json:"location"`
	StartDate   time.Time  `gorm:"not null" json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Current     bool       `gorm:"default:false" json:"current"`
	Description string     `gorm:"type:text" json:"description"`
	OrderIndex  int        `gorm:"default:0" json:"order_index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the singular-collective table name used by the schema.
func (Education) TableName() string {
	return "education"
}
