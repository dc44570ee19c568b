package models

import (
	"time"
)

type Project struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	PortfolioID uint64 `gorm:"not null;index" json:"portfolio_id"`
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	// Technologies and Images hold JSON-encoded lists; legacy rows may
	// contain a bare comma-separated string instead (see DecodeStringList).
	Technologies string `gorm:"type:text" json:"-"`
	Images       string `gorm:"type:text" json:"-"`
	GithubURL    string `gorm:"type:varchar(200)" json:"github_url"`
	DemoURL      string `gorm:"type:varchar(200)" json:"demo_url"`
	Featured     bool   `gorm:"default:false" json:"featured"`
	OrderIndex   int    `gorm:"default:0" json:"order_index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TechnologiesList decodes the technologies column, tolerating legacy
// comma-separated values.
func (p Project) TechnologiesList() []string {
	return DecodeStringList(p.Technologies, true).Values
}

// SetTechnologiesList stores the given technologies as JSON.
func (p *Project) SetTechnologiesList(values []string) {
	p.Technologies = EncodeStringList(values)
}

// ImagesList decodes the images column. Unparseable data yields an empty
// list, not an error.
func (p Project) ImagesList() []string {
	return DecodeStringList(p.Images, false).Values
}

// SetImagesList stores the given image references as JSON.
func (p *Project) SetImagesList(values []string) {
	p.Images = EncodeStringList(values)
}
