package models

import (
	"time"
)

// Theme defaults applied when a portfolio is provisioned.
const (
	DefaultPrimaryColor   = "#3B82F6"
	DefaultSecondaryColor = "#1F2937"
	DefaultFontFamily     = "Inter"
	DefaultLayout         = "modern"
)

type Portfolio struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	UserID    uint64 `gorm:"uniqueIndex;not null" json:"user_id"`
	PublicURL string `gorm:"type:varchar(100);uniqueIndex;not null" json:"public_url"`

	// Personal information
	Bio          string `gorm:"type:text" json:"bio"`
	Location     string `gorm:"type:varchar(100)" json:"location"`
	Phone        string `gorm:"type:varchar(20)" json:"phone"`
	Website      string `gorm:"type:varchar(200)" json:"website"`
	Linkedin     string `gorm:"type:varchar(200)" json:"linkedin"`
	Github       string `gorm:"type:varchar(200)" json:"github"`
	ProfileImage string `gorm:"type:varchar(200)" json:"profile_image"`

	// CV
	CVFilename   string     `gorm:"type:varchar(200)" json:"cv_filename"`
	CVURL        string     `gorm:"type:varchar(200)" json:"cv_url"`
	CVUploadedAt *time.Time `json:"cv_uploaded_at"`

	// Theme
	ThemePrimaryColor   string `gorm:"type:varchar(7);default:'#3B82F6'" json:"theme_primary_color"`
	ThemeSecondaryColor string `gorm:"type:varchar(7);default:'#1F2937'" json:"theme_secondary_color"`
	ThemeFontFamily     string `gorm:"type:varchar(50);default:'Inter'" json:"theme_font_family"`
	ThemeLayout         string `gorm:"type:varchar(20);default:'modern'" json:"theme_layout"`

	// Visibility and statistics
	IsPublic   bool       `gorm:"default:true" json:"is_public"`
	ViewsCount int64      `gorm:"default:0" json:"views_count"`
	LastViewed *time.Time `json:"last_viewed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User        User         `gorm:"foreignKey:UserID" json:"-"`
	Projects    []Project    `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"projects,omitempty"`
	Experiences []Experience `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"experiences,omitempty"`
	Education   []Education  `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"education,omitempty"`
	Skills      []Skill      `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
}
