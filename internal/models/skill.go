package models

import (
	"time"
)

// Skill levels are enumerated display labels, not numeric scores.
const (
	SkillLevelBeginner     = "Débutant"
	SkillLevelIntermediate = "Intermédiaire"
	SkillLevelAdvanced     = "Avancé"
	SkillLevelExpert       = "Expert"
)

const (
	SkillCategoryTechnical  = "Technique"
	SkillCategoryLanguage   = "Langue"
	SkillCategorySoftSkills = "Soft Skills"
	SkillCategoryOther      = "Autre"
)

// SkillLevels lists the accepted level labels.
var SkillLevels = []string{
	SkillLevelBeginner,
	SkillLevelIntermediate,
	SkillLevelAdvanced,
	SkillLevelExpert,
}

// SkillCategories lists the accepted category labels.
var SkillCategories = []string{
	SkillCategoryTechnical,
	SkillCategoryLanguage,
	SkillCategorySoftSkills,
	SkillCategoryOther,
}

type Skill struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	PortfolioID uint64 `gorm:"not null;index" json:"portfolio_id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Level       string `gorm:"type:varchar(20);default:'Intermédiaire'" json:"level"`
	Category    string `gorm:"type:varchar(30);default:'Technique'" json:"category"`
	OrderIndex  int    `gorm:"default:0" json:"order_index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
