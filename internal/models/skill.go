package models

// Skill is the vocabulary shared by all projects. Names are resolved
// case-insensitively and created on first use.
type Skill struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
