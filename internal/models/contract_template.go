package models

// ContractTemplate is static reference data seeded at migration time; the
// lifecycle never mutates it.
type ContractTemplate struct {
	BaseModel
	FilePath string `gorm:"not null" json:"file_path"`
	Style    string `gorm:"not null" json:"style"`
}
