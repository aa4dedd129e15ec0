package models

import "time"

type User struct {
	BaseModel
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string     `gorm:"not null" json:"-"`
	Role          UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	IsVerified    bool       `gorm:"default:false" json:"is_verified"`
	VerifyCode    string     `json:"-"`
	VerifyCodeExp *time.Time `json:"-"`

	FullName    string     `json:"full_name"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	AvatarURL   string     `json:"avatar_url"`

	// Nested skill records, freelancer accounts only. Replaced wholesale on
	// every profile save.
	Languages   []ForeignLanguage `gorm:"foreignKey:UserID" json:"languages,omitempty"`
	Educations  []Education       `gorm:"foreignKey:UserID" json:"educations,omitempty"`
	Experiences []Experience      `gorm:"foreignKey:UserID" json:"experiences,omitempty"`
}

type ForeignLanguage struct {
	BaseModel
	UserID   string `gorm:"not null;index" json:"user_id"`
	Language string `gorm:"not null" json:"language"`
	Level    string `json:"level"`
}

type Education struct {
	BaseModel
	UserID    string `gorm:"not null;index" json:"user_id"`
	School    string `gorm:"not null" json:"school"`
	Degree    string `json:"degree"`
	Major     string `json:"major"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
}

type Experience struct {
	BaseModel
	UserID      string     `gorm:"not null;index" json:"user_id"`
	Company     string     `gorm:"not null" json:"company"`
	Position    string     `json:"position"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}
