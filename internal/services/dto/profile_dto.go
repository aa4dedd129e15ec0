package dto

import (
	"time"

	"freelance_backend/internal/models"
)

type UpdateProfileRequest struct {
	FullName    string  `json:"full_name" validate:"required,min=2"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	AvatarURL   string  `json:"avatar_url"`

	// Freelancer collections, replaced wholesale on every save.
	Languages   []LanguageInput   `json:"languages"`
	Educations  []EducationInput  `json:"educations"`
	Experiences []ExperienceInput `json:"experiences"`
}

type LanguageInput struct {
	Language string `json:"language" validate:"required"`
	Level    string `json:"level"`
}

type EducationInput struct {
	School    string `json:"school" validate:"required"`
	Degree    string `json:"degree"`
	Major     string `json:"major"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
}

type ExperienceInput struct {
	Company     string  `json:"company" validate:"required"`
	Position    string  `json:"position"`
	Description string  `json:"description"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

type ProfileResponse struct {
	UserResponse
	DateOfBirth *time.Time               `json:"date_of_birth,omitempty"`
	Languages   []models.ForeignLanguage `json:"languages"`
	Educations  []models.Education       `json:"educations"`
	Experiences []models.Experience      `json:"experiences"`

	// Token is reissued after a profile save so the client keeps claims in
	// sync with the stored account.
	Token string `json:"token,omitempty"`
}

func NewProfileResponse(user *models.User) *ProfileResponse {
	return &ProfileResponse{
		UserResponse: *NewUserResponse(user),
		DateOfBirth:  user.DateOfBirth,
		Languages:    user.Languages,
		Educations:   user.Educations,
		Experiences:  user.Experiences,
	}
}
