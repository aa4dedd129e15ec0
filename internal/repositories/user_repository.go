package repositories

import (
	"errors"
	"strings"
	"time"

	"freelance_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByEmailWithSkills(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateVerifyCode(userID, code string, exp *time.Time) error

	// ReplaceSkillCollections swaps the nested freelancer records wholesale
	// inside one transaction. There is no incremental diffing.
	ReplaceSkillCollections(userID string, languages []models.ForeignLanguage, educations []models.Education, experiences []models.Experience) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUserAlreadyExists
	}

	err := r.db.Create(user).Error
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "unique") {
		return ErrUserAlreadyExists
	}
	return err
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmailWithSkills(email string) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("Languages").
		Preload("Educations").
		Preload("Experiences").
		First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateVerifyCode(userID, code string, exp *time.Time) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"verify_code":     code,
		"verify_code_exp": exp,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) ReplaceSkillCollections(
	userID string,
	languages []models.ForeignLanguage,
	educations []models.Education,
	experiences []models.Experience,
) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.ForeignLanguage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Education{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Experience{}).Error; err != nil {
			return err
		}

		for i := range languages {
			languages[i].UserID = userID
		}
		for i := range educations {
			educations[i].UserID = userID
		}
		for i := range experiences {
			experiences[i].UserID = userID
		}

		if len(languages) > 0 {
			if err := tx.Create(&languages).Error; err != nil {
				return err
			}
		}
		if len(educations) > 0 {
			if err := tx.Create(&educations).Error; err != nil {
				return err
			}
		}
		if len(experiences) > 0 {
			if err := tx.Create(&experiences).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
