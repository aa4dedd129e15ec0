package services

import (
	"time"

	"freelance_backend/internal/appErrors"
	"freelance_backend/internal/auth"
	"freelance_backend/internal/models"
	"freelance_backend/internal/repositories"
	"freelance_backend/internal/services/dto"
)

type ProfileService struct {
	userRepo repositories.UserRepository
}

func NewProfileService(userRepo repositories.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

func (s *ProfileService) Get(email string) (*dto.ProfileResponse, *appErrors.AppError) {
	user, err := s.userRepo.FindByEmailWithSkills(email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return dto.NewProfileResponse(user), nil
}

// Update saves the base profile fields and replaces the freelancer skill
// collections wholesale, then reissues the session token.
func (s *ProfileService) Update(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, *appErrors.AppError) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	user.FullName = req.FullName
	user.Phone = req.Phone
	user.Address = req.Address
	user.AvatarURL = req.AvatarURL

	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, parseErr := time.Parse("2006-01-02", *req.DateOfBirth)
		if parseErr != nil {
			return nil, appErrors.NewBadRequestError("date_of_birth must use the YYYY-MM-DD format")
		}
		user.DateOfBirth = &dob
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, appErrors.InternalError(err)
	}

	if user.Role == models.UserRoleFreelancer {
		languages, educations, experiences, appErr := buildCollections(req)
		if appErr != nil {
			return nil, appErr
		}
		if err := s.userRepo.ReplaceSkillCollections(userID, languages, educations, experiences); err != nil {
			return nil, appErrors.InternalError(err)
		}
	}

	fresh, err := s.userRepo.FindByEmailWithSkills(user.Email)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	token, err := auth.GenerateToken(fresh)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	resp := dto.NewProfileResponse(fresh)
	resp.Token = token
	return resp, nil
}

func buildCollections(req *dto.UpdateProfileRequest) ([]models.ForeignLanguage, []models.Education, []models.Experience, *appErrors.AppError) {
	languages := make([]models.ForeignLanguage, 0, len(req.Languages))
	for _, l := range req.Languages {
		languages = append(languages, models.ForeignLanguage{
			Language: l.Language,
			Level:    l.Level,
		})
	}

	educations := make([]models.Education, 0, len(req.Educations))
	for _, e := range req.Educations {
		educations = append(educations, models.Education{
			School:    e.School,
			Degree:    e.Degree,
			Major:     e.Major,
			StartYear: e.StartYear,
			EndYear:   e.EndYear,
		})
	}

	experiences := make([]models.Experience, 0, len(req.Experiences))
	for _, e := range req.Experiences {
		exp := models.Experience{
			Company:     e.Company,
			Position:    e.Position,
			Description: e.Description,
		}
		if e.StartDate != nil && *e.StartDate != "" {
			start, err := time.Parse("2006-01-02", *e.StartDate)
			if err != nil {
				return nil, nil, nil, appErrors.NewBadRequestError("start_date must use the YYYY-MM-DD format")
			}
			exp.StartDate = &start
		}
		if e.EndDate != nil && *e.EndDate != "" {
			end, err := time.Parse("2006-01-02", *e.EndDate)
			if err != nil {
				return nil, nil, nil, appErrors.NewBadRequestError("end_date must use the YYYY-MM-DD format")
			}
			exp.EndDate = &end
		}
		experiences = append(experiences, exp)
	}

	return languages, educations, experiences, nil
}
