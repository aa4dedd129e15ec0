package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"freelance_backend/internal/appErrors"
	"freelance_backend/internal/auth"
	"freelance_backend/internal/email"
	"freelance_backend/internal/logger"
	"freelance_backend/internal/models"
	"freelance_backend/internal/repositories"
	"freelance_backend/internal/services/dto"
)

const verifyCodeTTL = 10 * time.Minute

type AuthService struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

func (s *AuthService) SignUp(req *dto.SignUpRequest) (*dto.AuthResponse, *appErrors.AppError) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.ErrWeakPassword
	}

	role := models.UserRole(req.Role)
	if role != models.UserRoleClient && role != models.UserRoleFreelancer {
		return nil, appErrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		FullName:     req.FullName,
	}

	if err := s.userRepo.Create(user); err != nil {
		if err == repositories.ErrUserAlreadyExists {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	if appErr := s.issueVerifyCode(user); appErr != nil {
		return nil, appErr
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func (s *AuthService) SignIn(req *dto.SignInRequest) (*dto.AuthResponse, *appErrors.AppError) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func (s *AuthService) SendVerificationCode(req *dto.SendCodeRequest) *appErrors.AppError {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}

	if user.IsVerified {
		return appErrors.NewBadRequestError("Account is already verified")
	}

	return s.issueVerifyCode(user)
}

func (s *AuthService) ConfirmVerificationCode(req *dto.ConfirmCodeRequest) (*dto.AuthResponse, *appErrors.AppError) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if user.VerifyCode == "" || user.VerifyCode != req.Code {
		return nil, appErrors.ErrInvalidVerifyCode
	}
	if user.VerifyCodeExp == nil || time.Now().After(*user.VerifyCodeExp) {
		return nil, appErrors.ErrInvalidVerifyCode
	}

	user.IsVerified = true
	user.VerifyCode = ""
	user.VerifyCodeExp = nil
	if err := s.userRepo.Update(user); err != nil {
		return nil, appErrors.InternalError(err)
	}

	// Reissue so the verified flag lands in the claims immediately.
	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func (s *AuthService) issueVerifyCode(user *models.User) *appErrors.AppError {
	code, err := generateVerifyCode()
	if err != nil {
		return appErrors.InternalError(err)
	}

	exp := time.Now().Add(verifyCodeTTL)
	user.VerifyCode = code
	user.VerifyCodeExp = &exp
	if err := s.userRepo.UpdateVerifyCode(user.ID, code, &exp); err != nil {
		return appErrors.InternalError(err)
	}

	// Delivery is best effort; a down SMTP server never blocks signup.
	go func(to, code string) {
		if err := s.emailProvider.SendVerificationCode(to, code); err != nil {
			logger.WithError(err).Warn("failed to send verification code", "email", to)
		}
	}(user.Email, code)

	return nil
}

func generateVerifyCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
