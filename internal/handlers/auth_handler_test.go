package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"freelance_backend/internal/models"
	"freelance_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpCreatesUserAndReturnsToken(t *testing.T) {
	db, router := setupTestEnv(t)

	w := doRequest(t, router, http.MethodPost, "/api/signup", "", dto.SignUpRequest{
		Email:    "client@example.com",
		Password: "password123",
		Role:     "client",
		FullName: "Ngoc Anh",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "client@example.com", resp.User.Email)
	assert.False(t, resp.User.IsVerified)

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "client@example.com").Error)
	assert.Equal(t, models.UserRoleClient, user.Role)
	assert.NotEmpty(t, user.VerifyCode)
}

func TestSignUpDuplicateEmailConflicts(t *testing.T) {
	db, router := setupTestEnv(t)
	createUser(t, db, "taken@example.com", models.UserRoleClient, true)

	w := doRequest(t, router, http.MethodPost, "/api/signup", "", dto.SignUpRequest{
		Email:    "taken@example.com",
		Password: "password123",
		Role:     "client",
		FullName: "Someone Else",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignUpRejectsModeratorRole(t *testing.T) {
	_, router := setupTestEnv(t)

	w := doRequest(t, router, http.MethodPost, "/api/signup", "", dto.SignUpRequest{
		Email:    "mod@example.com",
		Password: "password123",
		Role:     "moderator",
		FullName: "Wannabe Mod",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignInWrongPasswordUnauthorized(t *testing.T) {
	db, router := setupTestEnv(t)
	createUser(t, db, "user@example.com", models.UserRoleFreelancer, true)

	w := doRequest(t, router, http.MethodPost, "/api/signin", "", dto.SignInRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignInReturnsToken(t *testing.T) {
	db, router := setupTestEnv(t)
	createUser(t, db, "user@example.com", models.UserRoleFreelancer, true)

	w := doRequest(t, router, http.MethodPost, "/api/signin", "", dto.SignInRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
}

func TestConfirmVerificationCode(t *testing.T) {
	db, router := setupTestEnv(t)
	user, _ := createUser(t, db, "verify@example.com", models.UserRoleFreelancer, false)

	exp := time.Now().Add(10 * time.Minute)
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"verify_code":     "123456",
		"verify_code_exp": &exp,
	}).Error)

	w := doRequest(t, router, http.MethodPost, "/api/confirm-verification-code", "", dto.ConfirmCodeRequest{
		Email: "verify@example.com",
		Code:  "123456",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	decodeBody(t, w, &resp)
	assert.True(t, resp.User.IsVerified)
	assert.NotEmpty(t, resp.Token)

	var fresh models.User
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.True(t, fresh.IsVerified)
	assert.Empty(t, fresh.VerifyCode)
}

func TestConfirmVerificationCodeExpired(t *testing.T) {
	db, router := setupTestEnv(t)
	user, _ := createUser(t, db, "late@example.com", models.UserRoleFreelancer, false)

	exp := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"verify_code":     "123456",
		"verify_code_exp": &exp,
	}).Error)

	w := doRequest(t, router, http.MethodPost, "/api/confirm-verification-code", "", dto.ConfirmCodeRequest{
		Email: "late@example.com",
		Code:  "123456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var fresh models.User
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.False(t, fresh.IsVerified)
}
