package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"freelance_backend/internal/appErrors"
	"freelance_backend/internal/models"
	"freelance_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateProjectRequest() dto.CreateProjectRequest {
	return dto.CreateProjectRequest{
		Title:         "Build a storefront",
		Description:   "A complete storefront with product listings and checkout flow.",
		Budget:        5_000_000,
		Category:      "web",
		PaymentMethod: "fixed",
		WorkForm:      "remote",
		Skills:        []string{"Go", "React"},
	}
}

func TestCreateProjectStartsPending(t *testing.T) {
	db, router := setupTestEnv(t)
	_, token := createUser(t, db, "client@example.com", models.UserRoleClient, true)

	w := doRequest(t, router, http.MethodPost, "/api/projects", token, validCreateProjectRequest())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ProjectResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, models.ProjectStatusPending, resp.Status)
	assert.ElementsMatch(t, []string{"Go", "React"}, resp.Skills)

	var stored models.Project
	require.NoError(t, db.First(&stored, "id = ?", resp.ID).Error)
	assert.Equal(t, models.ProjectStatusPending, models.NormalizeProjectStatus(string(stored.Status)))
}

func TestCreateProjectBudgetTooLow(t *testing.T) {
	db, router := setupTestEnv(t)
	_, token := createUser(t, db, "client@example.com", models.UserRoleClient, true)

	req := validCreateProjectRequest()
	req.Budget = 500_000

	w := doRequest(t, router, http.MethodPost, "/api/projects", token, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp appErrors.ErrorResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Budget must be at least 1,000,000 VND", resp.Error.Message)
}

func TestCreateProjectBudgetTooHigh(t *testing.T) {
	db, router := setupTestEnv(t)
	_, token := createUser(t, db, "client@example.com", models.UserRoleClient, true)

	req := validCreateProjectRequest()
	req.Budget = 200_000_000_000

	w := doRequest(t, router, http.MethodPost, "/api/projects", token, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProjectShortDescription(t *testing.T) {
	db, router := setupTestEnv(t)
	_, token := createUser(t, db, "client@example.com", models.UserRoleClient, true)

	req := validCreateProjectRequest()
	req.Description = "too short"

	w := doRequest(t, router, http.MethodPost, "/api/projects", token, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProjectDeletedAccountNotFound(t *testing.T) {
	db, router := setupTestEnv(t)
	user, token := createUser(t, db, "gone@example.com", models.UserRoleClient, true)
	require.NoError(t, db.Delete(&models.User{}, "id = ?", user.ID).Error)

	w := doRequest(t, router, http.MethodPost, "/api/projects", token, validCreateProjectRequest())
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Project{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateProjectRequiresClientRole(t *testing.T) {
	db, router := setupTestEnv(t)
	_, token := createUser(t, db, "freelancer@example.com", models.UserRoleFreelancer, true)

	w := doRequest(t, router, http.MethodPost, "/api/projects", token, validCreateProjectRequest())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestApprovePendingProject(t *testing.T) {
	db, router := setupTestEnv(t)
	client, _ := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	_, modToken := createUser(t, db, "mod@example.com", models.UserRoleModerator, true)
	project := createProject(t, db, client.ID, models.ProjectStatusPending)

	w := doRequest(t, router, http.MethodPatch, "/api/projects/"+project.ID+"/approve", modToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProjectResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, models.ProjectStatusOpen, resp.Status)
	assert.NotNil(t, resp.ApprovedAt)
	require.NotNil(t, resp.BidDeadline)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), *resp.BidDeadline, time.Minute)
}

func TestApproveNonPendingProjectConflicts(t *testing.T) {
	db, router := setupTestEnv(t)
	client, _ := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	_, modToken := createUser(t, db, "mod@example.com", models.UserRoleModerator, true)
	project := createProject(t, db, client.ID, models.ProjectStatusOpen)

	w := doRequest(t, router, http.MethodPatch, "/api/projects/"+project.ID+"/approve", modToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	var stored models.Project
	require.NoError(t, db.First(&stored, "id = ?", project.ID).Error)
	assert.Equal(t, models.ProjectStatusOpen, models.NormalizeProjectStatus(string(stored.Status)))
}

func TestApproveRequiresModeratorRole(t *testing.T) {
	db, router := setupTestEnv(t)
	client, clientToken := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	project := createProject(t, db, client.ID, models.ProjectStatusPending)

	w := doRequest(t, router, http.MethodPatch, "/api/projects/"+project.ID+"/approve", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRejectPendingProjectRecordsReason(t *testing.T) {
	db, router := setupTestEnv(t)
	client, _ := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	moderator, modToken := createUser(t, db, "mod@example.com", models.UserRoleModerator, true)
	project := createProject(t, db, client.ID, models.ProjectStatusPending)

	w := doRequest(t, router, http.MethodPatch, "/api/projects/"+project.ID+"/reject", modToken,
		dto.RejectProjectRequest{Reason: "Description is misleading"})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Project
	require.NoError(t, db.First(&stored, "id = ?", project.ID).Error)
	assert.Equal(t, models.ProjectStatusCancelled, models.NormalizeProjectStatus(string(stored.Status)))
	require.NotNil(t, stored.RejectReason)
	assert.Equal(t, "Description is misleading", *stored.RejectReason)
	require.NotNil(t, stored.RejectedBy)
	assert.Equal(t, moderator.ID, *stored.RejectedBy)
}

func TestCompleteInProgressProject(t *testing.T) {
	db, router := setupTestEnv(t)
	client, clientToken := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	project := createProject(t, db, client.ID, models.ProjectStatusInProgress)

	w := doRequest(t, router, http.MethodPatch, "/api/projects/"+project.ID+"/complete", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Project
	require.NoError(t, db.First(&stored, "id = ?", project.ID).Error)
	assert.Equal(t, models.ProjectStatusCompleted, models.NormalizeProjectStatus(string(stored.Status)))
}

func TestCompleteTwiceConflictsAndLeavesRowAlone(t *testing.T) {
	db, router := setupTestEnv(t)
	client, clientToken := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	project := createProject(t, db, client.ID, models.ProjectStatusInProgress)

	first := doRequest(t, router, http.MethodPatch, "/api/projects/"+project.ID+"/complete", clientToken, nil)
	require.Equal(t, http.StatusOK, first.Code)

	second := doRequest(t, router, http.MethodPatch, "/api/projects/"+project.ID+"/complete", clientToken, nil)
	assert.Equal(t, http.StatusConflict, second.Code)

	var stored models.Project
	require.NoError(t, db.First(&stored, "id = ?", project.ID).Error)
	assert.Equal(t, models.ProjectStatusCompleted, models.NormalizeProjectStatus(string(stored.Status)))
}

func TestCompleteOpenProjectConflicts(t *testing.T) {
	db, router := setupTestEnv(t)
	client, clientToken := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	project := createProject(t, db, client.ID, models.ProjectStatusOpen)

	w := doRequest(t, router, http.MethodPatch, "/api/projects/"+project.ID+"/complete", clientToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCompleteForeignProjectForbidden(t *testing.T) {
	db, router := setupTestEnv(t)
	owner, _ := createUser(t, db, "owner@example.com", models.UserRoleClient, true)
	_, otherToken := createUser(t, db, "other@example.com", models.UserRoleClient, true)
	project := createProject(t, db, owner.ID, models.ProjectStatusInProgress)

	w := doRequest(t, router, http.MethodPatch, "/api/projects/"+project.ID+"/complete", otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListProjectsFiltersByStatus(t *testing.T) {
	db, router := setupTestEnv(t)
	client, _ := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	createProject(t, db, client.ID, models.ProjectStatusOpen)
	createProject(t, db, client.ID, models.ProjectStatusPending)

	w := doRequest(t, router, http.MethodGet, "/api/projects?status=open", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProjectListResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, models.ProjectStatusOpen, resp.Projects[0].Status)
	assert.Equal(t, int64(1), resp.Pagination.Total)
}

func TestListProjectsByClientEmail(t *testing.T) {
	db, router := setupTestEnv(t)
	client, token := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	other, _ := createUser(t, db, "other@example.com", models.UserRoleClient, true)
	createProject(t, db, client.ID, models.ProjectStatusOpen)
	createProject(t, db, other.ID, models.ProjectStatusOpen)

	w := doRequest(t, router, http.MethodGet, "/api/projects/client/client@example.com", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProjectListResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, client.ID, resp.Projects[0].ClientID)
}

func TestGetProjectNotFound(t *testing.T) {
	_, router := setupTestEnv(t)

	w := doRequest(t, router, http.MethodGet, "/api/projects/no-such-id", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPendingQueueVisibleToModeratorOnly(t *testing.T) {
	db, router := setupTestEnv(t)
	client, clientToken := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	_, modToken := createUser(t, db, "mod@example.com", models.UserRoleModerator, true)
	createProject(t, db, client.ID, models.ProjectStatusPending)

	forbidden := doRequest(t, router, http.MethodGet, "/api/projects/pending", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, forbidden.Code)

	ok := doRequest(t, router, http.MethodGet, "/api/projects/pending", modToken, nil)
	require.Equal(t, http.StatusOK, ok.Code)

	var resp dto.ProjectListResponse
	decodeBody(t, ok, &resp)
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, models.ProjectStatusPending, resp.Projects[0].Status)
}
