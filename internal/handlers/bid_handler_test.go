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

func validBidRequest() dto.SubmitBidRequest {
	return dto.SubmitBidRequest{
		Proposal: "I have shipped three storefronts like this one before.",
		Price:    2_000_000,
	}
}

func TestSubmitBidOnOpenProject(t *testing.T) {
	db, router := setupTestEnv(t)
	client, _ := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	_, token := createUser(t, db, "freelancer@example.com", models.UserRoleFreelancer, true)
	project := createProject(t, db, client.ID, models.ProjectStatusOpen)

	w := doRequest(t, router, http.MethodPost, "/api/projects/"+project.ID+"/bid", token, validBidRequest())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BidResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, models.BidStatusPending, resp.Status)
	assert.Equal(t, project.ID, resp.ProjectID)
}

func TestSubmitBidUnverifiedFreelancerForbidden(t *testing.T) {
	db, router := setupTestEnv(t)
	client, _ := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	_, token := createUser(t, db, "unverified@example.com", models.UserRoleFreelancer, false)
	project := createProject(t, db, client.ID, models.ProjectStatusOpen)

	w := doRequest(t, router, http.MethodPost, "/api/projects/"+project.ID+"/bid", token, validBidRequest())
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Bid{}).Where("project_id = ?", project.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitBidDuplicateConflicts(t *testing.T) {
	db, router := setupTestEnv(t)
	client, _ := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	freelancer, token := createUser(t, db, "freelancer@example.com", models.UserRoleFreelancer, true)
	project := createProject(t, db, client.ID, models.ProjectStatusOpen)
	createBid(t, db, project.ID, freelancer.ID, models.BidStatusPending)

	w := doRequest(t, router, http.MethodPost, "/api/projects/"+project.ID+"/bid", token, validBidRequest())
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmitBidAgainAfterRejection(t *testing.T) {
	db, router := setupTestEnv(t)
	client, _ := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	freelancer, token := createUser(t, db, "freelancer@example.com", models.UserRoleFreelancer, true)
	project := createProject(t, db, client.ID, models.ProjectStatusOpen)
	createBid(t, db, project.ID, freelancer.ID, models.BidStatusRejected)

	w := doRequest(t, router, http.MethodPost, "/api/projects/"+project.ID+"/bid", token, validBidRequest())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BidResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, models.BidStatusPending, resp.Status)

	var count int64
	require.NoError(t, db.Model(&models.Bid{}).
		Where("project_id = ? AND freelancer_id = ?", project.ID, freelancer.ID).
		Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestSubmitBidOnPendingProjectRejected(t *testing.T) {
	db, router := setupTestEnv(t)
	client, _ := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	_, token := createUser(t, db, "freelancer@example.com", models.UserRoleFreelancer, true)
	project := createProject(t, db, client.ID, models.ProjectStatusPending)

	w := doRequest(t, router, http.MethodPost, "/api/projects/"+project.ID+"/bid", token, validBidRequest())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitBidAfterDeadlineRejected(t *testing.T) {
	db, router := setupTestEnv(t)
	client, _ := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	_, token := createUser(t, db, "freelancer@example.com", models.UserRoleFreelancer, true)
	project := createProject(t, db, client.ID, models.ProjectStatusOpen)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(project).Update("bid_deadline", &past).Error)

	w := doRequest(t, router, http.MethodPost, "/api/projects/"+project.ID+"/bid", token, validBidRequest())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var stored models.Project
	require.NoError(t, db.First(&stored, "id = ?", project.ID).Error)
	assert.Equal(t, models.ProjectStatusOpen, models.NormalizeProjectStatus(string(stored.Status)))
}

func TestSubmitBidPriceTooLow(t *testing.T) {
	db, router := setupTestEnv(t)
	client, _ := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	_, token := createUser(t, db, "freelancer@example.com", models.UserRoleFreelancer, true)
	project := createProject(t, db, client.ID, models.ProjectStatusOpen)

	req := validBidRequest()
	req.Price = 100

	w := doRequest(t, router, http.MethodPost, "/api/projects/"+project.ID+"/bid", token, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHireAcceptsOneBidAndRejectsSiblings(t *testing.T) {
	db, router := setupTestEnv(t)
	client, clientToken := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	winner, _ := createUser(t, db, "winner@example.com", models.UserRoleFreelancer, true)
	loser, _ := createUser(t, db, "loser@example.com", models.UserRoleFreelancer, true)
	project := createProject(t, db, client.ID, models.ProjectStatusOpen)
	winning := createBid(t, db, project.ID, winner.ID, models.BidStatusPending)
	losing := createBid(t, db, project.ID, loser.ID, models.BidStatusPending)

	w := doRequest(t, router, http.MethodPatch, "/api/projects/"+project.ID+"/hire", clientToken, dto.HireBidRequest{BidID: winning.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var storedWinner, storedLoser models.Bid
	require.NoError(t, db.First(&storedWinner, "id = ?", winning.ID).Error)
	require.NoError(t, db.First(&storedLoser, "id = ?", losing.ID).Error)
	assert.Equal(t, models.BidStatusAccepted, storedWinner.Status)
	assert.Equal(t, models.BidStatusRejected, storedLoser.Status)

	var storedProject models.Project
	require.NoError(t, db.First(&storedProject, "id = ?", project.ID).Error)
	assert.Equal(t, models.ProjectStatusInProgress, models.NormalizeProjectStatus(string(storedProject.Status)))

	var accepted int64
	require.NoError(t, db.Model(&models.Bid{}).
		Where("project_id = ? AND status = ?", project.ID, models.BidStatusAccepted).
		Count(&accepted).Error)
	assert.Equal(t, int64(1), accepted)
}

func TestHireOnNonOpenProjectConflicts(t *testing.T) {
	db, router := setupTestEnv(t)
	client, clientToken := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	freelancer, _ := createUser(t, db, "freelancer@example.com", models.UserRoleFreelancer, true)
	project := createProject(t, db, client.ID, models.ProjectStatusInProgress)
	bid := createBid(t, db, project.ID, freelancer.ID, models.BidStatusPending)

	w := doRequest(t, router, http.MethodPatch, "/api/projects/"+project.ID+"/hire", clientToken, dto.HireBidRequest{BidID: bid.ID})
	assert.Equal(t, http.StatusConflict, w.Code)

	var stored models.Bid
	require.NoError(t, db.First(&stored, "id = ?", bid.ID).Error)
	assert.Equal(t, models.BidStatusPending, stored.Status)
}

func TestHireForeignProjectForbidden(t *testing.T) {
	db, router := setupTestEnv(t)
	owner, _ := createUser(t, db, "owner@example.com", models.UserRoleClient, true)
	_, otherToken := createUser(t, db, "other@example.com", models.UserRoleClient, true)
	freelancer, _ := createUser(t, db, "freelancer@example.com", models.UserRoleFreelancer, true)
	project := createProject(t, db, owner.ID, models.ProjectStatusOpen)
	bid := createBid(t, db, project.ID, freelancer.ID, models.BidStatusPending)

	w := doRequest(t, router, http.MethodPatch, "/api/projects/"+project.ID+"/hire", otherToken, dto.HireBidRequest{BidID: bid.ID})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRejectSingleBidLeavesProjectOpen(t *testing.T) {
	db, router := setupTestEnv(t)
	client, clientToken := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	freelancer, _ := createUser(t, db, "freelancer@example.com", models.UserRoleFreelancer, true)
	project := createProject(t, db, client.ID, models.ProjectStatusOpen)
	bid := createBid(t, db, project.ID, freelancer.ID, models.BidStatusPending)

	w := doRequest(t, router, http.MethodPatch, "/api/projects/"+project.ID+"/bids/"+bid.ID, clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var storedBid models.Bid
	require.NoError(t, db.First(&storedBid, "id = ?", bid.ID).Error)
	assert.Equal(t, models.BidStatusRejected, storedBid.Status)

	var storedProject models.Project
	require.NoError(t, db.First(&storedProject, "id = ?", project.ID).Error)
	assert.Equal(t, models.ProjectStatusOpen, models.NormalizeProjectStatus(string(storedProject.Status)))
}

func TestRejectAlreadySettledBidConflicts(t *testing.T) {
	db, router := setupTestEnv(t)
	client, clientToken := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	freelancer, _ := createUser(t, db, "freelancer@example.com", models.UserRoleFreelancer, true)
	project := createProject(t, db, client.ID, models.ProjectStatusOpen)
	bid := createBid(t, db, project.ID, freelancer.ID, models.BidStatusRejected)

	w := doRequest(t, router, http.MethodPatch, "/api/projects/"+project.ID+"/bids/"+bid.ID, clientToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListProjectBidsOwnerOnly(t *testing.T) {
	db, router := setupTestEnv(t)
	client, clientToken := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	freelancer, freelancerToken := createUser(t, db, "freelancer@example.com", models.UserRoleFreelancer, true)
	project := createProject(t, db, client.ID, models.ProjectStatusOpen)
	createBid(t, db, project.ID, freelancer.ID, models.BidStatusPending)

	owner := doRequest(t, router, http.MethodGet, "/api/projects/"+project.ID+"/bids", clientToken, nil)
	require.Equal(t, http.StatusOK, owner.Code)

	var resp struct {
		Bids []dto.BidResponse `json:"bids"`
	}
	decodeBody(t, owner, &resp)
	require.Len(t, resp.Bids, 1)

	stranger := doRequest(t, router, http.MethodGet, "/api/projects/"+project.ID+"/bids", freelancerToken, nil)
	assert.Equal(t, http.StatusForbidden, stranger.Code)
}

func TestListMyBids(t *testing.T) {
	db, router := setupTestEnv(t)
	client, _ := createUser(t, db, "client@example.com", models.UserRoleClient, true)
	freelancer, token := createUser(t, db, "freelancer@example.com", models.UserRoleFreelancer, true)
	other, _ := createUser(t, db, "other@example.com", models.UserRoleFreelancer, true)
	project := createProject(t, db, client.ID, models.ProjectStatusOpen)
	createBid(t, db, project.ID, freelancer.ID, models.BidStatusPending)
	createBid(t, db, project.ID, other.ID, models.BidStatusPending)

	w := doRequest(t, router, http.MethodGet, "/api/bids/my", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Bids []dto.BidResponse `json:"bids"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Bids, 1)
	assert.Equal(t, freelancer.ID, resp.Bids[0].FreelancerID)
}
