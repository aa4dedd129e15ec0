package services

import (
	"time"

	"freelance_backend/internal/appErrors"
	"freelance_backend/internal/logger"
	"freelance_backend/internal/models"
	"freelance_backend/internal/repositories"
	"freelance_backend/internal/services/dto"
)

const (
	minBidPrice = 1_000_000
	maxBidPrice = 1_000_000_000
)

type BidService struct {
	bidRepo          repositories.BidRepository
	projectRepo      repositories.ProjectRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
}

func NewBidService(
	bidRepo repositories.BidRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
) *BidService {
	return &BidService{
		bidRepo:          bidRepo,
		projectRepo:      projectRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *BidService) dispatch(n *models.Notification) {
	go func() {
		if err := s.notificationRepo.Create(n); err != nil {
			logger.WithError(err).Warn("failed to persist notification", "type", n.Type, "email", n.Email)
		}
	}()
}

// Submit places a bid on an open project. Verified freelancers only, one
// active bid per freelancer per project, and the bid window must still be
// open. A rejected bid does not count against the limit.
func (s *BidService) Submit(freelancerID string, projectID string, req *dto.SubmitBidRequest) (*dto.BidResponse, *appErrors.AppError) {
	if req.Price < minBidPrice {
		return nil, appErrors.NewBadRequestError("Bid price must be at least 1,000,000 VND")
	}
	if req.Price > maxBidPrice {
		return nil, appErrors.NewBadRequestError("Bid price must be at most 1,000,000,000 VND")
	}

	freelancer, err := s.userRepo.FindByID(freelancerID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if freelancer.Role != models.UserRoleFreelancer {
		return nil, appErrors.ErrInsufficientPermissions
	}
	if !freelancer.IsVerified {
		return nil, appErrors.ErrUserNotVerified
	}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if err == repositories.ErrProjectNotFound {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if project.ClientID == freelancerID {
		return nil, appErrors.ErrInsufficientPermissions
	}
	if !project.AcceptsBids(time.Now()) {
		return nil, appErrors.ErrBiddingClosed
	}

	exists, err := s.bidRepo.HasActiveBid(projectID, freelancerID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if exists {
		return nil, appErrors.ErrDuplicateBid
	}

	bid := &models.Bid{
		ProjectID:    projectID,
		FreelancerID: freelancerID,
		Proposal:     req.Proposal,
		Price:        req.Price,
		Status:       models.BidStatusPending,
	}
	if err := s.bidRepo.Create(bid); err != nil {
		return nil, appErrors.InternalError(err)
	}

	if client, err := s.userRepo.FindByID(project.ClientID); err == nil {
		s.dispatch(s.notificationRepo.NewBid(client.Email, project, bid))
	}

	bid.Freelancer = freelancer
	return dto.NewBidResponse(bid), nil
}

// ListByProject returns a project's bids to its owner.
func (s *BidService) ListByProject(callerID, projectID string) ([]dto.BidResponse, *appErrors.AppError) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if err == repositories.ErrProjectNotFound {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if project.ClientID != callerID {
		return nil, appErrors.ErrInsufficientPermissions
	}

	bids, err := s.bidRepo.ListByProject(projectID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	responses := make([]dto.BidResponse, 0, len(bids))
	for i := range bids {
		responses = append(responses, *dto.NewBidResponse(&bids[i]))
	}
	return responses, nil
}

func (s *BidService) ListMine(freelancerID string) ([]dto.BidResponse, *appErrors.AppError) {
	bids, err := s.bidRepo.ListByFreelancer(freelancerID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	responses := make([]dto.BidResponse, 0, len(bids))
	for i := range bids {
		responses = append(responses, *dto.NewBidResponse(&bids[i]))
	}
	return responses, nil
}

// Hire accepts one bid and settles the rest of the project atomically: the
// chosen bid becomes accepted, every sibling pending bid becomes rejected and
// the project moves to in_progress.
func (s *BidService) Hire(clientID, projectID, bidID string) (*dto.BidResponse, *appErrors.AppError) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if err == repositories.ErrProjectNotFound {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if project.ClientID != clientID {
		return nil, appErrors.ErrInsufficientPermissions
	}
	if models.NormalizeProjectStatus(string(project.Status)) != models.ProjectStatusOpen {
		return nil, appErrors.ErrInvalidProjectStatus
	}

	bid, err := s.bidRepo.FindByID(bidID)
	if err != nil {
		if err == repositories.ErrBidNotFound {
			return nil, appErrors.ErrBidNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if bid.ProjectID != projectID {
		return nil, appErrors.ErrBidNotFound
	}

	// Snapshot the losing side before the cascade flips their status.
	siblings, err := s.bidRepo.ListByProject(projectID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	if err := s.bidRepo.Hire(projectID, bidID); err != nil {
		switch err {
		case repositories.ErrBidNotPending:
			return nil, appErrors.ErrInvalidBidStatus
		case repositories.ErrProjectNotFound:
			return nil, appErrors.ErrInvalidProjectStatus
		default:
			return nil, appErrors.InternalError(err)
		}
	}

	for i := range siblings {
		if siblings[i].Freelancer == nil {
			continue
		}
		if siblings[i].ID == bidID {
			s.dispatch(s.notificationRepo.BidAccepted(siblings[i].Freelancer.Email, project, &siblings[i]))
		} else if models.NormalizeBidStatus(string(siblings[i].Status)) == models.BidStatusPending {
			s.dispatch(s.notificationRepo.BidRejected(siblings[i].Freelancer.Email, project, &siblings[i]))
		}
	}

	bid.Status = models.BidStatusAccepted
	return dto.NewBidResponse(bid), nil
}

// Reject turns down a single pending bid without touching the project.
func (s *BidService) Reject(clientID, projectID, bidID string) (*dto.BidResponse, *appErrors.AppError) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if err == repositories.ErrProjectNotFound {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if project.ClientID != clientID {
		return nil, appErrors.ErrInsufficientPermissions
	}

	bid, err := s.bidRepo.FindByID(bidID)
	if err != nil {
		if err == repositories.ErrBidNotFound {
			return nil, appErrors.ErrBidNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if bid.ProjectID != projectID {
		return nil, appErrors.ErrBidNotFound
	}

	if err := s.bidRepo.Reject(bidID); err != nil {
		if err == repositories.ErrBidNotPending {
			return nil, appErrors.ErrInvalidBidStatus
		}
		return nil, appErrors.InternalError(err)
	}

	if bid.Freelancer != nil {
		s.dispatch(s.notificationRepo.BidRejected(bid.Freelancer.Email, project, bid))
	}

	bid.Status = models.BidStatusRejected
	return dto.NewBidResponse(bid), nil
}
