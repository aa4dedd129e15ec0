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
	minBudget = 1_000_000
	maxBudget = 100_000_000_000
)

type ProjectService struct {
	projectRepo      repositories.ProjectRepository
	skillRepo        repositories.SkillRepository
	bidRepo          repositories.BidRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	skillRepo repositories.SkillRepository,
	bidRepo repositories.BidRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
) *ProjectService {
	return &ProjectService{
		projectRepo:      projectRepo,
		skillRepo:        skillRepo,
		bidRepo:          bidRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// dispatch persists a notification outside the request transaction. A failed
// insert is logged and swallowed; side effects never fail the operation.
func (s *ProjectService) dispatch(n *models.Notification) {
	go func() {
		if err := s.notificationRepo.Create(n); err != nil {
			logger.WithError(err).Warn("failed to persist notification", "type", n.Type, "email", n.Email)
		}
	}()
}

func (s *ProjectService) Create(clientID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, *appErrors.AppError) {
	if req.Budget < minBudget {
		return nil, appErrors.NewBadRequestError("Budget must be at least 1,000,000 VND")
	}
	if req.Budget > maxBudget {
		return nil, appErrors.NewBadRequestError("Budget must be at most 100,000,000,000 VND")
	}

	var deadline *time.Time
	if req.BidDeadline != nil && *req.BidDeadline != "" {
		parsed, err := time.Parse(time.RFC3339, *req.BidDeadline)
		if err != nil {
			return nil, appErrors.NewBadRequestError("bid_deadline must be an RFC 3339 timestamp")
		}
		if !parsed.After(time.Now()) {
			return nil, appErrors.NewBadRequestError("bid_deadline must be in the future")
		}
		deadline = &parsed
	}

	// The token alone is not enough; the account must still exist as a client.
	client, err := s.userRepo.FindByID(clientID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if client.Role != models.UserRoleClient {
		return nil, appErrors.ErrInsufficientPermissions
	}

	skills, err := s.skillRepo.ResolveByNames(req.Skills)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	project := &models.Project{
		ClientID:      clientID,
		Title:         req.Title,
		Description:   req.Description,
		Budget:        req.Budget,
		Category:      req.Category,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		WorkForm:      models.WorkForm(req.WorkForm),
		Status:        models.ProjectStatusPending,
		BidDeadline:   deadline,
		Skills:        skills,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, appErrors.InternalError(err)
	}

	s.dispatch(s.notificationRepo.ProjectSubmitted(client.Email, project))

	return dto.NewProjectResponse(project), nil
}

func (s *ProjectService) Get(id string) (*dto.ProjectResponse, *appErrors.AppError) {
	project, err := s.projectRepo.FindByIDWithBids(id)
	if err != nil {
		if err == repositories.ErrProjectNotFound {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return dto.NewProjectResponseWithBids(project), nil
}

func (s *ProjectService) List(req *dto.ListProjectsRequest) (*dto.ProjectListResponse, *appErrors.AppError) {
	criteria := repositories.ProjectListCriteria{
		Category:  req.Category,
		Search:    req.Search,
		MinBudget: req.MinBudget,
		MaxBudget: req.MaxBudget,
		Limit:     req.Limit,
		Offset:    req.Offset,
	}
	if req.Status != "" {
		criteria.Status = models.NormalizeProjectStatus(req.Status)
	}

	return s.list(criteria)
}

// ListByClientEmail lists a client's own projects, addressed by email the
// same way the frontend stores the session identity.
func (s *ProjectService) ListByClientEmail(email string, req *dto.ListProjectsRequest) (*dto.ProjectListResponse, *appErrors.AppError) {
	client, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	criteria := repositories.ProjectListCriteria{
		ClientID: client.ID,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	if req.Status != "" {
		criteria.Status = models.NormalizeProjectStatus(req.Status)
	}

	return s.list(criteria)
}

// ListPending returns the moderation queue.
func (s *ProjectService) ListPending(req *dto.ListProjectsRequest) (*dto.ProjectListResponse, *appErrors.AppError) {
	return s.list(repositories.ProjectListCriteria{
		Status: models.ProjectStatusPending,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
}

func (s *ProjectService) list(criteria repositories.ProjectListCriteria) (*dto.ProjectListResponse, *appErrors.AppError) {
	projects, total, err := s.projectRepo.List(criteria)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, *dto.NewProjectResponse(&projects[i]))
	}

	return &dto.ProjectListResponse{
		Projects: responses,
		Pagination: dto.Pagination{
			Total:  total,
			Limit:  criteria.Limit,
			Offset: criteria.Offset,
		},
	}, nil
}

// Approve moves a pending project to open. Only pending projects qualify;
// anything else is reported as a state conflict without touching the row.
func (s *ProjectService) Approve(projectID string) (*dto.ProjectResponse, *appErrors.AppError) {
	project, appErr := s.requireStatus(projectID, models.ProjectStatusPending)
	if appErr != nil {
		return nil, appErr
	}

	now := time.Now()
	err := s.projectRepo.TransitionStatus(projectID, models.ProjectStatusPending, models.ProjectStatusOpen,
		map[string]interface{}{"approved_at": &now})
	if err != nil {
		if err == repositories.ErrProjectNotFound {
			return nil, appErrors.ErrInvalidProjectStatus
		}
		return nil, appErrors.InternalError(err)
	}

	project.Status = models.ProjectStatusOpen
	project.ApprovedAt = &now

	if client, err := s.userRepo.FindByID(project.ClientID); err == nil {
		s.dispatch(s.notificationRepo.ProjectApproved(client.Email, project))
	}

	return dto.NewProjectResponse(project), nil
}

// Reject moves a pending project to cancelled, recording the reason and the
// moderator who made the call.
func (s *ProjectService) Reject(projectID, moderatorID string, req *dto.RejectProjectRequest) (*dto.ProjectResponse, *appErrors.AppError) {
	project, appErr := s.requireStatus(projectID, models.ProjectStatusPending)
	if appErr != nil {
		return nil, appErr
	}

	err := s.projectRepo.TransitionStatus(projectID, models.ProjectStatusPending, models.ProjectStatusCancelled,
		map[string]interface{}{"reject_reason": req.Reason, "rejected_by": moderatorID})
	if err != nil {
		if err == repositories.ErrProjectNotFound {
			return nil, appErrors.ErrInvalidProjectStatus
		}
		return nil, appErrors.InternalError(err)
	}

	project.Status = models.ProjectStatusCancelled
	project.RejectReason = &req.Reason
	project.RejectedBy = &moderatorID

	if client, err := s.userRepo.FindByID(project.ClientID); err == nil {
		s.dispatch(s.notificationRepo.ProjectRejected(client.Email, project, req.Reason))
	}

	return dto.NewProjectResponse(project), nil
}

// Complete closes an in-progress project. Only the owning client may call it,
// and only from in_progress; a repeated call is a conflict, not a no-op.
func (s *ProjectService) Complete(projectID, clientID string) (*dto.ProjectResponse, *appErrors.AppError) {
	project, appErr := s.requireStatus(projectID, models.ProjectStatusInProgress)
	if appErr != nil {
		return nil, appErr
	}
	if project.ClientID != clientID {
		return nil, appErrors.ErrInsufficientPermissions
	}

	err := s.projectRepo.TransitionStatus(projectID, models.ProjectStatusInProgress, models.ProjectStatusCompleted, nil)
	if err != nil {
		if err == repositories.ErrProjectNotFound {
			return nil, appErrors.ErrInvalidProjectStatus
		}
		return nil, appErrors.InternalError(err)
	}

	project.Status = models.ProjectStatusCompleted

	s.notifyAcceptedFreelancer(project)

	return dto.NewProjectResponse(project), nil
}

func (s *ProjectService) notifyAcceptedFreelancer(project *models.Project) {
	bids, err := s.bidRepo.ListByProject(project.ID)
	if err != nil {
		logger.WithError(err).Warn("failed to load bids for completion notice", "project_id", project.ID)
		return
	}
	for i := range bids {
		if models.NormalizeBidStatus(string(bids[i].Status)) != models.BidStatusAccepted {
			continue
		}
		if bids[i].Freelancer != nil {
			s.dispatch(s.notificationRepo.ProjectCompleted(bids[i].Freelancer.Email, project))
		}
		return
	}
}

// requireStatus loads the project and distinguishes a missing row from a row
// in the wrong state.
func (s *ProjectService) requireStatus(projectID string, want models.ProjectStatus) (*models.Project, *appErrors.AppError) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if err == repositories.ErrProjectNotFound {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if models.NormalizeProjectStatus(string(project.Status)) != want {
		return nil, appErrors.ErrInvalidProjectStatus
	}
	return project, nil
}
