package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"freelance_backend/internal/app"
	"freelance_backend/internal/auth"
	"freelance_backend/internal/config"
	"freelance_backend/internal/database"
	"freelance_backend/internal/email"
	"freelance_backend/internal/logger"
	"freelance_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// fakeEmailProvider records outbound mail instead of dialing SMTP.
type fakeEmailProvider struct {
	mu    sync.Mutex
	sent  []string
	codes map[string]string
}

func newFakeEmailProvider() *fakeEmailProvider {
	return &fakeEmailProvider{codes: make(map[string]string)}
}

func (f *fakeEmailProvider) Send(e *email.Email) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, e.Subject)
	return nil
}

func (f *fakeEmailProvider) SendVerificationCode(to, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codes[to] = code
	return nil
}

func (f *fakeEmailProvider) Validate() error { return nil }
func (f *fakeEmailProvider) Close() error    { return nil }

func setupTestEnv(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger.Init("test")

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Contract.TemplatesDir = t.TempDir()
	config.AppConfig = cfg

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	router := app.SetupRouter(db, newFakeEmailProvider())
	return db, router
}

func createUser(t *testing.T, db *gorm.DB, emailAddr string, role models.UserRole, verified bool) (*models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Email:        emailAddr,
		PasswordHash: hash,
		Role:         role,
		IsVerified:   verified,
		FullName:     "Test User",
	}
	require.NoError(t, db.Create(user).Error)

	token, err := auth.GenerateToken(user)
	require.NoError(t, err)
	return user, token
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func createProject(t *testing.T, db *gorm.DB, clientID string, status models.ProjectStatus) *models.Project {
	t.Helper()

	project := &models.Project{
		ClientID:      clientID,
		Title:         "Build a storefront",
		Description:   "A complete storefront with product listings and checkout flow.",
		Budget:        5_000_000,
		Category:      "web",
		PaymentMethod: models.PaymentMethodFixed,
		WorkForm:      models.WorkFormRemote,
		Status:        status,
	}
	if status == models.ProjectStatusOpen || status == models.ProjectStatusInProgress {
		now := time.Now()
		project.ApprovedAt = &now
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func createBid(t *testing.T, db *gorm.DB, projectID, freelancerID string, status models.BidStatus) *models.Bid {
	t.Helper()

	bid := &models.Bid{
		ProjectID:    projectID,
		FreelancerID: freelancerID,
		Proposal:     "I have shipped three storefronts like this one before.",
		Price:        2_000_000,
		Status:       status,
	}
	require.NoError(t, db.Create(bid).Error)
	return bid
}
