package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bouesti/journal-repository/internal/apperrors"
	"github.com/bouesti/journal-repository/internal/core/domain"
	portssvc "github.com/bouesti/journal-repository/internal/core/ports/services"
	"github.com/bouesti/journal-repository/internal/dto"
	"github.com/bouesti/journal-repository/internal/handlers"
	"github.com/bouesti/journal-repository/internal/platform/config"
	"github.com/bouesti/journal-repository/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockDashboardService *MockDashboardService
	mockUserService      *MockUserService
	jwtSecret            string
}

func (suite *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockDashboardService = new(MockDashboardService)
	suite.mockUserService = new(MockUserService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "journal-test",
		IsProduction:      true,
		HomeLatestLimit:   6,
	}

	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		User:      suite.mockUserService,
		Journal:   new(MockJournalService),
		Dashboard: suite.mockDashboardService,
	})
}

func (suite *DashboardHandlerTestSuite) authHeader(userID string) string {
	token, err := utils.GenerateJWT(userID, false, suite.jwtSecret, time.Hour, "journal-test")
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *DashboardHandlerTestSuite) TestMyDashboard_CombinesCountsAndJournals() {
	userID := uuid.NewString()
	counts := domain.DashboardCounts{Total: 3, Pending: 1, Approved: 1, Rejected: 1}
	journals := []domain.Journal{
		{JournalID: uuid.NewString(), OwnerID: userID, Status: domain.StatusPending},
		{JournalID: uuid.NewString(), OwnerID: userID, Status: domain.StatusApproved},
		{JournalID: uuid.NewString(), OwnerID: userID, Status: domain.StatusRejected},
	}

	suite.mockDashboardService.On("DashboardCounts", mock.Anything, userID).Return(counts, nil).Once()
	suite.mockDashboardService.On("MyJournals", mock.Anything, userID).Return(journals, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/me/dashboard", nil)
	req.Header.Set("Authorization", suite.authHeader(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DashboardResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(3, resp.Uploaded)
	suite.Equal(1, resp.Pending)
	suite.Len(resp.Journals, 3)
	suite.mockDashboardService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestMyDashboard_RequiresAuth() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/me/dashboard", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *DashboardHandlerTestSuite) TestUpdateProfile_Success() {
	userID := uuid.NewString()
	bio := "Lecturer, Department of History."
	user := &domain.User{UserID: userID, Username: "jdoe", Bio: bio}

	suite.mockUserService.On("UpdateProfile", mock.Anything, userID, mock.MatchedBy(func(r dto.UpdateProfileRequest) bool {
		return r.Bio != nil && *r.Bio == bio
	})).Return(user, nil).Once()

	payload, _ := json.Marshal(dto.UpdateProfileRequest{Bio: &bio})
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/me/profile", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", suite.authHeader(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.UserResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(bio, resp.Bio)
}

func (suite *DashboardHandlerTestSuite) TestChangePassword_WrongOldPassword() {
	userID := uuid.NewString()

	suite.mockUserService.On("ChangePassword", mock.Anything, userID, mock.Anything).
		Return(apperrors.ErrUnauthorized).Once()

	payload, _ := json.Marshal(dto.ChangePasswordRequest{
		OldPassword:        "wrongold",
		NewPassword:        "newpassword",
		NewPasswordConfirm: "newpassword",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/me/password", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", suite.authHeader(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestDashboardHandler(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
