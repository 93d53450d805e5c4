package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/destegai/scan-server/models"
	"github.com/destegai/scan-server/repositories/mocks"
)

// AdminServiceTestSuite is a test suite for the admin aggregation views
type AdminServiceTestSuite struct {
	suite.Suite
	service          AdminService
	mockUserRepo     *mocks.MockUserRepository
	mockScanRepo     *mocks.MockScanRepository
	mockActivityRepo *mocks.MockActivityLogRepository
}

// SetupTest sets up the test suite before each test
func (suite *AdminServiceTestSuite) SetupTest() {
	suite.mockUserRepo = mocks.NewMockUserRepository(suite.T())
	suite.mockScanRepo = mocks.NewMockScanRepository(suite.T())
	suite.mockActivityRepo = mocks.NewMockActivityLogRepository(suite.T())

	suite.service = NewAdminService(
		suite.mockUserRepo,
		suite.mockScanRepo,
		NewActivityService(suite.mockActivityRepo),
	)
}

func (suite *AdminServiceTestSuite) TestBuildUserOverview() {
	users := []models.User{
		{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: models.RoleUser},
		{ID: "u2", Name: "Bob", Email: "bob@example.com", Role: models.RoleAdmin},
	}
	suite.mockUserRepo.EXPECT().GetAll(mock.Anything).Return(users, nil)

	suite.mockScanRepo.EXPECT().CountByOwner(mock.Anything, "alice@example.com").Return(4, nil)
	suite.mockScanRepo.EXPECT().CountByOwner(mock.Anything, "bob@example.com").Return(0, nil)

	suite.mockActivityRepo.EXPECT().ListByActor(mock.Anything, "alice@example.com").
		Return([]models.ActivityLogEntry{{Actor: "alice@example.com", Activity: "alice@example.com logged in"}}, nil)
	suite.mockActivityRepo.EXPECT().ListByActor(mock.Anything, "bob@example.com").
		Return(nil, nil)

	overviews, err := suite.service.BuildUserOverview(context.Background())

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), overviews, 2)
	assert.Equal(suite.T(), 4, overviews[0].ScanCount)
	assert.Len(suite.T(), overviews[0].RecentActivity, 1)
	assert.Equal(suite.T(), 0, overviews[1].ScanCount)
	assert.Empty(suite.T(), overviews[1].RecentActivity)
}

func (suite *AdminServiceTestSuite) TestBuildUserOverview_PartialFailureTolerated() {
	// A failing sub-join emits that user's row with zero values and the
	// aggregation continues.
	users := []models.User{
		{ID: "u1", Name: "Alice", Email: "alice@example.com"},
		{ID: "u2", Name: "Ghost", Email: "ghost@example.com"},
	}
	suite.mockUserRepo.EXPECT().GetAll(mock.Anything).Return(users, nil)

	suite.mockScanRepo.EXPECT().CountByOwner(mock.Anything, "alice@example.com").Return(2, nil)
	suite.mockScanRepo.EXPECT().CountByOwner(mock.Anything, "ghost@example.com").
		Return(0, errors.New("stale reference"))

	suite.mockActivityRepo.EXPECT().ListByActor(mock.Anything, "alice@example.com").Return(nil, nil)
	suite.mockActivityRepo.EXPECT().ListByActor(mock.Anything, "ghost@example.com").
		Return(nil, errors.New("stale reference"))

	overviews, err := suite.service.BuildUserOverview(context.Background())

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), overviews, 2)
	assert.Equal(suite.T(), 0, overviews[1].ScanCount)
	assert.Empty(suite.T(), overviews[1].RecentActivity)
}

func (suite *AdminServiceTestSuite) TestBuildUserOverview_CapsRecentActivity() {
	users := []models.User{{ID: "u1", Name: "Alice", Email: "alice@example.com"}}
	suite.mockUserRepo.EXPECT().GetAll(mock.Anything).Return(users, nil)
	suite.mockScanRepo.EXPECT().CountByOwner(mock.Anything, "alice@example.com").Return(0, nil)

	var entries []models.ActivityLogEntry
	base := time.Now()
	for i := 0; i < 9; i++ {
		entries = append(entries, models.ActivityLogEntry{
			Actor:      "alice@example.com",
			Activity:   "something",
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	suite.mockActivityRepo.EXPECT().ListByActor(mock.Anything, "alice@example.com").Return(entries, nil)

	overviews, err := suite.service.BuildUserOverview(context.Background())

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), overviews[0].RecentActivity, recentActivityLimit)
	// Newest entries are kept
	assert.Equal(suite.T(), base.Add(8*time.Minute), overviews[0].RecentActivity[0].OccurredAt)
}

func (suite *AdminServiceTestSuite) TestBuildUserOverview_DirectoryFailure() {
	suite.mockUserRepo.EXPECT().GetAll(mock.Anything).Return(nil, errors.New("db closed"))

	_, err := suite.service.BuildUserOverview(context.Background())

	assert.Error(suite.T(), err)
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
