package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/destegai/scan-server/classifier"
	classifiermocks "github.com/destegai/scan-server/classifier/mocks"
	"github.com/destegai/scan-server/models"
	"github.com/destegai/scan-server/repositories/mocks"
)

const testMaxUploadBytes = 256

// ScanServiceTestSuite is a test suite for the scan pipeline
type ScanServiceTestSuite struct {
	suite.Suite
	service          ScanService
	mockClassifier   *classifiermocks.MockClient
	mockScanRepo     *mocks.MockScanRepository
	mockActivityRepo *mocks.MockActivityLogRepository
}

// SetupTest sets up the test suite before each test
func (suite *ScanServiceTestSuite) SetupTest() {
	suite.mockClassifier = classifiermocks.NewMockClient(suite.T())
	suite.mockScanRepo = mocks.NewMockScanRepository(suite.T())
	suite.mockActivityRepo = mocks.NewMockActivityLogRepository(suite.T())

	suite.service = NewScanService(
		suite.mockClassifier,
		suite.mockScanRepo,
		NewActivityService(suite.mockActivityRepo),
		ScanConfig{MaxUploadBytes: testMaxUploadBytes},
	)
}

// pngUpload builds a syntactically valid PNG payload of the given total size
func pngUpload(size int) *ScanUpload {
	data := make([]byte, size)
	copy(data, pngMagic)
	return &ScanUpload{Filename: "payload.png", Data: data}
}

func (suite *ScanServiceTestSuite) TestClassify_Success() {
	upload := pngUpload(64)
	suite.mockClassifier.EXPECT().
		Classify(mock.Anything, "payload.png", upload.Data).
		Return(&classifier.Prediction{PredictedClass: "js", Confidence: 81.33}, nil)

	outcome, err := suite.service.Classify(context.Background(), upload)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), outcome)
	assert.Equal(suite.T(), "js", outcome.PredictedClass)
	assert.Equal(suite.T(), 81.33, outcome.Confidence)
	assert.WithinDuration(suite.T(), time.Now(), outcome.SubmittedAt, time.Second)
}

func (suite *ScanServiceTestSuite) TestClassify_EmptyPayload() {
	outcome, err := suite.service.Classify(context.Background(), &ScanUpload{Filename: "payload.png"})

	// No network call is made on validation failure; the classifier
	// mock would fail the test if touched.
	assert.ErrorIs(suite.T(), err, ErrInvalidInput)
	assert.Nil(suite.T(), outcome)
}

func (suite *ScanServiceTestSuite) TestClassify_WrongExtension() {
	upload := pngUpload(64)
	upload.Filename = "payload.jpg"

	_, err := suite.service.Classify(context.Background(), upload)

	assert.ErrorIs(suite.T(), err, ErrInvalidInput)
}

func (suite *ScanServiceTestSuite) TestClassify_NotAPNG() {
	upload := &ScanUpload{Filename: "payload.png", Data: []byte("GIF89a trust me")}

	_, err := suite.service.Classify(context.Background(), upload)

	assert.ErrorIs(suite.T(), err, ErrInvalidInput)
}

func (suite *ScanServiceTestSuite) TestClassify_MaxSizeBoundary() {
	// A file at exactly the maximum is accepted
	atLimit := pngUpload(testMaxUploadBytes)
	suite.mockClassifier.EXPECT().
		Classify(mock.Anything, "payload.png", atLimit.Data).
		Return(&classifier.Prediction{PredictedClass: "clean", Confidence: 99.99}, nil)

	_, err := suite.service.Classify(context.Background(), atLimit)
	assert.NoError(suite.T(), err)

	// One byte over is rejected
	overLimit := pngUpload(testMaxUploadBytes + 1)
	_, err = suite.service.Classify(context.Background(), overLimit)
	assert.ErrorIs(suite.T(), err, ErrInvalidInput)
}

func (suite *ScanServiceTestSuite) TestClassify_ClassifierUnavailable() {
	upload := pngUpload(64)
	suite.mockClassifier.EXPECT().
		Classify(mock.Anything, "payload.png", upload.Data).
		Return(nil, classifier.ErrUnavailable)

	outcome, err := suite.service.Classify(context.Background(), upload)

	assert.ErrorIs(suite.T(), err, ErrClassifierUnavailable)
	assert.Nil(suite.T(), outcome)
}

func (suite *ScanServiceTestSuite) TestClassify_UnknownLabelSurfacedAsIs() {
	upload := pngUpload(64)
	suite.mockClassifier.EXPECT().
		Classify(mock.Anything, "payload.png", upload.Data).
		Return(nil, classifier.ErrUnknownLabel)

	_, err := suite.service.Classify(context.Background(), upload)

	assert.ErrorIs(suite.T(), err, classifier.ErrUnknownLabel)
	assert.NotErrorIs(suite.T(), err, ErrClassifierUnavailable)
}

func (suite *ScanServiceTestSuite) TestClassify_NoHiddenCaching() {
	// Submitting the same file twice produces two independent outcomes;
	// a changed remote response must never be masked.
	upload := pngUpload(64)
	suite.mockClassifier.EXPECT().
		Classify(mock.Anything, "payload.png", upload.Data).
		Return(&classifier.Prediction{PredictedClass: "js", Confidence: 81.33}, nil).Once()
	suite.mockClassifier.EXPECT().
		Classify(mock.Anything, "payload.png", upload.Data).
		Return(&classifier.Prediction{PredictedClass: "clean", Confidence: 55.5}, nil).Once()

	first, err := suite.service.Classify(context.Background(), upload)
	assert.NoError(suite.T(), err)
	second, err := suite.service.Classify(context.Background(), upload)
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), "js", first.PredictedClass)
	assert.Equal(suite.T(), "clean", second.PredictedClass)
}

func (suite *ScanServiceTestSuite) TestSave_Success() {
	outcome := &models.ScanOutcome{
		PredictedClass: "js",
		Confidence:     81.33,
		SubmittedAt:    time.Now(),
	}

	suite.mockScanRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*models.ScanResult")).
		RunAndReturn(func(_ context.Context, result *models.ScanResult) error {
			result.ID = "scan-1"
			return nil
		})
	suite.mockActivityRepo.EXPECT().
		Create(mock.Anything, "jane@example.com", "Saved scan result scan-1 (js, 81.33%)").
		Return(&models.ActivityLogEntry{}, nil)

	result, err := suite.service.Save(context.Background(), outcome, "jane@example.com", "/files/scan_results/a.png")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "scan-1", result.ID)
	assert.Equal(suite.T(), "jane@example.com", result.OwnerEmail)
	assert.Equal(suite.T(), outcome.SubmittedAt, result.SubmittedAt)
	assert.Equal(suite.T(), "/files/scan_results/a.png", result.ImageRef)
}

func (suite *ScanServiceTestSuite) TestSave_PersistenceFailureSurfaced() {
	outcome := &models.ScanOutcome{
		PredictedClass: "js",
		Confidence:     81.33,
		SubmittedAt:    time.Now(),
	}

	suite.mockScanRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*models.ScanResult")).
		Return(errors.New("disk full"))

	result, err := suite.service.Save(context.Background(), outcome, "jane@example.com", "")

	// No audit entry is written when the persist step fails
	assert.ErrorIs(suite.T(), err, ErrPersistenceFailure)
	assert.Nil(suite.T(), result)
}

func (suite *ScanServiceTestSuite) TestSave_AuditFailureSwallowed() {
	outcome := &models.ScanOutcome{
		PredictedClass: "ps",
		Confidence:     64.2,
		SubmittedAt:    time.Now(),
	}

	suite.mockScanRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*models.ScanResult")).
		RunAndReturn(func(_ context.Context, result *models.ScanResult) error {
			result.ID = "scan-2"
			return nil
		})
	suite.mockActivityRepo.EXPECT().
		Create(mock.Anything, "jane@example.com", mock.AnythingOfType("string")).
		Return(nil, errors.New("log store down"))

	result, err := suite.service.Save(context.Background(), outcome, "jane@example.com", "")

	// The record survives and the caller still sees success
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "scan-2", result.ID)
}

func (suite *ScanServiceTestSuite) TestSave_MissingActor() {
	outcome := &models.ScanOutcome{PredictedClass: "js", Confidence: 1, SubmittedAt: time.Now()}

	_, err := suite.service.Save(context.Background(), outcome, "", "")

	assert.ErrorIs(suite.T(), err, ErrInvalidInput)
}

func (suite *ScanServiceTestSuite) TestGetHistory_SortedNewestFirst() {
	now := time.Now()
	suite.mockScanRepo.EXPECT().
		ListByOwner(mock.Anything, "jane@example.com").
		Return([]models.ScanResult{
			{ID: "old", SubmittedAt: now.Add(-2 * time.Hour), OwnerEmail: "jane@example.com"},
			{ID: "new", SubmittedAt: now, OwnerEmail: "jane@example.com"},
			{ID: "mid", SubmittedAt: now.Add(-time.Hour), OwnerEmail: "jane@example.com"},
		}, nil)

	results, err := suite.service.GetHistory(context.Background(), "jane@example.com")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"new", "mid", "old"}, []string{results[0].ID, results[1].ID, results[2].ID})
}

func TestScanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScanServiceTestSuite))
}
