package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/destegai/scan-server/models"
)

// Sentinel errors for the classifier boundary
var (
	// ErrUnavailable means the remote call failed or timed out. No scan
	// record exists; retrying is safe but manual.
	ErrUnavailable = errors.New("classifier unavailable")

	// ErrUnknownLabel means the call succeeded but reported a class
	// outside the enumerated set. Treated as a defect in the remote
	// service, never coerced to clean.
	ErrUnknownLabel = errors.New("classifier returned unknown label")

	// ErrBadResponse means the response body did not match the contract
	ErrBadResponse = errors.New("classifier returned malformed response")
)

// Prediction is one classification reply
type Prediction struct {
	PredictedClass string
	Confidence     float64
}

// Client abstracts the remote steganalysis model service
type Client interface {
	Classify(ctx context.Context, filename string, image []byte) (*Prediction, error)
}

// classifyResponse is the wire shape of the model service reply
type classifyResponse struct {
	DetectedClass *string  `json:"detected_class"`
	Confidence    *float64 `json:"confidence"`
}

// HTTPClient calls the model service over HTTP. It keeps no state
// between calls; the request timeout is fixed at construction and a
// caller may cancel early through the context.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a classifier client for the given base URL.
// timeout bounds each classify call end to end.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Classify sends the raw image to the model service and parses the
// predicted class and confidence out of the reply. One outbound request
// per call, no retries.
func (c *HTTPClient) Classify(ctx context.Context, filename string, image []byte) (*Prediction, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build classify request: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("failed to build classify request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/classify", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build classify request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	return parsePrediction(resp.Body)
}

// parsePrediction validates the reply against the contract: a known
// label and a confidence percentage within 0-100.
func parsePrediction(r io.Reader) (*Prediction, error) {
	var reply classifyResponse
	if err := json.NewDecoder(r).Decode(&reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	if reply.DetectedClass == nil || reply.Confidence == nil {
		return nil, fmt.Errorf("%w: missing detected_class or confidence", ErrBadResponse)
	}

	if !models.IsKnownLabel(*reply.DetectedClass) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, *reply.DetectedClass)
	}

	confidence := models.RoundConfidence(*reply.Confidence)
	if confidence < 0 || confidence > 100 {
		return nil, fmt.Errorf("%w: confidence %v out of range", ErrBadResponse, *reply.Confidence)
	}

	return &Prediction{
		PredictedClass: *reply.DetectedClass,
		Confidence:     confidence,
	}, nil
}
