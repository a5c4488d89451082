// Package modelgen wraps the model-training/image-generation provider.
// Training is asynchronous (submit a job, poll its status); generation is
// synchronous from the caller's point of view.
package modelgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Quality tiers for image generation
const (
	TierFast    = "fast"    // low inference-step count, preview path
	TierQuality = "quality" // high inference-step count, full-set path
)

// Provider job statuses, as reported by PollStatus
const (
	JobStatusPending   = "pending"
	JobStatusTraining  = "training"
	JobStatusSucceeded = "succeeded"
	JobStatusFailed    = "failed"
)

// JobStatus is the polled state of a training job
type JobStatus struct {
	Status   string `json:"status"`
	Progress int    `json:"progress"` // 0-100
	ModelRef string `json:"modelRef,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Trainer is the model-training capability consumed by the training service
type Trainer interface {
	Train(ctx context.Context, photoURLs []string, triggerWord string, steps int) (string, error)
	PollStatus(ctx context.Context, jobID string) (*JobStatus, error)
}

// GenerateRequest describes one generation batch
type GenerateRequest struct {
	ModelRef    string
	TriggerWord string
	Style       string
	Background  string
	Count       int
	Tier        string // TierFast or TierQuality
}

// Generator is the image-generation capability consumed by the generation
// service
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) ([]string, error)
}

// Client talks to the training/generation provider's REST API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a provider client
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type trainingRequest struct {
	Input struct {
		InputImages []string `json:"input_images"`
		TriggerWord string   `json:"trigger_word"`
		Steps       int      `json:"steps"`
	} `json:"input"`
}

type trainingResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	Output   struct {
		Version string `json:"version"`
	} `json:"output"`
	Error string `json:"error"`
}

// Train submits one training job and returns the provider's job id
func (c *Client) Train(ctx context.Context, photoURLs []string, triggerWord string, steps int) (string, error) {
	var reqBody trainingRequest
	reqBody.Input.InputImages = photoURLs
	reqBody.Input.TriggerWord = triggerWord
	reqBody.Input.Steps = steps

	var result trainingResponse
	if err := c.do(ctx, http.MethodPost, "/v1/trainings", reqBody, &result); err != nil {
		return "", err
	}

	if result.ID == "" {
		return "", fmt.Errorf("training job id is empty in response")
	}

	return result.ID, nil
}

// PollStatus fetches the current state of a training job and maps the
// provider's status strings onto the local vocabulary. Unknown non-terminal
// statuses map to "training".
func (c *Client) PollStatus(ctx context.Context, jobID string) (*JobStatus, error) {
	var result trainingResponse
	if err := c.do(ctx, http.MethodGet, "/v1/trainings/"+jobID, nil, &result); err != nil {
		return nil, err
	}

	status := &JobStatus{
		Progress: result.Progress,
		ModelRef: result.Output.Version,
		Error:    result.Error,
	}

	switch result.Status {
	case "succeeded":
		status.Status = JobStatusSucceeded
		status.Progress = 100
	case "failed", "canceled":
		status.Status = JobStatusFailed
	case "starting", "queued":
		status.Status = JobStatusPending
	default:
		status.Status = JobStatusTraining
	}

	return status, nil
}

type predictionRequest struct {
	Version string `json:"version"`
	Input   struct {
		Prompt            string `json:"prompt"`
		NumOutputs        int    `json:"num_outputs"`
		NumInferenceSteps int    `json:"num_inference_steps"`
	} `json:"input"`
}

type predictionResponse struct {
	ID     string   `json:"id"`
	Status string   `json:"status"`
	Output []string `json:"output"`
	Error  string   `json:"error"`
}

// Generate requests a batch of images from the trained model and returns
// their URLs. The request blocks until the provider finishes the batch.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) ([]string, error) {
	var reqBody predictionRequest
	reqBody.Version = req.ModelRef
	reqBody.Input.Prompt = buildPrompt(req)
	reqBody.Input.NumOutputs = req.Count
	reqBody.Input.NumInferenceSteps = inferenceSteps(req.Tier)

	var result predictionResponse
	if err := c.do(ctx, http.MethodPost, "/v1/predictions", reqBody, &result); err != nil {
		return nil, err
	}

	if result.Error != "" {
		return nil, fmt.Errorf("generation failed: %s", result.Error)
	}

	if len(result.Output) == 0 {
		return nil, fmt.Errorf("generation returned no images")
	}

	return result.Output, nil
}

func buildPrompt(req GenerateRequest) string {
	return fmt.Sprintf("professional headshot photo of %s person, %s style, %s background, studio lighting, sharp focus, high detail",
		req.TriggerWord,
		strings.ToLower(req.Style),
		strings.ToLower(req.Background))
}

func inferenceSteps(tier string) int {
	if tier == TierQuality {
		return 50
	}
	return 25
}

func (c *Client) do(ctx context.Context, method, path string, reqBody, out interface{}) error {
	var body io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if method == http.MethodPost && path == "/v1/predictions" {
		// Ask the provider to hold the connection until the batch is done
		req.Header.Set("Prefer", "wait")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("provider request failed: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
