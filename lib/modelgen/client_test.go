package modelgen

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedClient(t *testing.T) *Client {
	t.Helper()

	client := NewClient("https://provider.example.com", "test-key")
	httpmock.ActivateNonDefault(client.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

func TestTrain(t *testing.T) {
	client := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodPost, "https://provider.example.com/v1/trainings",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer test-key", req.Header.Get("Authorization"))

			var body trainingRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, []string{"a.jpg", "b.jpg"}, body.Input.InputImages)
			assert.Equal(t, "TOK", body.Input.TriggerWord)
			assert.Equal(t, 1000, body.Input.Steps)

			return httpmock.NewJsonResponse(http.StatusCreated, map[string]string{
				"id":     "job-42",
				"status": "starting",
			})
		})

	jobID, err := client.Train(context.Background(), []string{"a.jpg", "b.jpg"}, "TOK", 1000)

	require.NoError(t, err)
	assert.Equal(t, "job-42", jobID)
}

func TestTrain_EmptyJobID(t *testing.T) {
	client := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodPost, "https://provider.example.com/v1/trainings",
		httpmock.NewJsonResponderOrPanic(http.StatusCreated, map[string]string{"status": "starting"}))

	_, err := client.Train(context.Background(), []string{"a.jpg"}, "TOK", 1000)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "job id is empty")
}

func TestPollStatus_Mapping(t *testing.T) {
	tests := []struct {
		provider     string
		want         string
		wantProgress int
	}{
		{"succeeded", JobStatusSucceeded, 100},
		{"failed", JobStatusFailed, 40},
		{"canceled", JobStatusFailed, 40},
		{"starting", JobStatusPending, 40},
		{"queued", JobStatusPending, 40},
		{"processing", JobStatusTraining, 40},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			client := newMockedClient(t)

			httpmock.RegisterResponder(http.MethodGet, "https://provider.example.com/v1/trainings/job-42",
				httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]interface{}{
					"id":       "job-42",
					"status":   tt.provider,
					"progress": 40,
					"output":   map[string]string{"version": "model-ref-1"},
				}))

			status, err := client.PollStatus(context.Background(), "job-42")

			require.NoError(t, err)
			assert.Equal(t, tt.want, status.Status)
			assert.Equal(t, tt.wantProgress, status.Progress)
			assert.Equal(t, "model-ref-1", status.ModelRef)
		})
	}
}

func TestPollStatus_HTTPError(t *testing.T) {
	client := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodGet, "https://provider.example.com/v1/trainings/job-42",
		httpmock.NewStringResponder(http.StatusBadGateway, "bad gateway"))

	_, err := client.PollStatus(context.Background(), "job-42")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestGenerate(t *testing.T) {
	client := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodPost, "https://provider.example.com/v1/predictions",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "wait", req.Header.Get("Prefer"))

			var body predictionRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "model-ref-1", body.Version)
			assert.Equal(t, 3, body.Input.NumOutputs)
			assert.Equal(t, 25, body.Input.NumInferenceSteps, "fast tier uses the low step count")
			assert.Contains(t, body.Input.Prompt, "TOK")
			assert.Contains(t, body.Input.Prompt, "corporate")

			return httpmock.NewJsonResponse(http.StatusCreated, map[string]interface{}{
				"id":     "pred-1",
				"status": "succeeded",
				"output": []string{"1.png", "2.png", "3.png"},
			})
		})

	urls, err := client.Generate(context.Background(), GenerateRequest{
		ModelRef:    "model-ref-1",
		TriggerWord: "TOK",
		Style:       "CORPORATE",
		Background:  "OFFICE",
		Count:       3,
		Tier:        TierFast,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"1.png", "2.png", "3.png"}, urls)
}

func TestGenerate_ProviderReportedError(t *testing.T) {
	client := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodPost, "https://provider.example.com/v1/predictions",
		httpmock.NewJsonResponderOrPanic(http.StatusCreated, map[string]interface{}{
			"id":     "pred-1",
			"status": "failed",
			"error":  "NSFW content detected",
		}))

	_, err := client.Generate(context.Background(), GenerateRequest{ModelRef: "m", Count: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "NSFW content detected")
}

func TestInferenceSteps(t *testing.T) {
	assert.Equal(t, 50, inferenceSteps(TierQuality))
	assert.Equal(t, 25, inferenceSteps(TierFast))
	assert.Equal(t, 25, inferenceSteps(""))
}
