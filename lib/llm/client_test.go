package llm

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedClient(t *testing.T) *Client {
	t.Helper()

	client := NewClient("https://llm.example.com", "test-key", "test-model")
	httpmock.ActivateNonDefault(client.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

func messagesBody(text string) map[string]interface{} {
	return map[string]interface{}{
		"content": []map[string]string{
			{"type": "text", "text": text},
		},
	}
}

func TestAnalyzeOne(t *testing.T) {
	client := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodPost, "https://llm.example.com/v1/messages",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "test-key", req.Header.Get("x-api-key"))
			assert.Equal(t, "2023-06-01", req.Header.Get("anthropic-version"))
			return httpmock.NewJsonResponse(http.StatusOK, messagesBody(
				`{"score": 8.5, "lighting": "excellent", "background": "good", "expression": "good", "angle": "good", "focus": "poor", "approved": true}`))
		})

	analysis, err := client.AnalyzeOne(context.Background(), "https://cdn.example.com/photo.jpg")

	require.NoError(t, err)
	assert.InDelta(t, 8.5, analysis.Score, 0.001)
	assert.Equal(t, "excellent", analysis.Lighting)
	assert.Equal(t, "poor", analysis.Focus)
	assert.True(t, analysis.Approved)
}

func TestAnalyzeOne_CodeFencedResponse(t *testing.T) {
	client := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodPost, "https://llm.example.com/v1/messages",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, messagesBody(
			"```json\n{\"score\": 6.0, \"lighting\": \"good\", \"background\": \"good\", \"expression\": \"good\", \"angle\": \"good\", \"focus\": \"good\", \"approved\": false}\n```")))

	analysis, err := client.AnalyzeOne(context.Background(), "https://cdn.example.com/photo.jpg")

	require.NoError(t, err)
	assert.InDelta(t, 6.0, analysis.Score, 0.001)
	assert.False(t, analysis.Approved)
}

func TestAnalyzeOne_HTTPError(t *testing.T) {
	client := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodPost, "https://llm.example.com/v1/messages",
		httpmock.NewStringResponder(http.StatusTooManyRequests, `{"error": "rate limited"}`))

	_, err := client.AnalyzeOne(context.Background(), "https://cdn.example.com/photo.jpg")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestAnalyzeOne_MalformedJSON(t *testing.T) {
	client := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodPost, "https://llm.example.com/v1/messages",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, messagesBody("I'm sorry, I can't rate this photo.")))

	_, err := client.AnalyzeOne(context.Background(), "https://cdn.example.com/photo.jpg")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse analysis response")
}

func TestAnalyzeBatch(t *testing.T) {
	client := newMockedClient(t)

	scores := []string{
		`{"score": 8.0, "lighting": "good", "background": "good", "expression": "good", "angle": "good", "focus": "good", "approved": true}`,
		`{"score": 6.0, "lighting": "poor", "background": "good", "expression": "good", "angle": "good", "focus": "good", "approved": false}`,
	}
	call := 0
	httpmock.RegisterResponder(http.MethodPost, "https://llm.example.com/v1/messages",
		func(req *http.Request) (*http.Response, error) {
			resp, err := httpmock.NewJsonResponse(http.StatusOK, messagesBody(scores[call]))
			call++
			return resp, err
		})

	batch, err := client.AnalyzeBatch(context.Background(), []string{"a.jpg", "b.jpg"})

	require.NoError(t, err)
	require.Len(t, batch.PerImage, 2)
	assert.InDelta(t, 7.0, batch.MeanScore, 0.001)
	assert.Equal(t, "poor", batch.PerImage[1].Lighting)
	assert.NotEmpty(t, batch.Summary)
}

func TestGenerateCaption(t *testing.T) {
	client := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodPost, "https://llm.example.com/v1/messages",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, messagesBody("  A great caption.\n")))

	caption, err := client.GenerateCaption(context.Background(), "headshots")

	require.NoError(t, err)
	assert.Equal(t, "A great caption.", caption)
}

func TestFallbackAnalyzer(t *testing.T) {
	client := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodPost, "https://llm.example.com/v1/messages",
		httpmock.NewStringResponder(http.StatusInternalServerError, "boom"))

	fallback := &FallbackAnalyzer{Inner: client}

	analysis, err := fallback.AnalyzeOne(context.Background(), "a.jpg")
	require.NoError(t, err)
	assert.Equal(t, DefaultAnalysis(), *analysis)

	batch, err := fallback.AnalyzeBatch(context.Background(), []string{"a.jpg", "b.jpg"})
	require.NoError(t, err)
	require.Len(t, batch.PerImage, 2)
	assert.InDelta(t, 7.0, batch.MeanScore, 0.001)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
}
