package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bounty-board-cli/internal/domain"
)

func candidateBody(t *testing.T, payload analysisPayload) []byte {
	t.Helper()

	text, err := json.Marshal(payload)
	require.NoError(t, err)

	body, err := json.Marshal(generateResponse{
		Candidates: []candidate{{Content: content{Parts: []part{{Text: string(text)}}}}},
	})
	require.NoError(t, err)

	return body
}

func TestAnalyzeParsesSuggestion(t *testing.T) {
	var gotPath, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Goog-Api-Key")

		var request generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.NotEmpty(t, request.Contents)

		w.Write(candidateBody(t, analysisPayload{
			Title:          "Fix settings crash",
			Summary:        "Resolve a nil dereference in the settings save path.",
			SuggestedPrice: 250,
			Difficulty:     "Medium",
			Tags:           []string{"bug", "settings", "crash"},
		}))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "gemini-2.5-flash", "test-key")

	analysis, err := client.Analyze(context.Background(), "Crash when saving settings")
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "Fix settings crash", analysis.Title)
	assert.Equal(t, 250, analysis.SuggestedPrice)
	assert.Equal(t, domain.DifficultyMedium, analysis.Difficulty)
	assert.Equal(t, []string{"bug", "settings", "crash"}, analysis.Tags)
}

func TestAnalyzeMissingKeySimulates(t *testing.T) {
	client := NewClient(nil, "", "", "")

	analysis, err := client.Analyze(context.Background(), "anything")
	require.NoError(t, err)

	assert.Equal(t, "Manual Issue Entry", analysis.Title)
	assert.Equal(t, 100, analysis.SuggestedPrice)
	assert.Equal(t, []string{"Unknown"}, analysis.Tags)
}

func TestAnalyzeDegradesOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "", "test-key")

	analysis, err := client.Analyze(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, domain.FallbackAnalysis(), analysis)
}

func TestAnalyzeDegradesOnMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"not json"}]}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "", "test-key")

	analysis, err := client.Analyze(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, domain.FallbackAnalysis(), analysis)
}

func TestAnalyzeReturnsErrorOnCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "", "test-key")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Analyze(ctx, "anything")
	require.Error(t, err)
}

func TestSanitizeClampsInvalidFields(t *testing.T) {
	analysis := sanitize(analysisPayload{
		Title:          "  ",
		SuggestedPrice: -10,
		Difficulty:     "Impossible",
		Tags:           nil,
	})

	fallback := domain.FallbackAnalysis()
	assert.Equal(t, fallback.Title, analysis.Title)
	assert.Equal(t, fallback.SuggestedPrice, analysis.SuggestedPrice)
	assert.Equal(t, fallback.Difficulty, analysis.Difficulty)
	assert.Equal(t, fallback.Tags, analysis.Tags)
}
