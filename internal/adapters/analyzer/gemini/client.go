package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/bounty-board-cli/internal/domain"
	"github.com/bnema/bounty-board-cli/internal/ports"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"
)

const analysisPrompt = `You are an expert software project manager for a crypto bounty platform. Analyze the following GitHub issue description.

Task:
1. Create a short, catchy title for the bounty.
2. Summarize the task in one sentence.
3. Suggest a fair bounty price in USDC (integers only) based on complexity (Generous rates: Easy=$50-200, Medium=$200-500, Hard=$500-1500, Expert=$1500+).
4. Rate difficulty: Easy, Medium, Hard, or Expert.
5. Suggest 3 relevant technical tags.

Issue Description:
%q`

// Client calls the Gemini generateContent API to turn issue text into a
// bounty suggestion. It never lets a failure cross the analyzer boundary:
// a missing key or any transport/decode problem degrades to a fixed
// suggestion record, and an error return is reserved for a cancelled
// context.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

var _ ports.IssueAnalyzer = (*Client)(nil)

func NewClient(httpClient *http.Client, baseURL, model, apiKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		model:      model,
		apiKey:     apiKey,
	}
}

func (c *Client) Analyze(ctx context.Context, issueText string) (domain.IssueAnalysis, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return missingKeyAnalysis(), nil
	}

	payload, err := c.generate(ctx, issueText)
	if err != nil {
		if ctx.Err() != nil {
			return domain.IssueAnalysis{}, err
		}
		return domain.FallbackAnalysis(), nil
	}

	return sanitize(payload), nil
}

func (c *Client) generate(ctx context.Context, issueText string) (analysisPayload, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(analysisPrompt, issueText)}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   analysisResponseSchema(),
		},
	})
	if err != nil {
		return analysisPayload{}, fmt.Errorf("encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimRight(c.baseURL, "/"), c.model)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return analysisPayload{}, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("X-Goog-Api-Key", c.apiKey)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return analysisPayload{}, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, 1<<20))
	if err != nil {
		return analysisPayload{}, fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return analysisPayload{}, fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return analysisPayload{}, fmt.Errorf("decode response: %w", err)
	}

	text := decoded.text()
	if strings.TrimSpace(text) == "" {
		return analysisPayload{}, fmt.Errorf("empty candidate text")
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return analysisPayload{}, fmt.Errorf("decode analysis payload: %w", err)
	}

	return payload, nil
}

// sanitize clamps model output into the shape the creation form expects.
func sanitize(payload analysisPayload) domain.IssueAnalysis {
	analysis := domain.IssueAnalysis{
		Title:          strings.TrimSpace(payload.Title),
		Summary:        strings.TrimSpace(payload.Summary),
		SuggestedPrice: payload.SuggestedPrice,
		Difficulty:     domain.Difficulty(payload.Difficulty),
		Tags:           payload.Tags,
	}

	fallback := domain.FallbackAnalysis()
	if analysis.Title == "" {
		analysis.Title = fallback.Title
	}
	if analysis.SuggestedPrice < 0 {
		analysis.SuggestedPrice = fallback.SuggestedPrice
	}
	if !analysis.Difficulty.Valid() {
		analysis.Difficulty = fallback.Difficulty
	}
	if len(analysis.Tags) == 0 {
		analysis.Tags = fallback.Tags
	}

	return analysis
}

// missingKeyAnalysis is the record returned when no API key is configured.
// Analysis is simulated rather than blocked.
func missingKeyAnalysis() domain.IssueAnalysis {
	return domain.IssueAnalysis{
		Title:          "Manual Issue Entry",
		Summary:        "API Key missing. Simulating analysis...",
		SuggestedPrice: 100,
		Difficulty:     domain.DifficultyMedium,
		Tags:           []string{"Unknown"},
	}
}
