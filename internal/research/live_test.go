package research

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel implements llms.Model for testing the live provider.
type fakeModel struct {
	response string
	err      error
	delay    time.Duration
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.response}},
	}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	resp, err := m.GenerateContent(ctx, nil, options...)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

const validLivePayload = `Here is the analysis:
{
  "competitors": [
    {
      "name": "Wix",
      "domain": "wix.com",
      "market_position": "leader",
      "strengths": ["templates"],
      "weaknesses": ["lock-in"],
      "pricing": "$16/month",
      "user_base": "200M+ sites",
      "key_features": ["drag and drop"],
      "tech_stack": ["React"],
      "market_share": 35
    }
  ],
  "market": {
    "size": "$10B",
    "growth_rate": "9% CAGR",
    "trends": ["AI site generation"],
    "opportunities": ["SMB churn"],
    "threats": ["platform bundling"],
    "target_segments": ["SMBs"]
  },
  "competitive_gaps": ["no offline editing"]
}`

func TestLiveProvider_Research_Success(t *testing.T) {
	model := &fakeModel{response: validLivePayload}
	provider := NewLiveProvider(model)

	result, err := provider.Research(context.Background(), "Web Application", "website builders")
	require.NoError(t, err)

	assert.False(t, result.Degraded)
	assert.InDelta(t, liveConfidence, result.Confidence, 1e-9)
	assert.Equal(t, "website builders", result.Industry)
	require.Len(t, result.Competitors, 1)
	assert.Equal(t, "Wix", result.Competitors[0].Name)
	assert.Contains(t, result.CompetitiveGaps, "no offline editing")
	assert.NotEmpty(t, result.Recommendations)
}

func TestLiveProvider_Research_ModelErrorFallsBack(t *testing.T) {
	model := &fakeModel{err: errors.New("rate limited")}
	provider := NewLiveProvider(model)

	result, err := provider.Research(context.Background(), "Web Application", "development")
	require.NoError(t, err, "fallback must absorb provider failure")

	assert.True(t, result.Degraded)
	assert.Len(t, result.Competitors, 5, "static development panel expected")
}

func TestLiveProvider_Research_TimeoutFallsBack(t *testing.T) {
	model := &fakeModel{response: validLivePayload, delay: time.Second}
	provider := NewLiveProvider(model, WithLiveTimeout(10*time.Millisecond))

	start := time.Now()
	result, err := provider.Research(context.Background(), "Web Application", "unknown industry")
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Less(t, time.Since(start), 500*time.Millisecond, "timeout must bound the call")
	assert.NotEmpty(t, result.Competitors)
}

func TestLiveProvider_Research_UnparseableResponseFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"prose_only", "I could not find any data."},
		{"invalid_json", "{ competitors: oops }"},
		{"no_competitors", `{"competitors": [], "market": {}}`},
		{"bad_position", `{"competitors": [{"name": "X", "market_position": "dominant"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewLiveProvider(&fakeModel{response: tt.response})

			result, err := provider.Research(context.Background(), "Web Application", "development")
			require.NoError(t, err)
			assert.True(t, result.Degraded)
		})
	}
}

func TestLiveProvider_Research_FailingFallbackStillTotal(t *testing.T) {
	failing := providerFunc(func(ctx context.Context, projectType, industry string) (*Result, error) {
		return nil, errors.New("fallback broken")
	})
	provider := NewLiveProvider(&fakeModel{err: errors.New("down")}, WithFallback(failing))

	result, err := provider.Research(context.Background(), "Web Application", "development")
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.NotEmpty(t, result.Competitors)
}

// providerFunc adapts a function to the Provider interface.
type providerFunc func(ctx context.Context, projectType, industry string) (*Result, error)

func (f providerFunc) Research(ctx context.Context, projectType, industry string) (*Result, error) {
	return f(ctx, projectType, industry)
}
