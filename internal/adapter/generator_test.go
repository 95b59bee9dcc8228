package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiGenerator_Defaults(t *testing.T) {
	g := NewGeminiGenerator(GeminiConfig{})

	assert.Equal(t, DefaultGeminiModel, g.config.Model)
	assert.Equal(t, DefaultGenerationTimeout, g.config.Timeout)
	assert.Equal(t, DefaultRequestsPerMinute, g.config.RequestsPerMinute)
	require.NotNil(t, g.config.Temperature)
	assert.InDelta(t, 0.2, *g.config.Temperature, 0.0001)
}

func TestGeminiGenerator_MissingAPIKey(t *testing.T) {
	g := NewGeminiGenerator(GeminiConfig{APIKey: "  "})

	_, err := g.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGeminiGenerator_Generate(t *testing.T) {
	g := NewGeminiGenerator(GeminiConfig{Model: "test-model", RequestsPerMinute: 6000})

	var gotModel, gotPrompt string
	g.content = func(_ context.Context, model, prompt string) (string, error) {
		gotModel, gotPrompt = model, prompt
		return "def test_ok():\n    assert True\n", nil
	}

	text, err := g.Generate(context.Background(), "write tests")
	require.NoError(t, err)
	assert.Equal(t, "test-model", gotModel)
	assert.Equal(t, "write tests", gotPrompt)
	assert.Contains(t, text, "test_ok")
}

func TestGeminiGenerator_WrapsErrors(t *testing.T) {
	g := NewGeminiGenerator(GeminiConfig{RequestsPerMinute: 6000})
	boom := errors.New("quota exceeded")
	g.content = func(context.Context, string, string) (string, error) {
		return "", boom
	}

	_, err := g.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, boom)
}

func TestGeminiGenerator_AppliesTimeout(t *testing.T) {
	g := NewGeminiGenerator(GeminiConfig{Timeout: 10 * time.Millisecond, RequestsPerMinute: 6000})
	g.content = func(ctx context.Context, _, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}

	_, err := g.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGeminiGenerator_CancelledWhileWaiting(t *testing.T) {
	g := NewGeminiGenerator(GeminiConfig{RequestsPerMinute: 1})
	g.content = func(context.Context, string, string) (string, error) { return "ok", nil }

	_, err := g.Generate(context.Background(), "first")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = g.Generate(ctx, "second")
	assert.Error(t, err)
}
