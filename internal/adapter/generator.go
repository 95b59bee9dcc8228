package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const (
	// DefaultGeminiModel is used when no model is configured.
	DefaultGeminiModel = "gemini-2.0-flash"
	// DefaultGenerationTimeout bounds a single generation request.
	DefaultGenerationTimeout = 2 * time.Minute
	// DefaultRequestsPerMinute paces requests to the generation service.
	DefaultRequestsPerMinute = 15

	defaultTemperature = 0.2
)

// ErrMissingAPIKey is returned when no credential is configured for the generation service.
var ErrMissingAPIKey = errors.New("generation service API key is not configured")

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiConfig holds the generation client configuration.
type GeminiConfig struct {
	APIKey            string
	Model             string
	Timeout           time.Duration
	RequestsPerMinute int
	Temperature       *float32 // nil = use default (0.2)
}

type contentFunc func(ctx context.Context, model, prompt string) (string, error)

// GeminiGenerator implements Generator with the Gemini API. The client is
// created lazily so commands that never generate do not need a key.
type GeminiGenerator struct {
	config  GeminiConfig
	limiter *rate.Limiter

	mu      sync.Mutex
	content contentFunc
}

// NewGeminiGenerator creates a generator, filling unset config fields with defaults.
func NewGeminiGenerator(config GeminiConfig) *GeminiGenerator {
	if config.Model == "" {
		config.Model = DefaultGeminiModel
	}

	if config.Timeout <= 0 {
		config.Timeout = DefaultGenerationTimeout
	}

	if config.RequestsPerMinute <= 0 {
		config.RequestsPerMinute = DefaultRequestsPerMinute
	}

	if config.Temperature == nil {
		config.Temperature = genai.Ptr[float32](defaultTemperature)
	}

	return &GeminiGenerator{
		config:  config,
		limiter: rate.NewLimiter(rate.Limit(float64(config.RequestsPerMinute)/60.0), 1),
	}
}

// Generate sends prompt to the configured model and returns the response text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	content, err := g.contentFunc(ctx)
	if err != nil {
		return "", err
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	slog.Debug("Sending generation request", "model", g.config.Model, "promptBytes", len(prompt))

	start := time.Now()

	text, err := content(callCtx, g.config.Model, prompt)
	if err != nil {
		slog.Error("Generation request failed", "model", g.config.Model, "error", err)
		return "", fmt.Errorf("generate content: %w", err)
	}

	slog.Debug("Received generation response", "model", g.config.Model, "responseBytes", len(text), "elapsed", time.Since(start))

	return text, nil
}

func (g *GeminiGenerator) contentFunc(ctx context.Context) (contentFunc, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.content != nil {
		return g.content, nil
	}

	if strings.TrimSpace(g.config.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create generation client: %w", err)
	}

	genConfig := &genai.GenerateContentConfig{Temperature: g.config.Temperature}

	g.content = func(ctx context.Context, model, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), genConfig)
		if err != nil {
			return "", err
		}

		return resp.Text(), nil
	}

	return g.content, nil
}
