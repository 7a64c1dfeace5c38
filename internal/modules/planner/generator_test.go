package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tripkit/internal/ai"
	"tripkit/internal/config"
	"tripkit/internal/logger"
)

func simulationConfig() config.AIConfig {
	return config.AIConfig{Service: config.ServiceSimulation, MaxTokens: 2000, Temperature: 0.7}
}

func TestGeneratorSimulation(t *testing.T) {
	g := NewGenerator(simulationConfig(), nil)
	require.Equal(t, "simulation", g.Vendor())

	start := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	content := g.Generate(context.Background(), "세부", 4, start)

	assert.NotEmpty(t, content.Checklists)
	assert.NotEmpty(t, content.Items)
	assert.NotEmpty(t, content.LocalInfos)
	assert.NotEmpty(t, content.Wishlists)
}

// A vendor selected without its credential degrades to simulation up front.
func TestGeneratorMissingCredential(t *testing.T) {
	g := NewGenerator(config.AIConfig{Service: config.ServiceClaude}, nil)
	assert.Equal(t, "simulation", g.Vendor())
}

type failingProvider struct{}

func (failingProvider) Name() string { return "claude" }
func (failingProvider) GenerateCompletion(context.Context, string, ai.Options) (string, error) {
	return "", errors.New("boom")
}

// Every category falls back to the simulator when the vendor errors, so the
// result is still complete.
func TestGeneratorVendorFailureFallsBack(t *testing.T) {
	g := &Generator{
		cfg:       simulationConfig(),
		provider:  failingProvider{},
		simulator: ai.NewSimulator(),
		log:       logger.GetLogger(),
	}

	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	content := g.Generate(context.Background(), "도쿄", 3, start)

	assert.NotEmpty(t, content.Checklists)
	assert.NotEmpty(t, content.Items)
	assert.NotEmpty(t, content.LocalInfos)
	assert.NotEmpty(t, content.Wishlists)
}

type blankProvider struct{}

func (blankProvider) Name() string { return "deepseek" }
func (blankProvider) GenerateCompletion(context.Context, string, ai.Options) (string, error) {
	return "   ", nil
}

func TestGeneratorBlankCompletionFallsBack(t *testing.T) {
	g := &Generator{
		cfg:       simulationConfig(),
		provider:  blankProvider{},
		simulator: ai.NewSimulator(),
		log:       logger.GetLogger(),
	}

	content := g.Generate(context.Background(), "세부", 2, time.Now())
	assert.False(t, content.Empty())
}

type emptyArrayProvider struct{}

func (emptyArrayProvider) Name() string { return "openai" }
func (emptyArrayProvider) GenerateCompletion(context.Context, string, ai.Options) (string, error) {
	return "[]", nil
}

// A vendor that answers every prompt with an empty array gets a warning per
// category before the wholesale switch to simulation.
func TestGeneratorLogsEmptyCategories(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	g := &Generator{
		cfg:       simulationConfig(),
		provider:  emptyArrayProvider{},
		simulator: ai.NewSimulator(),
		log:       zap.New(core).Sugar(),
	}

	content := g.Generate(context.Background(), "세부", 4, time.Now())
	assert.False(t, content.Empty())

	warned := observed.FilterMessage("category yielded no entries").All()
	require.Len(t, warned, 4)
	for _, entry := range warned {
		assert.Equal(t, "openai", entry.ContextMap()["vendor"])
	}
}
