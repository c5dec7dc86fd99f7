package ports

import (
	"context"

	"github.com/modobot/mood-engine/internal/core"
)

// AnalysisServer defines the interface for the engine's transport front end
type AnalysisServer interface {
	// Classify classifies a single text directly, bypassing the transport
	Classify(ctx context.Context, text string) *core.ClassificationResult

	// Start starts the server
	Start() error

	// Stop stops the server
	Stop() error
}
