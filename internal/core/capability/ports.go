package capability

import "context"

// Embedder turns texts into vectors, one per input and in input order
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator completes a prompt with free text
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Transcriber turns recorded audio into text
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}
