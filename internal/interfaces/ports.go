package interfaces

import "context"

// AIClient is the external text-generation service: one system
// instruction, one user turn, one completion back.
type AIClient interface {
	GenerateResponse(ctx context.Context, system, user string) (string, error)
}
