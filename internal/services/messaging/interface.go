package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/cribbage/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetHandScoreMessage returns a comment on a counted hand or crib
	GetHandScoreMessage(ctx context.Context, input *GetHandScoreMessageInput) (*GetHandScoreMessageOutput, error)

	// GetMatchResultMessage returns the announcement for a finished match
	GetMatchResultMessage(ctx context.Context, input *GetMatchResultMessageInput) (*GetMatchResultMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
