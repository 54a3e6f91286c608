// Package port declares the interfaces to the external collaborators of
// the normalization engine. Implementations (database, object store) live
// outside this repository; the engine only consumes and produces these
// contracts.
package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
)

// EstimateRepository persists import records and their normalized results.
type EstimateRepository interface {
	CreateImport(ctx context.Context, imp *domain.EstimateImport) error
	SaveResult(ctx context.Context, importID uuid.UUID, result *domain.ParseResult) error
	MarkFailed(ctx context.Context, importID uuid.UUID, parseErr string) error
	ClaimPending(ctx context.Context, limit int) ([]domain.EstimateImport, error)
}
