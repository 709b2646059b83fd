package interfaces

import (
	"context"

	"aventura_tours/internal/domain/entities"
)

// ICancellationPolicyRepository abstracts DynamoDB persistence for
// CancellationPolicy. Policies are a small, rarely-changing collection; List
// returns all of them and the selection logic runs in memory.
type ICancellationPolicyRepository interface {
	Create(ctx context.Context, p entities.CancellationPolicy) (entities.CancellationPolicy, error)
	GetByID(ctx context.Context, id string) (entities.CancellationPolicy, error)
	GetByName(ctx context.Context, name string) (entities.CancellationPolicy, error)
	List(ctx context.Context) ([]entities.CancellationPolicy, error)
}
