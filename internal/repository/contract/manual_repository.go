package contract

import (
	"context"

	"manualbot-be/internal/entity"
)

// ManualRepository is the read-only corpus access layer. The core never
// caches or invalidates the snapshot itself.
type ManualRepository interface {
	AllActive(ctx context.Context) ([]*entity.Manual, error)
	Create(ctx context.Context, manual *entity.Manual) error
}
