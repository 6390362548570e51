package contract

import (
	"context"

	"manualbot-be/internal/entity"
)

// UserRepository is the record-store view of registered users. FindBy*
// return (nil, nil) when no record matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByLineId(ctx context.Context, lineId string) (*entity.User, error)
	TouchLastAccess(ctx context.Context, lineId string) error
}
