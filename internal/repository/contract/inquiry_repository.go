package contract

import (
	"context"

	"manualbot-be/internal/entity"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	CreateAccessLog(ctx context.Context, log *entity.AccessLog) error
}
