package implementation

import (
	"context"

	"gorm.io/gorm"

	"manualbot-be/internal/entity"
	"manualbot-be/internal/mapper"
	"manualbot-be/internal/model"
	"manualbot-be/internal/repository/contract"
)

type InquiryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InquiryMapper
}

func NewInquiryRepository(db *gorm.DB) contract.InquiryRepository {
	return &InquiryRepositoryImpl{
		db:     db,
		mapper: mapper.NewInquiryMapper(),
	}
}

func (r *InquiryRepositoryImpl) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	modelInquiry := r.mapper.ToModel(inquiry)
	if err := r.db.WithContext(ctx).Create(modelInquiry).Error; err != nil {
		return err
	}
	*inquiry = *r.mapper.ToEntity(modelInquiry)
	return nil
}

func (r *InquiryRepositoryImpl) CreateAccessLog(ctx context.Context, log *entity.AccessLog) error {
	return r.db.WithContext(ctx).Create(&model.AccessLog{
		Id:           log.Id,
		LineId:       log.LineId,
		UserName:     log.UserName,
		Action:       log.Action,
		ResponseTime: log.ResponseTime,
		CreatedAt:    log.CreatedAt,
	}).Error
}
