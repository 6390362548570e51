package implementation

import (
	"context"

	"gorm.io/gorm"

	"manualbot-be/internal/entity"
	"manualbot-be/internal/mapper"
	"manualbot-be/internal/model"
	"manualbot-be/internal/repository/contract"
)

type ManualRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ManualMapper
}

func NewManualRepository(db *gorm.DB) contract.ManualRepository {
	return &ManualRepositoryImpl{
		db:     db,
		mapper: mapper.NewManualMapper(),
	}
}

func (r *ManualRepositoryImpl) AllActive(ctx context.Context) ([]*entity.Manual, error) {
	var modelManuals []*model.Manual
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at ASC").
		Find(&modelManuals).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(modelManuals), nil
}

func (r *ManualRepositoryImpl) Create(ctx context.Context, manual *entity.Manual) error {
	modelManual := r.mapper.ToModel(manual)
	if err := r.db.WithContext(ctx).Create(modelManual).Error; err != nil {
		return err
	}
	*manual = *r.mapper.ToEntity(modelManual)
	return nil
}
