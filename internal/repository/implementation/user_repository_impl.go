package implementation

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"manualbot-be/internal/entity"
	"manualbot-be/internal/mapper"
	"manualbot-be/internal/model"
	"manualbot-be/internal/repository/contract"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	modelUser := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(modelUser).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(modelUser)
	return nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var modelUser model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&modelUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelUser), nil
}

func (r *UserRepositoryImpl) FindByLineId(ctx context.Context, lineId string) (*entity.User, error) {
	var modelUser model.User
	err := r.db.WithContext(ctx).Where("line_id = ?", lineId).First(&modelUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelUser), nil
}

func (r *UserRepositoryImpl) TouchLastAccess(ctx context.Context, lineId string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("line_id = ?", lineId).
		Update("last_access", now).Error
}
