package mapper

import (
	"manualbot-be/internal/entity"
	"manualbot-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:              u.Id,
		LineId:          u.LineId,
		Email:           u.Email,
		Name:            u.Name,
		PermissionLabel: u.PermissionLabel,
		Active:          u.Active,
		RegisteredAt:    u.RegisteredAt,
		LastAccess:      u.LastAccess,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:              u.Id,
		LineId:          u.LineId,
		Email:           u.Email,
		Name:            u.Name,
		PermissionLabel: u.PermissionLabel,
		Active:          u.Active,
		RegisteredAt:    u.RegisteredAt,
		LastAccess:      u.LastAccess,
	}
}

func (m *UserMapper) ToEntities(models []*model.User) []*entity.User {
	entities := make([]*entity.User, 0, len(models))
	for _, mu := range models {
		entities = append(entities, m.ToEntity(mu))
	}
	return entities
}
