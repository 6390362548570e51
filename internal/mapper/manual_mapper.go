package mapper

import (
	"strings"

	"manualbot-be/internal/entity"
	"manualbot-be/internal/model"
	"manualbot-be/pkg/permission"
)

type ManualMapper struct{}

func NewManualMapper() *ManualMapper {
	return &ManualMapper{}
}

func (m *ManualMapper) ToEntity(mm *model.Manual) *entity.Manual {
	if mm == nil {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(mm.Tags, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return &entity.Manual{
		Id: mm.Id,
		Category: entity.CategoryPath{
			Major:  mm.CategoryMajor,
			Middle: mm.CategoryMiddle,
			Minor:  mm.CategoryMinor,
		},
		Title:              mm.Title,
		Content:            mm.Content,
		Tags:               tags,
		RequiredPermission: permission.Level(mm.RequiredPermission),
		Active:             mm.Active,
		CreatedAt:          mm.CreatedAt,
		UpdatedAt:          mm.UpdatedAt,
	}
}

func (m *ManualMapper) ToModel(e *entity.Manual) *model.Manual {
	if e == nil {
		return nil
	}
	return &model.Manual{
		Id:                 e.Id,
		CategoryMajor:      e.Category.Major,
		CategoryMiddle:     e.Category.Middle,
		CategoryMinor:      e.Category.Minor,
		Title:              e.Title,
		Content:            e.Content,
		Tags:               strings.Join(e.Tags, ","),
		RequiredPermission: int(e.RequiredPermission),
		Active:             e.Active,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func (m *ManualMapper) ToEntities(models []*model.Manual) []*entity.Manual {
	entities := make([]*entity.Manual, 0, len(models))
	for _, mm := range models {
		entities = append(entities, m.ToEntity(mm))
	}
	return entities
}
