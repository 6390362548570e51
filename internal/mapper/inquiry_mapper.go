package mapper

import (
	"manualbot-be/internal/entity"
	"manualbot-be/internal/model"
)

type InquiryMapper struct{}

func NewInquiryMapper() *InquiryMapper {
	return &InquiryMapper{}
}

func (m *InquiryMapper) ToEntity(mi *model.Inquiry) *entity.Inquiry {
	if mi == nil {
		return nil
	}
	return &entity.Inquiry{
		Id:        mi.Id,
		LineId:    mi.LineId,
		UserName:  mi.UserName,
		Email:     mi.Email,
		Type:      entity.InquiryType(mi.Type),
		Content:   mi.Content,
		Status:    entity.InquiryStatus(mi.Status),
		CreatedAt: mi.CreatedAt,
	}
}

func (m *InquiryMapper) ToModel(e *entity.Inquiry) *model.Inquiry {
	if e == nil {
		return nil
	}
	return &model.Inquiry{
		Id:        e.Id,
		LineId:    e.LineId,
		UserName:  e.UserName,
		Email:     e.Email,
		Type:      string(e.Type),
		Content:   e.Content,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
	}
}
