package model

import (
	"time"

	"github.com/google/uuid"
)

type Inquiry struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LineId    string    `gorm:"type:varchar(64);not null;index"`
	UserName  string    `gorm:"type:varchar(50);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Type      string    `gorm:"type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(50);not null;default:'pending'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

type AccessLog struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LineId       string    `gorm:"type:varchar(64);not null;index"`
	UserName     string    `gorm:"type:varchar(50)"`
	Action       string    `gorm:"type:varchar(50);not null"`
	ResponseTime int64     `gorm:"default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (AccessLog) TableName() string {
	return "access_logs"
}
