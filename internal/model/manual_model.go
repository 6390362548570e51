package model

import (
	"time"

	"github.com/google/uuid"
)

type Manual struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryMajor      string    `gorm:"type:varchar(100);not null;index"`
	CategoryMiddle     string    `gorm:"type:varchar(100)"`
	CategoryMinor      string    `gorm:"type:varchar(100)"`
	Title              string    `gorm:"type:varchar(255);not null"`
	Content            string    `gorm:"type:text"`
	Tags               string    `gorm:"type:text"` // comma separated
	RequiredPermission int       `gorm:"not null;default:1"`
	Active             bool      `gorm:"default:true"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (Manual) TableName() string {
	return "manuals"
}
