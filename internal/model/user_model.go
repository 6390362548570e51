package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LineId          string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name            string    `gorm:"type:varchar(50);not null"`
	PermissionLabel string    `gorm:"type:varchar(50);not null;default:'一般'"`
	Active          bool      `gorm:"default:true"`
	RegisteredAt    time.Time `gorm:"autoCreateTime"`
	LastAccess      *time.Time
}

func (User) TableName() string {
	return "users"
}
