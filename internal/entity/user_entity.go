package entity

import (
	"time"

	"github.com/google/uuid"

	"manualbot-be/pkg/permission"
)

// User is a registered chat participant. LineId is the opaque stable key the
// messaging platform assigns to a conversation participant.
type User struct {
	Id              uuid.UUID
	LineId          string
	Email           string
	Name            string
	PermissionLabel string
	Active          bool
	RegisteredAt    time.Time
	LastAccess      *time.Time
}

// Level resolves the user's permission label to its ordinal level.
func (u *User) Level() permission.Level {
	if u == nil {
		return permission.LevelGeneral
	}
	return permission.LevelOf(u.PermissionLabel)
}
