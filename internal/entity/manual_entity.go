package entity

import (
	"time"

	"github.com/google/uuid"

	"manualbot-be/pkg/permission"
)

// CategoryPath locates a manual in the three-tier category tree.
type CategoryPath struct {
	Major  string
	Middle string
	Minor  string
}

// Manual is a searchable knowledge-base document. The core only ever reads
// manuals; authoring happens outside this system.
type Manual struct {
	Id                 uuid.UUID
	Category           CategoryPath
	Title              string
	Content            string
	Tags               []string
	RequiredPermission permission.Level
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
