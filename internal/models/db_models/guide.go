package db_models

import (
	"fmt"

	"github.com/google/uuid"
)

type GuideVisibility int16

const (
	GuidePrivate GuideVisibility = 0
	GuidePublic  GuideVisibility = 1
)

type Guide struct {
	BaseModel
	Title      string          `gorm:"size:256"`
	Visibility GuideVisibility `gorm:"type:smallint;default:0"`
	OwnerID    uuid.UUID       `gorm:"index"`

	Photos []Photo `gorm:"many2many:photo_guide"`
}

func (g Guide) String() string {
	return fmt.Sprintf("Guide: %s", g.Title)
}
