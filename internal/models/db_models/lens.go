package db_models

import (
	"fmt"

	"github.com/google/uuid"
)

type Lens struct {
	BaseModel
	DisplayName string `gorm:"size:256"`
	FocalRange  string `gorm:"size:64"`

	OwnerID uuid.UUID `gorm:"index"`
}

func (l Lens) String() string {
	return fmt.Sprintf("Lens: %s", l.DisplayName)
}
