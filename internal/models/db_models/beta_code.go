package db_models

import (
	"fmt"

	"github.com/PhotoScout/API/pkg/utils"
	"gorm.io/gorm"
)

// BetaCode is a single-use invitation. Consuming one during signup
// deletes the row.
type BetaCode struct {
	BaseModel
	Code string `gorm:"size:16;uniqueIndex"`
}

func (c BetaCode) String() string {
	return fmt.Sprintf("Code: %s", c.Code)
}

// BeforeCreate shadows the embedded hook, so the uuid assignment is
// chained explicitly before minting a code.
func (c *BetaCode) BeforeCreate(tx *gorm.DB) error {
	if err := c.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if c.Code == "" {
		code, err := utils.GenerateSecureToken(8)
		if err != nil {
			return err
		}
		c.Code = code
	}
	return nil
}
