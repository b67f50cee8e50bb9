package db_models

import "fmt"

type User struct {
	BaseModel
	Username     string `gorm:"size:64;index"`
	Email        string `gorm:"size:256"`
	FullName     string `gorm:"size:256"`
	PasswordHash string `gorm:"size:128"`

	Guides []Guide `gorm:"foreignKey:OwnerID"`
	Lenses []Lens  `gorm:"foreignKey:OwnerID"`
}

func (u User) String() string {
	return fmt.Sprintf("User: %s", u.Username)
}
