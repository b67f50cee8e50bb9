package db_models

import (
	"fmt"

	"github.com/PhotoScout/API/pkg/geo"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type PhotoOrigin string

const (
	OriginFlickr PhotoOrigin = "Flickr"
	Origin500px  PhotoOrigin = "500px"
)

// Photo is stored in an external service (flickr/500px) and only
// referenced here. Photos link to guides in a many-to-many relationship.
type Photo struct {
	BaseModel
	Origin PhotoOrigin `gorm:"size:16;index"`

	Title  string `gorm:"type:text"`
	Author string `gorm:"size:256"`

	FlickrID string `gorm:"size:16;index"`

	URL string `gorm:"type:text"`

	Latitude  *float64
	Longitude *float64

	LensFocal  string `gorm:"size:16"`
	FlashFired bool   `gorm:"default:false"`
	Exposure   string `gorm:"size:16"`

	Tags    pq.StringArray `gorm:"type:text[]"`
	RawMeta datatypes.JSON `gorm:"type:jsonb"`

	Guides []Guide `gorm:"many2many:photo_guide"`
}

func (p Photo) String() string {
	return fmt.Sprintf("Photo: %s", p.ID)
}

// Location reports where the photo was taken, or nil when the external
// service supplied no usable coordinates.
func (p *Photo) Location() *geo.Point {
	if p.Latitude == nil || p.Longitude == nil {
		return nil
	}
	return &geo.Point{Latitude: *p.Latitude, Longitude: *p.Longitude}
}
