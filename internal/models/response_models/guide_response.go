package response_models

import "github.com/PhotoScout/API/pkg/geo"

// GuideSummary is a guide row decorated with the computed fields the
// listing pages show next to each guide.
type GuideSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Visibility int16  `json:"visibility"`
	OwnerID    string `json:"owner_id"`
	Creation   string `json:"creation"`
	LastEdited string `json:"last_edited"`

	NumberPhoto      int64      `json:"number_photo"`
	FeaturedImage    string     `json:"featured_image,omitempty"`
	FeaturedLocation *geo.Point `json:"featured_location,omitempty"`
}
