package request_models

import "encoding/json"

// AddPhotoRequest mirrors what the importer pulls out of the external
// service. RawMeta keeps the untouched API payload for later reprocessing.
type AddPhotoRequest struct {
	Origin    string   `json:"origin"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	FlickrID  string   `json:"flickr_id"`
	URL       string   `json:"url"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	LensFocal  string `json:"lens_focal"`
	FlashFired bool   `json:"flash_fired"`
	Exposure   string `json:"exposure"`

	Tags    []string        `json:"tags"`
	RawMeta json.RawMessage `json:"raw_meta"`
}
