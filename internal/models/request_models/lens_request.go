package request_models

type CreateLensRequest struct {
	DisplayName string `json:"display_name"`
	FocalRange  string `json:"focal_range"`
}
