package request_models

type CreateGuideRequest struct {
	Title      string `json:"title"`
	Visibility int16  `json:"visibility"`
}

type UpdateGuideRequest struct {
	Title      *string `json:"title"`
	Visibility *int16  `json:"visibility"`
}
