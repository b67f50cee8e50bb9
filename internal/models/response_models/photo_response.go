package response_models

type PhotoResponse struct {
	ID        string   `json:"id"`
	Origin    string   `json:"origin"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	URL       string   `json:"url"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Tags      []string `json:"tags"`
}
