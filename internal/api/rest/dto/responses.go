package dto

// GenerateImageResponse is returned by POST /generate-image
type GenerateImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
