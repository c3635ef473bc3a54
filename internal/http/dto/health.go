package dto

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

var Healthy = HealthResponse{
	Status:  "healthy",
	Message: "Backend connected successfully",
}
