package catalog

import "time"

type DestinationFilter struct {
	Country string `query:"country"`
	Name    string `query:"name"`
}

type CreateDestinationRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=255"`
	Description string `json:"description" form:"description" validate:"required"`
	Country     string `json:"country" form:"country" validate:"required,max=100"`
	PhotoURL    string `json:"photo_url" form:"photo_url" validate:"omitempty,url,max=500"`
}

type DestinationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PhotoURL    *string   `json:"photo_url"`
	Country     string    `json:"country"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreatePackageRequest struct {
	DestinationID string   `json:"destinationId" validate:"required,uuid"`
	Name          string   `json:"name" validate:"required,max=200"`
	Duration      int      `json:"duration" validate:"required,gt=0"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	Itinerary     string   `json:"itinerary" validate:"required"`
	MaxTravelers  int      `json:"maxTravelers" validate:"required,gt=0"`
	ContactPhone  string   `json:"contactPhone" validate:"required,max=20"`
	Images        []string `json:"images" validate:"dive,url"`
}

type PackageResponse struct {
	ID              string    `json:"id"`
	AgentID         string    `json:"agentId"`
	DestinationID   string    `json:"destinationId"`
	DestinationName string    `json:"destinationName,omitempty"`
	Name            string    `json:"name"`
	Duration        int       `json:"duration"`
	Price           float64   `json:"price"`
	Itinerary       string    `json:"itinerary"`
	MaxTravelers    int       `json:"maxTravelers"`
	ContactPhone    string    `json:"contactPhone"`
	Images          []string  `json:"images"`
	CreatedAt       time.Time `json:"createdAt"`
}
