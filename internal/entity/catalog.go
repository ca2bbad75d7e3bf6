package entity

import "time"

type Destination struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	PhotoURL    string    `db:"photo_url"`
	Country     string    `db:"country"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Package struct {
	ID            string `db:"id"`
	AgentID       string `db:"agent_id"`
	DestinationID string `db:"destination_id"`
	// DestinationName is filled on reads only.
	DestinationName string    `db:"destination_name"`
	Name            string    `db:"name"`
	Duration        int       `db:"duration"`
	Price           float64   `db:"price"`
	Itinerary       string    `db:"itinerary"`
	MaxTravelers    int       `db:"max_travelers"`
	ContactPhone    string    `db:"contact_phone"`
	Images          []string  `db:"images"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}
