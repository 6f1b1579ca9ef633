package ingredient

import "time"

type Zone struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Ingredient is a catalog entry. ZoneName is filled on reads when the zone
// still exists.
type Ingredient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Unit      *string   `json:"unit"`
	ZoneID    *string   `json:"zone_id"`
	ZoneName  *string   `json:"zone_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
