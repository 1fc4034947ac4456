package models

// Location is a physical spot a truck can park at.
// Latitude and Longitude are optional and serialize as null when unknown.
type Location struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	Name      string   `json:"name" binding:"required"`
	Address   string   `json:"address"`
	State     string   `json:"state"`
	Zip       int      `json:"zip"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// NewLocation builds an unsaved location with coordinates.
func NewLocation(name, address, state string, zip int, country string, lat, lng float64) *Location {
	return &Location{
		Name:      name,
		Address:   address,
		State:     state,
		Zip:       zip,
		Country:   country,
		Latitude:  &lat,
		Longitude: &lng,
	}
}

func (Location) TableName() string { return "locations" }

func (l Location) PrimaryKey() uint { return l.ID }

// HasCoordinates reports whether both latitude and longitude are known.
func (l Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}
