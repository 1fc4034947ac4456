package geo

import (
	"strconv"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"food_truck_tracker/internal/models"
)

// Point returns the location as a WGS84 point (longitude, latitude), or
// nil when either coordinate is unknown.
func Point(l models.Location) *geom.Point {
	if !l.HasCoordinates() {
		return nil
	}
	return geom.NewPointFlat(geom.XY, []float64{*l.Longitude, *l.Latitude}).SetSRID(4326)
}

// FeatureCollection converts locations to GeoJSON point features.
// Locations without coordinates are skipped.
func FeatureCollection(locations []models.Location) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(locations))}
	for _, l := range locations {
		p := Point(l)
		if p == nil {
			continue
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       strconv.FormatUint(uint64(l.ID), 10),
			Geometry: p,
			Properties: map[string]interface{}{
				"name":    l.Name,
				"address": l.Address,
				"state":   l.State,
				"zip":     l.Zip,
				"country": l.Country,
			},
		})
	}
	return fc
}
