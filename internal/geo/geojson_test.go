package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food_truck_tracker/internal/models"
)

func TestPointOrder(t *testing.T) {
	l := models.NewLocation("Capitol Square", "2 E Main St", "WI", 53703, "USA", 43.0747, -89.3841)

	p := Point(*l)
	require.NotNil(t, p)
	assert.Equal(t, -89.3841, p.X())
	assert.Equal(t, 43.0747, p.Y())
	assert.Equal(t, 4326, p.SRID())

	assert.Nil(t, Point(models.Location{Name: "Nowhere"}))
}

func TestFeatureCollectionSkipsUnplacedLocations(t *testing.T) {
	placed := models.NewLocation("Library Mall", "728 State St", "WI", 53706, "USA", 43.0752, -89.3980)
	placed.ID = 2
	locations := []models.Location{*placed, {ID: 3, Name: "Unknown Lot"}}

	fc := FeatureCollection(locations)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "2", fc.Features[0].ID)
	assert.Equal(t, "Library Mall", fc.Features[0].Properties["name"])

	data, err := json.Marshal(fc)
	require.NoError(t, err)

	var doc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "FeatureCollection", doc.Type)
	require.Len(t, doc.Features, 1)
	assert.Equal(t, "Point", doc.Features[0].Geometry.Type)
	assert.Equal(t, []float64{-89.3980, 43.0752}, doc.Features[0].Geometry.Coordinates)
}

func TestFeatureCollectionEmpty(t *testing.T) {
	data, err := json.Marshal(FeatureCollection(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))
}
