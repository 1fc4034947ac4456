package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduleCopiesReferenceIDs(t *testing.T) {
	truck := &Truck{ID: 3, Name: "Curry Cart"}
	location := &Location{ID: 9, Name: "Library Mall"}

	s := NewSchedule(truck, location, "Friday", "5/8/2026", "11:00am", "2:00pm")

	assert.Equal(t, uint(3), s.TruckID)
	assert.Equal(t, uint(9), s.LocationID)
	assert.Same(t, truck, s.Truck)
	assert.Same(t, location, s.Location)
}

func TestSyncReferencesKeepsExplicitIDs(t *testing.T) {
	s := &Schedule{TruckID: 5, LocationID: 6, Truck: &Truck{}}
	s.SyncReferences()

	assert.Equal(t, uint(5), s.TruckID, "unsaved truck must not clear the id")
	assert.Equal(t, uint(6), s.LocationID)
}

func TestSyncReferencesPrefersForeignKeyOverLoadedTruck(t *testing.T) {
	s := NewSchedule(&Truck{ID: 1}, &Location{ID: 2}, "Thursday", "5/7/2026", "8:00am", "4:00pm")
	s.TruckID = 3
	s.LocationID = 4

	s.SyncReferences()

	assert.Equal(t, uint(3), s.TruckID)
	assert.Equal(t, uint(4), s.LocationID)
}

func TestScheduleJSONNestsReferences(t *testing.T) {
	lat, lng := 43.07, -89.40
	s := Schedule{
		ID:         1,
		TruckID:    2,
		Truck:      &Truck{ID: 2, Name: "ANM Burger Buds", FoodType: "Burgers"},
		LocationID: 4,
		Location:   &Location{ID: 4, Name: "Capitol Square", Latitude: &lat, Longitude: &lng},
		DayOfWeek:  "Thursday",
		Date:       "5/7/2026",
		StartTime:  "8:00am",
		EndTime:    "4:00pm",
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))

	assert.NotContains(t, got, "truckId")
	assert.NotContains(t, got, "TruckID")
	assert.Equal(t, "Thursday", got["dayOfWeek"])
	assert.Equal(t, "8:00am", got["startTime"])

	truck := got["truck"].(map[string]interface{})
	assert.Equal(t, "ANM Burger Buds", truck["name"])
	assert.Equal(t, "Burgers", truck["foodType"])
	assert.NotContains(t, truck, "schedules")

	location := got["location"].(map[string]interface{})
	assert.Equal(t, 43.07, location["latitude"])
}

func TestLocationWithoutCoordinates(t *testing.T) {
	l := Location{Name: "Pop-up"}
	assert.False(t, l.HasCoordinates())

	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"latitude":null`)

	assert.True(t, NewLocation("Square", "1 Main", "WI", 53703, "USA", 1, 2).HasCoordinates())
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "food_trucks", Truck{}.TableName())
	assert.Equal(t, "locations", Location{}.TableName())
	assert.Equal(t, "schedules", Schedule{}.TableName())
}
