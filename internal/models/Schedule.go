package models

// Schedule places one truck at one location for a day and time window.
// Date and times are free text and are stored exactly as given.
//
// Both foreign keys cascade on delete from the parent side: removing a
// truck or a location removes its schedule rows, never the reverse.
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// TruckID and LocationID are what gets written. Once set they take
	// precedence over the ids of the loaded Truck and Location.
	TruckID    uint      `gorm:"not null;index" json:"-"`
	Truck      *Truck    `gorm:"foreignKey:TruckID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"truck"`
	LocationID uint      `gorm:"not null;index" json:"-"`
	Location   *Location `gorm:"foreignKey:LocationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"location"`

	DayOfWeek string `json:"dayOfWeek"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// NewSchedule builds an unsaved schedule entry referencing truck and location.
func NewSchedule(truck *Truck, location *Location, dayOfWeek, date, startTime, endTime string) *Schedule {
	s := &Schedule{
		Truck:     truck,
		Location:  location,
		DayOfWeek: dayOfWeek,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}
	s.SyncReferences()
	return s
}

func (Schedule) TableName() string { return "schedules" }

func (s Schedule) PrimaryKey() uint { return s.ID }

// SyncReferences fills unset foreign key columns from the referenced truck
// and location. Columns that already hold an id are left alone, so moving a
// loaded entry means setting TruckID or LocationID.
func (s *Schedule) SyncReferences() {
	if s.TruckID == 0 && s.Truck != nil {
		s.TruckID = s.Truck.ID
	}
	if s.LocationID == 0 && s.Location != nil {
		s.LocationID = s.Location.ID
	}
}
