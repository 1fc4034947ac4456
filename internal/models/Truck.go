package models

// Truck is a food truck. Its schedule entries are found by querying
// Schedule on truck_id; they are not held on the truck itself.
type Truck struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `json:"name" binding:"required"`
	FoodType string `json:"foodType"`
}

// NewTruck builds an unsaved truck.
func NewTruck(name, foodType string) *Truck {
	return &Truck{Name: name, FoodType: foodType}
}

func (Truck) TableName() string { return "food_trucks" }

func (t Truck) PrimaryKey() uint { return t.ID }
