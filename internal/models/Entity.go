package models

// Entity is implemented by every persisted record. The primary key is
// assigned by the store on insert and stays stable for the life of the row.
type Entity interface {
	PrimaryKey() uint
}
