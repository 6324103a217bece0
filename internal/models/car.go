package models

import "time"

// Car is a family vehicle with its upcoming maintenance dates.
type Car struct {
	// ID is the unique identifier for the car (UUIDv7 format).
	ID string

	// Name is the make and model (e.g., "Toyota Corolla").
	Name string

	// Plate is the registration plate.
	Plate string

	// Owner is the family member the car belongs to.
	Owner string

	// Year, Color and Mileage are optional.
	Year    *int
	Color   string
	Mileage *int

	// NextService and NextInspection are calendar dates; the zero value means
	// the date has not been set yet.
	NextService    time.Time
	NextInspection time.Time

	// FuelLevel is a percentage between 0 and 100.
	FuelLevel int
}

func (c Car) RecordID() string { return c.ID }

func (c Car) WithID(id string) Car {
	c.ID = id
	return c
}
