// Package api defines the request and response messages of the homekeeper
// Connect services. Messages travel as JSON; field names are camelCase.
// Dates are YYYY-MM-DD strings and the empty string means unset.
package api

type Notification struct {
	Level   string `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type Task struct {
	Id             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Category       string   `json:"category"`
	AssignedTo     []string `json:"assignedTo"`
	Priority       string   `json:"priority"`
	DueDate        string   `json:"dueDate,omitempty"`
	Points         int      `json:"points"`
	Completed      bool     `json:"completed"`
	NeedsAttention bool     `json:"needsAttention"`
	Comments       int      `json:"comments"`
}

// TaskDraft carries the fields of the new-task form. Zero values take the
// form defaults: priority medium, 10 points.
type TaskDraft struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	AssignedTo  []string `json:"assignedTo"`
	Priority    string   `json:"priority,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
	Points      int      `json:"points,omitempty"`
}

type TaskStats struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	Completed      int `json:"completed"`
	NeedsAttention int `json:"needsAttention"`
	Percent        int `json:"percent"`
}

type GroceryItem struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
	Priority string `json:"priority"`
	Bought   bool   `json:"bought"`
	AddedBy  string `json:"addedBy"`
}

type GroceryStats struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	Bought       int `json:"bought"`
	HighPriority int `json:"highPriority"`
	Percent      int `json:"percent"`
}

type Car struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	Plate          string `json:"plate"`
	Owner          string `json:"owner"`
	Year           *int   `json:"year,omitempty"`
	Color          string `json:"color,omitempty"`
	Mileage        *int   `json:"mileage,omitempty"`
	NextService    string `json:"nextService,omitempty"`
	NextInspection string `json:"nextInspection,omitempty"`
	FuelLevel      int    `json:"fuelLevel"`
}

// CarDraft carries the car form. Year and mileage are digit strings.
// FuelLevel nil means the default of 100.
type CarDraft struct {
	Id             string `json:"id,omitempty"`
	Name           string `json:"name"`
	Plate          string `json:"plate"`
	Owner          string `json:"owner"`
	Year           string `json:"year,omitempty"`
	Color          string `json:"color,omitempty"`
	Mileage        string `json:"mileage,omitempty"`
	NextService    string `json:"nextService,omitempty"`
	NextInspection string `json:"nextInspection,omitempty"`
	FuelLevel      *int   `json:"fuelLevel,omitempty"`
}

type CarAlert struct {
	Kind   string `json:"kind"`
	Status string `json:"status,omitempty"`
	Days   int    `json:"days,omitempty"`
}

type CarStatus struct {
	Car              Car        `json:"car"`
	ServiceStatus    string     `json:"serviceStatus"`
	InspectionStatus string     `json:"inspectionStatus"`
	DaysToService    int        `json:"daysToService"`
	DaysToInspection int        `json:"daysToInspection"`
	LowFuel          bool       `json:"lowFuel"`
	Alerts           []CarAlert `json:"alerts,omitempty"`
}

type Category struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	Icon           string `json:"icon"`
	Description    string `json:"description,omitempty"`
	TaskCount      int    `json:"taskCount"`
	CompletedCount int    `json:"completedCount"`
	Percent        int    `json:"percent"`
}

type FamilyMember struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Avatar string `json:"avatar"`
}
