package api

// TaskService

type ListTasksRequest struct {
	// Category limits the list to one category; empty lists every task.
	Category string `json:"category,omitempty"`
	// Tab is all, pending, completed or needs-attention. Empty means all.
	Tab string `json:"tab,omitempty"`
}

type ListTasksResponse struct {
	Tasks []Task `json:"tasks"`
	// Stats covers the whole category, regardless of tab.
	Stats TaskStats `json:"stats"`
}

type GetTaskRequest struct {
	Id string `json:"id"`
}

type GetTaskResponse struct {
	Task Task `json:"task"`
}

type AddTaskRequest struct {
	Category string    `json:"category"`
	Draft    TaskDraft `json:"draft"`
}

type AddTaskResponse struct {
	Task          Task           `json:"task"`
	Notifications []Notification `json:"notifications,omitempty"`
}

type EditTaskRequest struct {
	Id    string    `json:"id"`
	Draft TaskDraft `json:"draft"`
}

type EditTaskResponse struct {
	Task          Task           `json:"task"`
	Notifications []Notification `json:"notifications,omitempty"`
}

type DeleteTaskRequest struct {
	Id string `json:"id"`
}

type DeleteTaskResponse struct {
	Notifications []Notification `json:"notifications,omitempty"`
}

type ToggleTaskRequest struct {
	Id string `json:"id"`
	// Field is completed or needsAttention.
	Field string `json:"field"`
}

type ToggleTaskResponse struct {
	Task Task `json:"task"`
}

type AssignRandomTaskRequest struct {
	Category string `json:"category,omitempty"`
}

type AssignRandomTaskResponse struct {
	// Assigned is false when no pending task was found.
	Assigned      bool           `json:"assigned"`
	Task          *Task          `json:"task,omitempty"`
	Notifications []Notification `json:"notifications,omitempty"`
}

// GroceryService

type ListGroceryItemsRequest struct {
	// Tab is all, pending, bought or high-priority. Empty means all.
	Tab string `json:"tab,omitempty"`
}

type ListGroceryItemsResponse struct {
	Items []GroceryItem `json:"items"`
	Stats GroceryStats  `json:"stats"`
}

// AddGroceryItemRequest carries the add-item form. Empty category, priority
// and addedBy take the form defaults.
type AddGroceryItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Quantity string `json:"quantity"`
	Priority string `json:"priority,omitempty"`
	AddedBy  string `json:"addedBy,omitempty"`
}

type AddGroceryItemResponse struct {
	Item          GroceryItem    `json:"item"`
	Notifications []Notification `json:"notifications,omitempty"`
}

type ToggleBoughtRequest struct {
	Id string `json:"id"`
}

type ToggleBoughtResponse struct {
	Item GroceryItem `json:"item"`
}

type MarkBoughtRequest struct {
	Ids []string `json:"ids"`
}

type MarkBoughtResponse struct {
	Marked int `json:"marked"`
}

type ClearBoughtRequest struct{}

type ClearBoughtResponse struct {
	Removed int `json:"removed"`
}

// CarService

type ListCarsRequest struct{}

type ListCarsResponse struct {
	Cars []CarStatus `json:"cars"`
}

type GetCarRequest struct {
	Id string `json:"id"`
}

type GetCarResponse struct {
	Car CarStatus `json:"car"`
}

type AddCarRequest struct {
	Draft CarDraft `json:"draft"`
}

type AddCarResponse struct {
	Car           Car            `json:"car"`
	Notifications []Notification `json:"notifications,omitempty"`
}

// EditCarRequest replaces the car identified by Draft.Id.
type EditCarRequest struct {
	Draft CarDraft `json:"draft"`
}

type EditCarResponse struct {
	Car           Car            `json:"car"`
	Notifications []Notification `json:"notifications,omitempty"`
}

type DeleteCarRequest struct {
	Id string `json:"id"`
}

type DeleteCarResponse struct {
	Notifications []Notification `json:"notifications,omitempty"`
}

// DashboardService

type GetOverviewRequest struct{}

type GetOverviewResponse struct {
	Categories []Category `json:"categories"`
	// TotalTasks and CompletedTasks sum the category counters.
	TotalTasks     int            `json:"totalTasks"`
	CompletedTasks int            `json:"completedTasks"`
	Percent        int            `json:"percent"`
	Groceries      GroceryStats   `json:"groceries"`
	Leaderboard    []FamilyMember `json:"leaderboard"`
	CarAlerts      int            `json:"carAlerts"`
}

type AddCategoryRequest struct {
	Name string `json:"name"`
	// Icon defaults to home; unknown icons fall back to home.
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

type AddCategoryResponse struct {
	Category      Category       `json:"category"`
	Notifications []Notification `json:"notifications,omitempty"`
}
