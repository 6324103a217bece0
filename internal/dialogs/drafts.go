package dialogs

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mmynk/homekeeper/internal/models"
)

const (
	DefaultTaskPoints = 10
	MinTaskPoints     = 1
	MaxTaskPoints     = 100
	DefaultFuelLevel  = 100

	requiredFields = "please fill in the required fields"
)

// TaskDraft is the form state of the new-task dialog.
type TaskDraft struct {
	Name        string
	Description string
	AssignedTo  []string
	Priority    models.Priority
	// DueDate is YYYY-MM-DD or empty.
	DueDate string
	Points  int
}

func NewTaskDraft() TaskDraft {
	return TaskDraft{Priority: models.PriorityMedium, Points: DefaultTaskPoints}
}

// TaskDraftFrom seeds an edit dialog from an existing task.
func TaskDraftFrom(task models.Task) TaskDraft {
	return TaskDraft{
		Name:        task.Name,
		Description: task.Description,
		AssignedTo:  slices.Clone(task.AssignedTo),
		Priority:    task.Priority,
		DueDate:     models.FormatDatePtr(task.DueDate),
		Points:      task.Points,
	}
}

// ToggleMember adds member to the assignees, or removes it if present.
func (d *TaskDraft) ToggleMember(member string) {
	if i := slices.Index(d.AssignedTo, member); i >= 0 {
		d.AssignedTo = slices.Delete(slices.Clone(d.AssignedTo), i, i+1)
		return
	}
	d.AssignedTo = append(slices.Clone(d.AssignedTo), member)
}

func (d TaskDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return invalid("name", "task name is required")
	}
	if len(d.assignees()) == 0 {
		return invalid("assignedTo", "assign the task to at least one person")
	}
	if _, err := models.ParsePriority(string(d.Priority)); err != nil {
		return invalid("priority", err.Error())
	}
	if d.Points < MinTaskPoints || d.Points > MaxTaskPoints {
		return invalid("points", "points must be between 1 and 100")
	}
	if _, err := optionalDate(d.DueDate); err != nil {
		return invalid("dueDate", err.Error())
	}
	return nil
}

// Task builds the record for category. The id is left for the store to assign.
func (d TaskDraft) Task(category string) (models.Task, error) {
	if err := d.Validate(); err != nil {
		return models.Task{}, err
	}
	due, _ := optionalDate(d.DueDate)
	return models.Task{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Category:    category,
		AssignedTo:  d.assignees(),
		Priority:    d.Priority,
		DueDate:     due,
		Points:      d.Points,
	}, nil
}

// assignees trims the names and drops blanks and repeats, keeping first-seen order.
func (d TaskDraft) assignees() []string {
	out := make([]string, 0, len(d.AssignedTo))
	for _, name := range d.AssignedTo {
		name = strings.TrimSpace(name)
		if name != "" && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

// ItemDraft is the form state of the add-grocery-item dialog.
type ItemDraft struct {
	Name     string
	Category models.GroceryCategory
	Quantity string
	Priority models.GroceryPriority
	AddedBy  string
}

// NewItemDraft defaults AddedBy to the first family member.
func NewItemDraft(family []string) ItemDraft {
	d := ItemDraft{Category: models.GroceryFood, Priority: models.GroceryPriorityLow}
	if len(family) > 0 {
		d.AddedBy = family[0]
	}
	return d
}

func (d ItemDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return invalid("name", "item name is required")
	}
	if strings.TrimSpace(d.Quantity) == "" {
		return invalid("quantity", "quantity is required")
	}
	if _, err := models.ParseGroceryCategory(string(d.Category)); err != nil {
		return invalid("category", err.Error())
	}
	if _, err := models.ParseGroceryPriority(string(d.Priority)); err != nil {
		return invalid("priority", err.Error())
	}
	return nil
}

func (d ItemDraft) Item() (models.GroceryItem, error) {
	if err := d.Validate(); err != nil {
		return models.GroceryItem{}, err
	}
	return models.GroceryItem{
		Name:     strings.TrimSpace(d.Name),
		Category: d.Category,
		Quantity: strings.TrimSpace(d.Quantity),
		Priority: d.Priority,
		AddedBy:  d.AddedBy,
	}, nil
}

// CarDraft is the form state of the add and edit car dialogs.
// ID is empty for new cars and carries the edited car's id otherwise.
type CarDraft struct {
	ID             string
	Name           string
	Plate          string
	Owner          string
	Year           string
	Color          string
	Mileage        string
	NextService    string
	NextInspection string
	FuelLevel      int
}

func NewCarDraft() CarDraft {
	return CarDraft{FuelLevel: DefaultFuelLevel}
}

// CarDraftFrom seeds an edit dialog from an existing car.
func CarDraftFrom(car models.Car) CarDraft {
	d := CarDraft{
		ID:             car.ID,
		Name:           car.Name,
		Plate:          car.Plate,
		Owner:          car.Owner,
		Color:          car.Color,
		NextService:    models.FormatDate(car.NextService),
		NextInspection: models.FormatDate(car.NextInspection),
		FuelLevel:      car.FuelLevel,
	}
	if car.Year != nil {
		d.Year = strconv.Itoa(*car.Year)
	}
	if car.Mileage != nil {
		d.Mileage = strconv.Itoa(*car.Mileage)
	}
	return d
}

func (d CarDraft) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"name", d.Name},
		{"plate", d.Plate},
		{"owner", d.Owner},
	} {
		if strings.TrimSpace(f.value) == "" {
			return invalid(f.name, requiredFields)
		}
	}
	if d.FuelLevel < 0 || d.FuelLevel > 100 {
		return invalid("fuelLevel", "fuel level must be between 0 and 100")
	}
	if _, err := optionalInt(d.Year); err != nil {
		return invalid("year", "year must be a number")
	}
	if _, err := optionalInt(d.Mileage); err != nil {
		return invalid("mileage", "mileage must be a number")
	}
	if _, err := optionalDate(d.NextService); err != nil {
		return invalid("nextService", err.Error())
	}
	if _, err := optionalDate(d.NextInspection); err != nil {
		return invalid("nextInspection", err.Error())
	}
	return nil
}

func (d CarDraft) Car() (models.Car, error) {
	if err := d.Validate(); err != nil {
		return models.Car{}, err
	}
	year, _ := optionalInt(d.Year)
	mileage, _ := optionalInt(d.Mileage)
	service, _ := optionalDate(d.NextService)
	inspection, _ := optionalDate(d.NextInspection)

	car := models.Car{
		ID:        d.ID,
		Name:      strings.TrimSpace(d.Name),
		Plate:     strings.TrimSpace(d.Plate),
		Owner:     strings.TrimSpace(d.Owner),
		Year:      year,
		Color:     strings.TrimSpace(d.Color),
		Mileage:   mileage,
		FuelLevel: d.FuelLevel,
	}
	if service != nil {
		car.NextService = *service
	}
	if inspection != nil {
		car.NextInspection = *inspection
	}
	return car, nil
}

// CategoryDraft is the form state of the new-area dialog.
type CategoryDraft struct {
	Name        string
	Icon        models.Icon
	Description string
}

func NewCategoryDraft() CategoryDraft {
	return CategoryDraft{Icon: models.IconHome}
}

func (d CategoryDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return invalid("name", "area name is required")
	}
	return nil
}

// Category builds the record with zeroed counters.
func (d CategoryDraft) Category() (models.Category, error) {
	if err := d.Validate(); err != nil {
		return models.Category{}, err
	}
	return models.Category{
		Name:        strings.TrimSpace(d.Name),
		Icon:        models.ParseIcon(string(d.Icon)),
		Description: strings.TrimSpace(d.Description),
	}, nil
}

func optionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := models.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func optionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil, strconv.ErrSyntax
	}
	return &n, nil
}
