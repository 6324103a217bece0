package service

import (
	"github.com/mmynk/homekeeper/internal/calculator"
	"github.com/mmynk/homekeeper/internal/dialogs"
	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/notify"
	"github.com/mmynk/homekeeper/pkg/api"
)

func toAPITask(t models.Task) api.Task {
	assigned := t.AssignedTo
	if assigned == nil {
		assigned = []string{}
	}
	return api.Task{
		Id:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		Category:       t.Category,
		AssignedTo:     assigned,
		Priority:       string(t.Priority),
		DueDate:        models.FormatDatePtr(t.DueDate),
		Points:         t.Points,
		Completed:      t.Completed,
		NeedsAttention: t.NeedsAttention,
		Comments:       t.Comments,
	}
}

func toAPITasks(tasks []models.Task) []api.Task {
	out := make([]api.Task, len(tasks))
	for i, t := range tasks {
		out[i] = toAPITask(t)
	}
	return out
}

func toAPITaskStats(s calculator.TaskStats) api.TaskStats {
	return api.TaskStats{
		Total:          s.Total,
		Pending:        s.Pending,
		Completed:      s.Completed,
		NeedsAttention: s.NeedsAttention,
		Percent:        s.Percent(),
	}
}

// taskDraft fills a form draft from the request; zero fields keep the form defaults.
func taskDraft(in api.TaskDraft) dialogs.TaskDraft {
	d := dialogs.NewTaskDraft()
	d.Name = in.Name
	d.Description = in.Description
	d.AssignedTo = in.AssignedTo
	d.DueDate = in.DueDate
	if in.Priority != "" {
		d.Priority = models.Priority(in.Priority)
	}
	if in.Points != 0 {
		d.Points = in.Points
	}
	return d
}

func toAPIGroceryItem(g models.GroceryItem) api.GroceryItem {
	return api.GroceryItem{
		Id:       g.ID,
		Name:     g.Name,
		Category: string(g.Category),
		Quantity: g.Quantity,
		Priority: string(g.Priority),
		Bought:   g.Bought,
		AddedBy:  g.AddedBy,
	}
}

func toAPIGroceryItems(items []models.GroceryItem) []api.GroceryItem {
	out := make([]api.GroceryItem, len(items))
	for i, item := range items {
		out[i] = toAPIGroceryItem(item)
	}
	return out
}

func toAPIGroceryStats(s calculator.GroceryStats) api.GroceryStats {
	return api.GroceryStats{
		Total:        s.Total,
		Pending:      s.Pending,
		Bought:       s.Bought,
		HighPriority: s.HighPriority,
		Percent:      s.Percent(),
	}
}

func itemDraft(in *api.AddGroceryItemRequest, family []string) dialogs.ItemDraft {
	d := dialogs.NewItemDraft(family)
	d.Name = in.Name
	d.Quantity = in.Quantity
	if in.Category != "" {
		d.Category = models.GroceryCategory(in.Category)
	}
	if in.Priority != "" {
		d.Priority = models.GroceryPriority(in.Priority)
	}
	if in.AddedBy != "" {
		d.AddedBy = in.AddedBy
	}
	return d
}

func toAPICar(c models.Car) api.Car {
	return api.Car{
		Id:             c.ID,
		Name:           c.Name,
		Plate:          c.Plate,
		Owner:          c.Owner,
		Year:           c.Year,
		Color:          c.Color,
		Mileage:        c.Mileage,
		NextService:    models.FormatDate(c.NextService),
		NextInspection: models.FormatDate(c.NextInspection),
		FuelLevel:      c.FuelLevel,
	}
}

func toAPICarStatus(s calculator.CarStatus) api.CarStatus {
	out := api.CarStatus{
		Car:              toAPICar(s.Car),
		ServiceStatus:    string(s.ServiceStatus),
		InspectionStatus: string(s.InspectionStatus),
		DaysToService:    s.DaysToService,
		DaysToInspection: s.DaysToInspection,
		LowFuel:          s.LowFuel,
	}
	for _, a := range s.Alerts {
		out.Alerts = append(out.Alerts, api.CarAlert{
			Kind:   string(a.Kind),
			Status: string(a.Status),
			Days:   a.Days,
		})
	}
	return out
}

// carDraft lays the request fields over base. An unset fuel level keeps base's.
func carDraft(base dialogs.CarDraft, in api.CarDraft) dialogs.CarDraft {
	d := base
	d.ID = in.Id
	d.Name = in.Name
	d.Plate = in.Plate
	d.Owner = in.Owner
	d.Year = in.Year
	d.Color = in.Color
	d.Mileage = in.Mileage
	d.NextService = in.NextService
	d.NextInspection = in.NextInspection
	if in.FuelLevel != nil {
		d.FuelLevel = *in.FuelLevel
	}
	return d
}

func toAPICategory(c models.Category, percent int) api.Category {
	return api.Category{
		Id:             c.ID,
		Name:           c.Name,
		Icon:           string(c.Icon),
		Description:    c.Description,
		TaskCount:      c.TaskCount,
		CompletedCount: c.CompletedCount,
		Percent:        percent,
	}
}

func toAPIFamily(members []models.FamilyMember) []api.FamilyMember {
	out := make([]api.FamilyMember, len(members))
	for i, m := range members {
		out[i] = api.FamilyMember{Name: m.Name, Points: m.Points, Avatar: m.Avatar}
	}
	return out
}

func toAPINotifications(ns []notify.Notification) []api.Notification {
	if len(ns) == 0 {
		return nil
	}
	out := make([]api.Notification, len(ns))
	for i, n := range ns {
		out[i] = api.Notification{Level: string(n.Level), Title: n.Title, Message: n.Message}
	}
	return out
}
