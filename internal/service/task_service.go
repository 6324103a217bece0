package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/records"
	"github.com/mmynk/homekeeper/internal/views"
	"github.com/mmynk/homekeeper/pkg/api"
	"github.com/mmynk/homekeeper/pkg/api/apiconnect"
)

// TaskService implements the Connect TaskService
type TaskService struct {
	apiconnect.UnimplementedTaskServiceHandler
	tasks *views.TaskView
}

// NewTaskService creates a new TaskService over the given view.
func NewTaskService(tasks *views.TaskView) *TaskService {
	return &TaskService{tasks: tasks}
}

// ListTasks returns the tasks of a category under a tab, with the category stats.
func (s *TaskService) ListTasks(ctx context.Context, req *connect.Request[api.ListTasksRequest]) (*connect.Response[api.ListTasksResponse], error) {
	slog.Info("ListTasks request received", "category", req.Msg.Category, "tab", req.Msg.Tab)

	tab, err := views.ParseTaskTab(req.Msg.Tab)
	if err != nil {
		return nil, invalidArgument(err)
	}

	tasks, err := s.tasks.List(ctx, req.Msg.Category, tab)
	if err != nil {
		slog.Error("ListTasks failed", "error", err)
		return nil, connectError(err)
	}
	stats, err := s.tasks.Stats(ctx, req.Msg.Category)
	if err != nil {
		slog.Error("ListTasks failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("ListTasks successful", "count", len(tasks))

	return connect.NewResponse(&api.ListTasksResponse{
		Tasks: toAPITasks(tasks),
		Stats: toAPITaskStats(stats),
	}), nil
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(ctx context.Context, req *connect.Request[api.GetTaskRequest]) (*connect.Response[api.GetTaskResponse], error) {
	slog.Info("GetTask request received", "task_id", req.Msg.Id)

	task, err := s.tasks.Get(ctx, req.Msg.Id)
	if err != nil {
		slog.Error("GetTask failed", "task_id", req.Msg.Id, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetTaskResponse{Task: toAPITask(task)}), nil
}

// AddTask submits the new-task dialog of a category.
func (s *TaskService) AddTask(ctx context.Context, req *connect.Request[api.AddTaskRequest]) (*connect.Response[api.AddTaskResponse], error) {
	slog.Info("AddTask request received",
		"category", req.Msg.Category,
		"name", req.Msg.Draft.Name,
		"assignees_count", len(req.Msg.Draft.AssignedTo),
	)

	ctx, rec := collect(ctx)
	var added models.Task
	dlg := s.tasks.NewDialog(req.Msg.Category, func(t models.Task) { added = t })
	dlg.OpenWith(taskDraft(req.Msg.Draft))

	if err := dlg.Submit(ctx); err != nil {
		slog.Error("AddTask failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Task created", "task_id", added.ID)

	return connect.NewResponse(&api.AddTaskResponse{
		Task:          toAPITask(added),
		Notifications: toAPINotifications(rec.All()),
	}), nil
}

// EditTask rewrites a task's editable fields.
func (s *TaskService) EditTask(ctx context.Context, req *connect.Request[api.EditTaskRequest]) (*connect.Response[api.EditTaskResponse], error) {
	slog.Info("EditTask request received", "task_id", req.Msg.Id)

	ctx, rec := collect(ctx)
	task, err := s.tasks.Edit(ctx, req.Msg.Id, taskDraft(req.Msg.Draft))
	if err != nil {
		slog.Error("EditTask failed", "task_id", req.Msg.Id, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Task updated", "task_id", task.ID)

	return connect.NewResponse(&api.EditTaskResponse{
		Task:          toAPITask(task),
		Notifications: toAPINotifications(rec.All()),
	}), nil
}

// DeleteTask removes a task. Unknown IDs succeed.
func (s *TaskService) DeleteTask(ctx context.Context, req *connect.Request[api.DeleteTaskRequest]) (*connect.Response[api.DeleteTaskResponse], error) {
	slog.Info("DeleteTask request received", "task_id", req.Msg.Id)

	ctx, rec := collect(ctx)
	if err := s.tasks.Delete(ctx, req.Msg.Id); err != nil {
		slog.Error("DeleteTask failed", "task_id", req.Msg.Id, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.DeleteTaskResponse{
		Notifications: toAPINotifications(rec.All()),
	}), nil
}

// ToggleTask flips the completed or needsAttention flag of a task.
func (s *TaskService) ToggleTask(ctx context.Context, req *connect.Request[api.ToggleTaskRequest]) (*connect.Response[api.ToggleTaskResponse], error) {
	slog.Info("ToggleTask request received", "task_id", req.Msg.Id, "field", req.Msg.Field)

	var (
		task models.Task
		err  error
	)
	switch records.Field(req.Msg.Field) {
	case records.FieldCompleted:
		task, err = s.tasks.ToggleComplete(ctx, req.Msg.Id)
	case records.FieldNeedsAttention:
		task, err = s.tasks.ToggleAttention(ctx, req.Msg.Id)
	default:
		return nil, invalidArgument(fmt.Errorf("unknown task field %q", req.Msg.Field))
	}
	if err != nil {
		slog.Error("ToggleTask failed", "task_id", req.Msg.Id, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.ToggleTaskResponse{Task: toAPITask(task)}), nil
}

// AssignRandomTask gives a random pending task to a random family member.
func (s *TaskService) AssignRandomTask(ctx context.Context, req *connect.Request[api.AssignRandomTaskRequest]) (*connect.Response[api.AssignRandomTaskResponse], error) {
	slog.Info("AssignRandomTask request received", "category", req.Msg.Category)

	ctx, rec := collect(ctx)
	task, ok, err := s.tasks.AssignRandom(ctx, req.Msg.Category)
	if err != nil {
		slog.Error("AssignRandomTask failed", "error", err)
		return nil, connectError(err)
	}

	resp := &api.AssignRandomTaskResponse{
		Assigned:      ok,
		Notifications: toAPINotifications(rec.All()),
	}
	if ok {
		t := toAPITask(task)
		resp.Task = &t
		slog.Info("Task assigned", "task_id", task.ID, "member", task.AssignedTo[0])
	}
	return connect.NewResponse(resp), nil
}
