package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/homekeeper/pkg/api"
)

// TaskServiceName is the fully-qualified name of the TaskService.
const TaskServiceName = "homekeeper.v1.TaskService"

// Procedure paths of the TaskService.
const (
	TaskServiceListTasksProcedure        = "/homekeeper.v1.TaskService/ListTasks"
	TaskServiceGetTaskProcedure          = "/homekeeper.v1.TaskService/GetTask"
	TaskServiceAddTaskProcedure          = "/homekeeper.v1.TaskService/AddTask"
	TaskServiceEditTaskProcedure         = "/homekeeper.v1.TaskService/EditTask"
	TaskServiceDeleteTaskProcedure       = "/homekeeper.v1.TaskService/DeleteTask"
	TaskServiceToggleTaskProcedure       = "/homekeeper.v1.TaskService/ToggleTask"
	TaskServiceAssignRandomTaskProcedure = "/homekeeper.v1.TaskService/AssignRandomTask"
)

// TaskServiceHandler serves the category task lists.
type TaskServiceHandler interface {
	ListTasks(context.Context, *connect.Request[api.ListTasksRequest]) (*connect.Response[api.ListTasksResponse], error)
	GetTask(context.Context, *connect.Request[api.GetTaskRequest]) (*connect.Response[api.GetTaskResponse], error)
	AddTask(context.Context, *connect.Request[api.AddTaskRequest]) (*connect.Response[api.AddTaskResponse], error)
	EditTask(context.Context, *connect.Request[api.EditTaskRequest]) (*connect.Response[api.EditTaskResponse], error)
	DeleteTask(context.Context, *connect.Request[api.DeleteTaskRequest]) (*connect.Response[api.DeleteTaskResponse], error)
	ToggleTask(context.Context, *connect.Request[api.ToggleTaskRequest]) (*connect.Response[api.ToggleTaskResponse], error)
	AssignRandomTask(context.Context, *connect.Request[api.AssignRandomTaskRequest]) (*connect.Response[api.AssignRandomTaskResponse], error)
}

// NewTaskServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTaskServiceHandler(svc TaskServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	listTasksHandler := connect.NewUnaryHandler(
		TaskServiceListTasksProcedure,
		svc.ListTasks,
		opts...,
	)
	getTaskHandler := connect.NewUnaryHandler(
		TaskServiceGetTaskProcedure,
		svc.GetTask,
		opts...,
	)
	addTaskHandler := connect.NewUnaryHandler(
		TaskServiceAddTaskProcedure,
		svc.AddTask,
		opts...,
	)
	editTaskHandler := connect.NewUnaryHandler(
		TaskServiceEditTaskProcedure,
		svc.EditTask,
		opts...,
	)
	deleteTaskHandler := connect.NewUnaryHandler(
		TaskServiceDeleteTaskProcedure,
		svc.DeleteTask,
		opts...,
	)
	toggleTaskHandler := connect.NewUnaryHandler(
		TaskServiceToggleTaskProcedure,
		svc.ToggleTask,
		opts...,
	)
	assignRandomTaskHandler := connect.NewUnaryHandler(
		TaskServiceAssignRandomTaskProcedure,
		svc.AssignRandomTask,
		opts...,
	)
	return "/" + TaskServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TaskServiceListTasksProcedure:
			listTasksHandler.ServeHTTP(w, r)
		case TaskServiceGetTaskProcedure:
			getTaskHandler.ServeHTTP(w, r)
		case TaskServiceAddTaskProcedure:
			addTaskHandler.ServeHTTP(w, r)
		case TaskServiceEditTaskProcedure:
			editTaskHandler.ServeHTTP(w, r)
		case TaskServiceDeleteTaskProcedure:
			deleteTaskHandler.ServeHTTP(w, r)
		case TaskServiceToggleTaskProcedure:
			toggleTaskHandler.ServeHTTP(w, r)
		case TaskServiceAssignRandomTaskProcedure:
			assignRandomTaskHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedTaskServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTaskServiceHandler struct{}

func (UnimplementedTaskServiceHandler) ListTasks(context.Context, *connect.Request[api.ListTasksRequest]) (*connect.Response[api.ListTasksResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.TaskService.ListTasks is not implemented"))
}

func (UnimplementedTaskServiceHandler) GetTask(context.Context, *connect.Request[api.GetTaskRequest]) (*connect.Response[api.GetTaskResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.TaskService.GetTask is not implemented"))
}

func (UnimplementedTaskServiceHandler) AddTask(context.Context, *connect.Request[api.AddTaskRequest]) (*connect.Response[api.AddTaskResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.TaskService.AddTask is not implemented"))
}

func (UnimplementedTaskServiceHandler) EditTask(context.Context, *connect.Request[api.EditTaskRequest]) (*connect.Response[api.EditTaskResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.TaskService.EditTask is not implemented"))
}

func (UnimplementedTaskServiceHandler) DeleteTask(context.Context, *connect.Request[api.DeleteTaskRequest]) (*connect.Response[api.DeleteTaskResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.TaskService.DeleteTask is not implemented"))
}

func (UnimplementedTaskServiceHandler) ToggleTask(context.Context, *connect.Request[api.ToggleTaskRequest]) (*connect.Response[api.ToggleTaskResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.TaskService.ToggleTask is not implemented"))
}

func (UnimplementedTaskServiceHandler) AssignRandomTask(context.Context, *connect.Request[api.AssignRandomTaskRequest]) (*connect.Response[api.AssignRandomTaskResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("homekeeper.v1.TaskService.AssignRandomTask is not implemented"))
}

// TaskServiceClient is a client for the TaskService.
type TaskServiceClient interface {
	ListTasks(context.Context, *connect.Request[api.ListTasksRequest]) (*connect.Response[api.ListTasksResponse], error)
	GetTask(context.Context, *connect.Request[api.GetTaskRequest]) (*connect.Response[api.GetTaskResponse], error)
	AddTask(context.Context, *connect.Request[api.AddTaskRequest]) (*connect.Response[api.AddTaskResponse], error)
	EditTask(context.Context, *connect.Request[api.EditTaskRequest]) (*connect.Response[api.EditTaskResponse], error)
	DeleteTask(context.Context, *connect.Request[api.DeleteTaskRequest]) (*connect.Response[api.DeleteTaskResponse], error)
	ToggleTask(context.Context, *connect.Request[api.ToggleTaskRequest]) (*connect.Response[api.ToggleTaskResponse], error)
	AssignRandomTask(context.Context, *connect.Request[api.AssignRandomTaskRequest]) (*connect.Response[api.AssignRandomTaskResponse], error)
}

// NewTaskServiceClient constructs a client for the TaskService. baseURL is the
// server root, for example http://localhost:8080.
func NewTaskServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TaskServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &taskServiceClient{
		listTasks: connect.NewClient[api.ListTasksRequest, api.ListTasksResponse](
			httpClient,
			baseURL+TaskServiceListTasksProcedure,
			opts...,
		),
		getTask: connect.NewClient[api.GetTaskRequest, api.GetTaskResponse](
			httpClient,
			baseURL+TaskServiceGetTaskProcedure,
			opts...,
		),
		addTask: connect.NewClient[api.AddTaskRequest, api.AddTaskResponse](
			httpClient,
			baseURL+TaskServiceAddTaskProcedure,
			opts...,
		),
		editTask: connect.NewClient[api.EditTaskRequest, api.EditTaskResponse](
			httpClient,
			baseURL+TaskServiceEditTaskProcedure,
			opts...,
		),
		deleteTask: connect.NewClient[api.DeleteTaskRequest, api.DeleteTaskResponse](
			httpClient,
			baseURL+TaskServiceDeleteTaskProcedure,
			opts...,
		),
		toggleTask: connect.NewClient[api.ToggleTaskRequest, api.ToggleTaskResponse](
			httpClient,
			baseURL+TaskServiceToggleTaskProcedure,
			opts...,
		),
		assignRandomTask: connect.NewClient[api.AssignRandomTaskRequest, api.AssignRandomTaskResponse](
			httpClient,
			baseURL+TaskServiceAssignRandomTaskProcedure,
			opts...,
		),
	}
}

type taskServiceClient struct {
	listTasks        *connect.Client[api.ListTasksRequest, api.ListTasksResponse]
	getTask          *connect.Client[api.GetTaskRequest, api.GetTaskResponse]
	addTask          *connect.Client[api.AddTaskRequest, api.AddTaskResponse]
	editTask         *connect.Client[api.EditTaskRequest, api.EditTaskResponse]
	deleteTask       *connect.Client[api.DeleteTaskRequest, api.DeleteTaskResponse]
	toggleTask       *connect.Client[api.ToggleTaskRequest, api.ToggleTaskResponse]
	assignRandomTask *connect.Client[api.AssignRandomTaskRequest, api.AssignRandomTaskResponse]
}

func (c *taskServiceClient) ListTasks(ctx context.Context, req *connect.Request[api.ListTasksRequest]) (*connect.Response[api.ListTasksResponse], error) {
	return c.listTasks.CallUnary(ctx, req)
}

func (c *taskServiceClient) GetTask(ctx context.Context, req *connect.Request[api.GetTaskRequest]) (*connect.Response[api.GetTaskResponse], error) {
	return c.getTask.CallUnary(ctx, req)
}

func (c *taskServiceClient) AddTask(ctx context.Context, req *connect.Request[api.AddTaskRequest]) (*connect.Response[api.AddTaskResponse], error) {
	return c.addTask.CallUnary(ctx, req)
}

func (c *taskServiceClient) EditTask(ctx context.Context, req *connect.Request[api.EditTaskRequest]) (*connect.Response[api.EditTaskResponse], error) {
	return c.editTask.CallUnary(ctx, req)
}

func (c *taskServiceClient) DeleteTask(ctx context.Context, req *connect.Request[api.DeleteTaskRequest]) (*connect.Response[api.DeleteTaskResponse], error) {
	return c.deleteTask.CallUnary(ctx, req)
}

func (c *taskServiceClient) ToggleTask(ctx context.Context, req *connect.Request[api.ToggleTaskRequest]) (*connect.Response[api.ToggleTaskResponse], error) {
	return c.toggleTask.CallUnary(ctx, req)
}

func (c *taskServiceClient) AssignRandomTask(ctx context.Context, req *connect.Request[api.AssignRandomTaskRequest]) (*connect.Response[api.AssignRandomTaskResponse], error) {
	return c.assignRandomTask.CallUnary(ctx, req)
}
