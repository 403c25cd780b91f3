package handler

import (
	"errors"
	"net/http"

	"calltrack/internal/model"
	"calltrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	tasks repository.TaskStore
	calls repository.CallStore
}

func NewTaskHandler(tasks repository.TaskStore, calls repository.CallStore) *TaskHandler {
	return &TaskHandler{tasks: tasks, calls: calls}
}

type CreateTaskRequest struct {
	Title  string `json:"title"`
	CallID uint   `json:"callId"`
}

type UpdateTaskRequest struct {
	Title  *string `json:"title"`
	Status *string `json:"status"`
}

func (r *UpdateTaskRequest) validate() []string {
	var violations []string
	if r.Title != nil {
		violations = append(violations, validateTaskTitle(*r.Title)...)
	}
	if r.Status != nil && !model.ValidTaskStatus(model.TaskStatus(*r.Status)) {
		violations = append(violations, "Status must be one of: Open, In Progress, Completed")
	}
	return violations
}

func (h *TaskHandler) GetAll(c *gin.Context) {
	tasks, err := h.tasks.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = toTaskResponse(&tasks[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "Task not found")
	if !ok {
		return
	}

	task, err := h.tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve task"})
		}
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

// GetByCall lists the tasks owned by the call in the path.
func (h *TaskHandler) GetByCall(c *gin.Context) {
	id, ok := parseIDParam(c, "Call not found")
	if !ok {
		return
	}

	if _, err := h.calls.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrCallNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Call not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve call"})
		}
		return
	}

	tasks, err := h.tasks.GetByCallID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = toTaskResponse(&tasks[i])
	}
	c.JSON(http.StatusOK, response)
}

// Create attaches a new task to an existing call. A task cannot exist
// without one, so an unresolvable callId is a 404.
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": []string{"Invalid request body"}})
		return
	}
	if violations := validateTaskTitle(req.Title); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": violations})
		return
	}
	if req.CallID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Call ID must be provided"})
		return
	}

	if _, err := h.calls.GetByID(c.Request.Context(), req.CallID); err != nil {
		if errors.Is(err, repository.ErrCallNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Call not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve call"})
		}
		return
	}

	task := &model.Task{
		Title:  req.Title,
		Status: model.TaskStatusOpen,
		CallID: req.CallID,
	}
	if err := h.tasks.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create task"})
		return
	}
	c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Update merges title and status; status is constrained to the three
// lifecycle states but any transition between them is allowed.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Task not found")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": []string{"Invalid request body"}})
		return
	}
	if violations := req.validate(); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": violations})
		return
	}

	task, err := h.tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve task"})
		}
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Status != nil {
		task.Status = model.TaskStatus(*req.Status)
	}

	if err := h.tasks.Update(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update task"})
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Task not found")
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete task"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
