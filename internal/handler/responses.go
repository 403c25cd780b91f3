package handler

import (
	"time"

	"calltrack/internal/model"
)

type TagResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TaskResponse struct {
	ID        uint             `json:"id"`
	Title     string           `json:"title"`
	Status    model.TaskStatus `json:"status"`
	CallID    uint             `json:"callId"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type CallResponse struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	UserID    uint           `json:"userId"`
	Tags      []TagResponse  `json:"tags"`
	Tasks     []TaskResponse `json:"tasks"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func toTagResponse(tag *model.Tag) TagResponse {
	return TagResponse{
		ID:          tag.ID,
		Name:        tag.Name,
		Description: tag.Description,
		Color:       tag.Color,
		CreatedAt:   tag.CreatedAt,
		UpdatedAt:   tag.UpdatedAt,
	}
}

func toTaskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Status:    task.Status,
		CallID:    task.CallID,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

func toCallResponse(call *model.Call) CallResponse {
	tags := make([]TagResponse, len(call.Tags))
	for i := range call.Tags {
		tags[i] = toTagResponse(&call.Tags[i])
	}
	tasks := make([]TaskResponse, len(call.Tasks))
	for i := range call.Tasks {
		tasks[i] = toTaskResponse(&call.Tasks[i])
	}
	return CallResponse{
		ID:        call.ID,
		Title:     call.Title,
		UserID:    call.UserID,
		Tags:      tags,
		Tasks:     tasks,
		CreatedAt: call.CreatedAt,
		UpdatedAt: call.UpdatedAt,
	}
}
