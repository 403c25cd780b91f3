package handler

import (
	"errors"
	"net/http"

	"calltrack/internal/model"
	"calltrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tags repository.TagStore
}

func NewTagHandler(tags repository.TagStore) *TagHandler {
	return &TagHandler{tags: tags}
}

type CreateTagRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (r *CreateTagRequest) validate() []string {
	var violations []string
	violations = append(violations, validateTagName(r.Name)...)
	violations = append(violations, validateTagDescription(r.Description)...)
	violations = append(violations, validateTagColor(r.Color)...)
	return violations
}

type UpdateTagRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

func (r *UpdateTagRequest) validate() []string {
	var violations []string
	if r.Name != nil {
		violations = append(violations, validateTagName(*r.Name)...)
	}
	if r.Description != nil {
		violations = append(violations, validateTagDescription(*r.Description)...)
	}
	if r.Color != nil {
		violations = append(violations, validateTagColor(*r.Color)...)
	}
	return violations
}

func (h *TagHandler) GetAll(c *gin.Context) {
	tags, err := h.tags.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve tags"})
		return
	}

	response := make([]TagResponse, len(tags))
	for i := range tags {
		response[i] = toTagResponse(&tags[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *TagHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "Tag not found")
	if !ok {
		return
	}

	tag, err := h.tags.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tag not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve tag"})
		}
		return
	}
	c.JSON(http.StatusOK, toTagResponse(tag))
}

func (h *TagHandler) Create(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": []string{"Invalid request body"}})
		return
	}
	if violations := req.validate(); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": violations})
		return
	}

	tag := &model.Tag{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}
	if err := h.tags.Create(c.Request.Context(), tag); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create tag"})
		return
	}
	c.JSON(http.StatusCreated, toTagResponse(tag))
}

// Update merges the provided fields into the existing tag.
func (h *TagHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Tag not found")
	if !ok {
		return
	}

	var req UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": []string{"Invalid request body"}})
		return
	}
	if violations := req.validate(); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": violations})
		return
	}

	tag, err := h.tags.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tag not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve tag"})
		}
		return
	}

	if req.Name != nil {
		tag.Name = *req.Name
	}
	if req.Description != nil {
		tag.Description = *req.Description
	}
	if req.Color != nil {
		tag.Color = *req.Color
	}

	if err := h.tags.Update(c.Request.Context(), tag); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update tag"})
		return
	}
	c.JSON(http.StatusOK, toTagResponse(tag))
}

// Delete detaches the tag from every call before removing it.
func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Tag not found")
	if !ok {
		return
	}

	if err := h.tags.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tag not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete tag"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
