package handler

import (
	"errors"
	"net/http"
	"strconv"

	"calltrack/internal/model"
	"calltrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type CallHandler struct {
	calls repository.CallStore
	tags  repository.TagStore
}

func NewCallHandler(calls repository.CallStore, tags repository.TagStore) *CallHandler {
	return &CallHandler{calls: calls, tags: tags}
}

type CreateCallRequest struct {
	Title  string `json:"title"`
	UserID uint   `json:"userId"`
	TagIDs []uint `json:"tagIds"`
}

func (r *CreateCallRequest) validate() []string {
	violations := validateCallTitle(r.Title)
	if r.UserID == 0 {
		violations = append(violations, "User ID must be a positive number")
	}
	return violations
}

// UpdateCallRequest distinguishes omitted fields (nil) from provided
// ones; an empty tagIds array clears all associations.
type UpdateCallRequest struct {
	Title  *string `json:"title"`
	TagIDs *[]uint `json:"tagIds"`
}

func (r *UpdateCallRequest) validate() []string {
	if r.Title == nil {
		return nil
	}
	return validateCallTitle(*r.Title)
}

func (h *CallHandler) GetAll(c *gin.Context) {
	calls, err := h.calls.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve calls"})
		return
	}

	response := make([]CallResponse, len(calls))
	for i := range calls {
		response[i] = toCallResponse(&calls[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *CallHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "Call not found")
	if !ok {
		return
	}

	call, err := h.calls.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCallNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Call not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve call"})
		}
		return
	}
	c.JSON(http.StatusOK, toCallResponse(call))
}

// Create persists a call and attaches whichever of the submitted tag ids
// resolve to existing tags.
func (h *CallHandler) Create(c *gin.Context) {
	var req CreateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": []string{"Invalid request body"}})
		return
	}
	if violations := req.validate(); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": violations})
		return
	}

	resolved := []uint{}
	if len(req.TagIDs) > 0 {
		var err error
		resolved, err = h.resolveTagIDs(c, req.TagIDs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to resolve tags"})
			return
		}
	}

	call := &model.Call{Title: req.Title, UserID: req.UserID}
	if err := h.calls.CreateWithTags(c.Request.Context(), call, resolved); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create call"})
		return
	}

	created, err := h.calls.GetByID(c.Request.Context(), call.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve call"})
		return
	}
	c.JSON(http.StatusCreated, toCallResponse(created))
}

// Update applies a partial update. tagIds omitted leaves associations
// untouched; empty clears them; non-empty replaces the whole set.
func (h *CallHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Call not found")
	if !ok {
		return
	}

	var req UpdateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": []string{"Invalid request body"}})
		return
	}
	if violations := req.validate(); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": violations})
		return
	}

	call, err := h.calls.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCallNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Call not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve call"})
		}
		return
	}

	if req.Title != nil {
		call.Title = *req.Title
	}

	var tagIDs *[]uint
	if req.TagIDs != nil {
		resolved, err := h.resolveTagIDs(c, *req.TagIDs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to resolve tags"})
			return
		}
		tagIDs = &resolved
	}

	if err := h.calls.UpdateWithTags(c.Request.Context(), call, tagIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update call"})
		return
	}

	updated, err := h.calls.GetByID(c.Request.Context(), call.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve call"})
		return
	}
	c.JSON(http.StatusOK, toCallResponse(updated))
}

type callTagsRequest struct {
	TagIDs []uint `json:"tagIds" binding:"required"`
}

// AddTags attaches the resolvable subset of the submitted tags;
// already-attached tags are no-ops.
func (h *CallHandler) AddTags(c *gin.Context) {
	id, ok := parseIDParam(c, "Call not found")
	if !ok {
		return
	}

	var req callTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": []string{"tagIds must be an array of tag ids"}})
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

	resolved, err := h.resolveTagIDs(c, req.TagIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to resolve tags"})
		return
	}
	if err := h.calls.AttachTags(c.Request.Context(), id, resolved); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to attach tags"})
		return
	}

	updated, err := h.calls.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve call"})
		return
	}
	c.JSON(http.StatusOK, toCallResponse(updated))
}

// RemoveTags detaches the given tags; absent tags are no-ops.
func (h *CallHandler) RemoveTags(c *gin.Context) {
	id, ok := parseIDParam(c, "Call not found")
	if !ok {
		return
	}

	var req callTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": []string{"tagIds must be an array of tag ids"}})
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

	if err := h.calls.DetachTags(c.Request.Context(), id, dedupeIDs(req.TagIDs)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to detach tags"})
		return
	}

	updated, err := h.calls.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve call"})
		return
	}
	c.JSON(http.StatusOK, toCallResponse(updated))
}

func (h *CallHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Call not found")
	if !ok {
		return
	}

	if err := h.calls.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrCallNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Call not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete call"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// resolveTagIDs maps submitted ids to the ids of tags that actually
// exist, deduped. Unknown ids are silently dropped.
func (h *CallHandler) resolveTagIDs(c *gin.Context, ids []uint) ([]uint, error) {
	tags, err := h.tags.GetByIDs(c.Request.Context(), dedupeIDs(ids))
	if err != nil {
		return nil, err
	}
	resolved := make([]uint, len(tags))
	for i := range tags {
		resolved[i] = tags[i].ID
	}
	return resolved, nil
}

// parseIDParam reads the :id path parameter. An unparseable or zero id
// can never resolve to a row, so it is reported as not-found.
func parseIDParam(c *gin.Context, notFound string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": notFound})
		return 0, false
	}
	return uint(id), true
}
