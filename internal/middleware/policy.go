package middleware

import "calltrack/internal/model"

// Operation names used by the role allow-list.
const (
	OpCallsRead   = "calls:read"
	OpCallsWrite  = "calls:write"
	OpTagsRead    = "tags:read"
	OpTagsCreate  = "tags:create"
	OpTagsUpdate  = "tags:update"
	OpTagsDelete  = "tags:delete"
	OpTasksRead   = "tasks:read"
	OpTasksWrite  = "tasks:write"
	OpProfileRead = "profile:read"
)

// operationRoles maps each protected operation to the roles allowed to
// perform it. Tag mutation is restricted to admins; everything else is
// open to any authenticated account.
var operationRoles = map[string][]string{
	OpCallsRead:   {model.RoleAdmin, model.RoleUser},
	OpCallsWrite:  {model.RoleAdmin, model.RoleUser},
	OpTagsRead:    {model.RoleAdmin, model.RoleUser},
	OpTagsCreate:  {model.RoleAdmin},
	OpTagsUpdate:  {model.RoleAdmin},
	OpTagsDelete:  {model.RoleAdmin},
	OpTasksRead:   {model.RoleAdmin, model.RoleUser},
	OpTasksWrite:  {model.RoleAdmin, model.RoleUser},
	OpProfileRead: {model.RoleAdmin, model.RoleUser},
}
