// Package docs registers the swagger spec served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and receive a session cookie",
                "parameters": [{"name": "credentials", "in": "body", "required": true, "schema": {"type": "object", "properties": {"username": {"type": "string"}, "password": {"type": "string"}}}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials"}}
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Clear the session cookie",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/profile": {
            "get": {
                "tags": ["Auth"],
                "summary": "Identity of the authenticated caller",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthenticated"}}
            }
        },
        "/calls": {
            "get": {
                "tags": ["Calls"],
                "summary": "List calls with tags and tasks",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Calls"],
                "summary": "Create a call, optionally attaching tags",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failure"}}
            }
        },
        "/calls/{id}": {
            "get": {"tags": ["Calls"], "summary": "Fetch one call", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["Calls"], "summary": "Partially update a call; tagIds replaces the tag set", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["Calls"], "summary": "Delete a call, cascading its tasks", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/calls/{id}/tags": {
            "post": {"tags": ["Calls"], "summary": "Attach tags (idempotent)", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Calls"], "summary": "Detach tags (idempotent)", "responses": {"200": {"description": "OK"}}}
        },
        "/tags": {
            "get": {"tags": ["Tags"], "summary": "List tags", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Tags"], "summary": "Create a tag (admin only)", "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}}
        },
        "/tags/{id}": {
            "get": {"tags": ["Tags"], "summary": "Fetch one tag", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["Tags"], "summary": "Update a tag (admin only)", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "delete": {"tags": ["Tags"], "summary": "Delete a tag, detaching it from all calls (admin only)", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/tasks": {
            "get": {"tags": ["Tasks"], "summary": "List tasks", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Tasks"], "summary": "Create a task attached to a call", "responses": {"201": {"description": "Created"}, "404": {"description": "Call not found"}}}
        },
        "/tasks/{id}": {
            "get": {"tags": ["Tasks"], "summary": "Fetch one task", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["Tasks"], "summary": "Update title or status", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid status"}}},
            "delete": {"tags": ["Tasks"], "summary": "Delete a task", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Calltrack API",
	Description:      "API for tracking calls, tags and follow-up tasks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
