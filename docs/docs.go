// Package docs registers the OpenAPI description of the helpdesk API with swag.
// The template mirrors the handler annotations; regenerate it after changing them.
package docs

//go:generate swag init -d .. -g cmd/helpdesk/main.go -o . --outputTypes go

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ticket": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tickets"],
                "summary": "Create a ticket",
                "parameters": [
                    {"description": "Ticket", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ticket.CreateTicketRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"allOf": [{"$ref": "#/definitions/utils.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/ticket.CreateTicketResponse"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/ticket/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tickets"],
                "summary": "Get a ticket with its comments",
                "parameters": [
                    {"type": "integer", "description": "Ticket ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/utils.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.TicketDetailDTO"}}}]}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tickets"],
                "summary": "Change the state of a ticket",
                "parameters": [
                    {"type": "integer", "description": "Ticket ID", "name": "id", "in": "path", "required": true},
                    {"description": "New state", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ticket.UpdateTicketStateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/ticket/{id}/comment": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tickets"],
                "summary": "Comment on an unclosed ticket",
                "parameters": [
                    {"type": "integer", "description": "Ticket ID", "name": "id", "in": "path", "required": true},
                    {"description": "Comment", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ticket.AddCommentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"allOf": [{"$ref": "#/definitions/utils.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/ticket.AddCommentResponse"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CommentDTO": {
            "type": "object",
            "properties": {
                "created": {"type": "string"},
                "email": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "dto.TicketDetailDTO": {
            "type": "object",
            "properties": {
                "comments": {"type": "array", "items": {"$ref": "#/definitions/dto.CommentDTO"}},
                "created": {"type": "string"},
                "description": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "state": {"type": "string", "enum": ["OPEN", "ANSWERED", "WAITING", "CLOSED"]},
                "updated": {"type": "string"}
            }
        },
        "ticket.AddCommentRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "ticket.AddCommentResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer"}}
        },
        "ticket.CreateTicketRequest": {
            "type": "object",
            "required": ["description", "name"],
            "properties": {
                "description": {"type": "string"},
                "name": {"type": "string", "maxLength": 200}
            }
        },
        "ticket.CreateTicketResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer"}}
        },
        "ticket.UpdateTicketStateRequest": {
            "type": "object",
            "properties": {"state": {"type": "string"}}
        },
        "utils.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"}
            }
        },
        "utils.ErrorBody": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Helpdesk API",
	Description:      "Support tickets with a fixed state workflow and comments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
