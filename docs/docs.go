// Package docs holds the OpenAPI description served at /swagger/.
// Regenerate with: swag init -g cmd/server/main.go
package docs

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
        "/auth/token": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange an API key for a bearer token",
                "parameters": [
                    {"description": "Address and API key", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.TokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.TokenResponse"}},
                    "400": {"description": "error.code: bad_request, invalid_address", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: invalid_credentials", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Register an event",
                "parameters": [
                    {"description": "Event", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.RegisterEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.RegisterEventSuccessResponse"}},
                    "400": {"description": "error.code: bad_request, name_too_short, name_too_long, invalid_image_url, start_before_end, event_already_over", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: event_already_registered", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event",
                "parameters": [
                    {"type": "string", "description": "Event name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.RegisterEventSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events/{name}/badges": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["badges"],
                "summary": "Mint a badge",
                "parameters": [
                    {"type": "string", "description": "Event name", "name": "name", "in": "path", "required": true},
                    {"description": "Attendee and lateness", "name": "badge", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.MintBadgeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.BadgeSuccessResponse"}},
                    "400": {"description": "error.code: bad_request, event_not_started, event_already_over, invalid_address", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized (missing token)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "403": {"description": "error.code: unauthorized (not the owner)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: badge_already_issued", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events/{name}/badges/{attendee}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["badges"],
                "summary": "Get a badge by event",
                "parameters": [
                    {"type": "string", "description": "Event name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Attendee address", "name": "attendee", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.BadgeSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/attendees/{attendee}/badges/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["badges"],
                "summary": "Get a badge by attendee",
                "parameters": [
                    {"type": "string", "description": "Attendee address", "name": "attendee", "in": "path", "required": true},
                    {"type": "string", "description": "Event name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.BadgeSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contract"],
                "summary": "Get the counter",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.CountSuccessResponse"}},
                    "404": {"description": "error.code: not_found (not instantiated)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.BadgeSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.BadgeRecord"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.CountSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.GetCountResponse"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.MintBadgeRequest": {
            "type": "object",
            "properties": {
                "attendee": {"type": "string"},
                "was_late": {"type": "boolean"}
            }
        },
        "controllers.RegisterEventRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "end_time": {"type": "integer"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "start_time": {"type": "integer"}
            }
        },
        "controllers.RegisterEventSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.EventRecord"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.TokenRequest": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "api_key": {"type": "string"}
            }
        },
        "controllers.TokenResponse": {
            "type": "object",
            "properties": {
                "expires_in": {"type": "integer"},
                "token": {"type": "string"},
                "token_type": {"type": "string"}
            }
        },
        "domain.BadgeRecord": {
            "type": "object",
            "properties": {
                "was_late": {"type": "boolean"}
            }
        },
        "domain.EventRecord": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "end_time": {"type": "integer"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "owner": {"type": "string"},
                "start_time": {"type": "integer"}
            }
        },
        "domain.GetCountResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer token from POST /auth/token",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "POAP Registry API",
	Description:      "Proof-of-attendance events and badges.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
