// Package docs registers the ShopBot OpenAPI document with swag so
// http-swagger can serve it. Regenerate with:
//
//	swag init -g internal/server/server.go -o internal/docs --parseInternal
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
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/api/v1/entities/register": {
            "post": {
                "tags": ["entities"],
                "summary": "Register a player",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Entity"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/entities/resolve": {
            "get": {
                "tags": ["entities"],
                "summary": "Resolve an external identity",
                "parameters": [{"in": "query", "name": "external_identity", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Entity"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/entities/{entityID}/name": {
            "put": {
                "tags": ["entities"],
                "summary": "Rename an entity",
                "parameters": [
                    {"in": "path", "name": "entityID", "type": "integer", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.RenameRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/entities/{entityID}/status": {
            "get": {
                "tags": ["entities"],
                "summary": "Entity status",
                "parameters": [{"in": "path", "name": "entityID", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.EntityStatus"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/entities/{entityID}/holdings": {
            "get": {
                "tags": ["entities"],
                "summary": "List holdings",
                "parameters": [{"in": "path", "name": "entityID", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Holding"}}}
                }
            }
        },
        "/api/v1/entities/{entityID}/move": {
            "post": {
                "tags": ["entities"],
                "summary": "Move to a location",
                "parameters": [
                    {"in": "path", "name": "entityID", "type": "integer", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.MoveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.EntityStatus"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/entities/{entityID}/purchase": {
            "post": {
                "tags": ["entities"],
                "summary": "Purchase",
                "parameters": [
                    {"in": "path", "name": "entityID", "type": "integer", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.PurchaseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PurchaseResult"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/entities/{entityID}/say": {
            "post": {
                "tags": ["entities"],
                "summary": "Say something",
                "parameters": [
                    {"in": "path", "name": "entityID", "type": "integer", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.SayRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ChatResult"}}
                }
            }
        },
        "/api/v1/locations": {
            "get": {
                "tags": ["locations"],
                "summary": "List locations",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Location"}}}
                }
            }
        },
        "/api/v1/locations/{locationID}": {
            "get": {
                "tags": ["locations"],
                "summary": "Describe a location",
                "parameters": [{"in": "path", "name": "locationID", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LocationDescription"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/locations/{locationID}/entities": {
            "get": {
                "tags": ["locations"],
                "summary": "Who is here",
                "parameters": [{"in": "path", "name": "locationID", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Entity"}}}
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness check",
                "security": [],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}}
            }
        },
        "/readyz": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness check",
                "security": [],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Entity": {
            "type": "object",
            "properties": {
                "entity_id": {"type": "integer"},
                "external_identity": {"type": "string"},
                "name": {"type": "string"},
                "location_id": {"type": "integer"},
                "is_shopkeeper": {"type": "boolean"},
                "money": {"type": "string"}
            }
        },
        "domain.Item": {
            "type": "object",
            "properties": {
                "item_id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "domain.Holding": {
            "type": "object",
            "properties": {
                "item": {"$ref": "#/definitions/domain.Item"},
                "quantity": {"type": "integer"}
            }
        },
        "domain.InventoryRecord": {
            "type": "object",
            "properties": {
                "inventory_record_id": {"type": "integer"},
                "entity_id": {"type": "integer"},
                "item_id": {"type": "integer"},
                "quantity": {"type": "integer"},
                "price": {"type": "string"}
            }
        },
        "domain.ForSaleListing": {
            "type": "object",
            "properties": {
                "record": {"$ref": "#/definitions/domain.InventoryRecord"},
                "item": {"$ref": "#/definitions/domain.Item"}
            }
        },
        "domain.Location": {
            "type": "object",
            "properties": {
                "location_id": {"type": "integer"},
                "name": {"type": "string"},
                "is_start": {"type": "boolean"}
            }
        },
        "domain.LocationDescription": {
            "type": "object",
            "properties": {
                "location": {"$ref": "#/definitions/domain.Location"},
                "listings": {"type": "array", "items": {"$ref": "#/definitions/domain.ForSaleListing"}},
                "nothing_for_sale": {"type": "boolean"}
            }
        },
        "domain.EntityStatus": {
            "type": "object",
            "properties": {
                "entity_id": {"type": "integer"},
                "name": {"type": "string"},
                "money": {"type": "string"},
                "location_id": {"type": "integer"},
                "location_name": {"type": "string"},
                "holdings": {"type": "array", "items": {"$ref": "#/definitions/domain.Holding"}}
            }
        },
        "domain.PurchaseResult": {
            "type": "object",
            "properties": {
                "buyer_id": {"type": "integer"},
                "inventory_record_id": {"type": "integer"},
                "item": {"$ref": "#/definitions/domain.Item"},
                "quantity": {"type": "integer"},
                "unit_price": {"type": "string"},
                "total": {"type": "string"},
                "money_remaining": {"type": "string"},
                "stock_remaining": {"type": "integer"}
            }
        },
        "domain.ChatResult": {
            "type": "object",
            "properties": {
                "location_id": {"type": "integer"},
                "recipients": {"type": "integer"},
                "delivered": {"type": "integer"},
                "failed": {"type": "integer"}
            }
        },
        "handler.RegisterRequest": {
            "type": "object",
            "properties": {
                "external_identity": {"type": "string"},
                "display_name": {"type": "string"}
            }
        },
        "handler.RenameRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "handler.MoveRequest": {
            "type": "object",
            "properties": {"destination_location_id": {"type": "integer"}}
        },
        "handler.PurchaseRequest": {
            "type": "object",
            "properties": {
                "inventory_record_id": {"type": "integer"},
                "quantity": {"type": "integer"}
            }
        },
        "handler.SayRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "handler.SuccessResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ShopBot API",
	Description:      "Shared world shop economy: players, locations, shop stock and chat.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
