// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/documents/cmr": {
            "get": {"tags": ["cmr"], "summary": "List processed CMR documents", "produces": ["application/json"], "responses": {"200": {"description": "Processed documents"}}}
        },
        "/documents/cmr/extract": {
            "post": {
                "tags": ["cmr"],
                "summary": "Extract a CMR waybill",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [{"type": "file", "description": "CMR document (PDF)", "name": "file", "in": "formData", "required": true}],
                "responses": {
                    "200": {"description": "Document extracted and valid"},
                    "400": {"description": "Missing, empty or non-PDF file"},
                    "413": {"description": "File too large"},
                    "422": {"description": "Extracted data failed validation"}
                }
            }
        },
        "/documents/cmr/validate": {
            "post": {"tags": ["cmr"], "summary": "Validate a CMR document", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "Validation verdict"}, "400": {"description": "Malformed document"}}}
        },
        "/documents/cmr/export": {
            "get": {
                "tags": ["cmr"],
                "summary": "Export processed CMR documents",
                "parameters": [{"type": "string", "default": "csv", "description": "csv or xlsx", "name": "format", "in": "query"}],
                "responses": {"200": {"description": "Export file"}, "400": {"description": "Unsupported format"}}
            }
        },
        "/documents/cmr/health": {
            "get": {"tags": ["cmr"], "summary": "CMR processing health", "responses": {"200": {"description": "Service health"}}}
        },
        "/documents/cmr/{id}": {
            "get": {"tags": ["cmr"], "summary": "Get a processed CMR document", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Processed document"}, "404": {"description": "Document not found"}}}
        },
        "/documents/cmr/{id}/download": {
            "get": {"tags": ["cmr"], "summary": "Presigned URL of the archived original", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Presigned URL"}, "404": {"description": "Document or archive not found"}}}
        },
        "/fleets": {
            "get": {"tags": ["fleets"], "summary": "List fleets", "responses": {"200": {"description": "List of fleets"}}},
            "post": {"tags": ["fleets"], "summary": "Create a fleet", "responses": {"201": {"description": "Fleet created"}, "400": {"description": "Validation error"}}}
        },
        "/fleets/{id}": {
            "get": {"tags": ["fleets"], "summary": "Get fleet by ID", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Fleet details"}, "404": {"description": "Fleet not found"}}},
            "put": {"tags": ["fleets"], "summary": "Update a fleet", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Fleet updated"}, "404": {"description": "Fleet not found"}}},
            "delete": {"tags": ["fleets"], "summary": "Delete a fleet", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Fleet deleted"}, "404": {"description": "Fleet not found"}}}
        },
        "/fleets/{id}/transporters": {
            "post": {"tags": ["fleets"], "summary": "Add a transporter to a fleet", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Transporter added"}}}
        },
        "/fleets/{id}/vehicles": {
            "post": {"tags": ["fleets"], "summary": "Add a vehicle to a fleet", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Vehicle added"}}}
        },
        "/fleets/{id}/stats": {
            "get": {"tags": ["fleets"], "summary": "Fleet membership statistics", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Fleet statistics"}}}
        },
        "/vehicles": {
            "get": {"tags": ["vehicles"], "summary": "List vehicles", "responses": {"200": {"description": "List of vehicles"}}},
            "post": {"tags": ["vehicles"], "summary": "Register a vehicle", "responses": {"201": {"description": "Vehicle created"}, "409": {"description": "Plate already registered"}}}
        },
        "/vehicles/{id}": {
            "get": {"tags": ["vehicles"], "summary": "Get vehicle by ID", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Vehicle details"}}},
            "put": {"tags": ["vehicles"], "summary": "Update a vehicle", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Vehicle updated"}}},
            "delete": {"tags": ["vehicles"], "summary": "Delete a vehicle", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Vehicle deleted"}}}
        },
        "/vehicles/{id}/status": {
            "patch": {"tags": ["vehicles"], "summary": "Change vehicle status", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Status changed"}}}
        },
        "/vehicles/{id}/fleet": {
            "patch": {"tags": ["vehicles"], "summary": "Move a vehicle into a fleet", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Vehicle assigned"}}},
            "delete": {"tags": ["vehicles"], "summary": "Remove a vehicle from its fleet", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Vehicle removed from fleet"}}}
        },
        "/vehicles/{id}/transporter": {
            "patch": {"tags": ["vehicles"], "summary": "Assign a driver to a vehicle", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Driver assigned"}}},
            "delete": {"tags": ["vehicles"], "summary": "Release the driver of a vehicle", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Driver released"}}}
        },
        "/transporters": {
            "get": {"tags": ["transporters"], "summary": "List transporters", "responses": {"200": {"description": "List of transporters"}}},
            "post": {"tags": ["transporters"], "summary": "Register a transporter", "responses": {"201": {"description": "Transporter created"}, "409": {"description": "Email already registered"}}}
        },
        "/transporters/{id}": {
            "get": {"tags": ["transporters"], "summary": "Get transporter by ID", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Transporter details"}}}
        },
        "/transporters/{id}/fleet": {
            "patch": {"tags": ["transporters"], "summary": "Move a transporter into a fleet", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Transporter assigned"}}},
            "delete": {"tags": ["transporters"], "summary": "Remove a transporter from its fleet", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Transporter removed from fleet"}}}
        },
        "/transporters/{id}/availability": {
            "get": {"tags": ["transporters"], "summary": "Check whether a transporter can take work", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Availability"}}}
        },
        "/transports": {
            "get": {"tags": ["transports"], "summary": "List transport units", "responses": {"200": {"description": "List of transports"}}},
            "post": {"tags": ["transports"], "summary": "Create a transport unit", "responses": {"201": {"description": "Transport created"}, "409": {"description": "Code already exists"}}}
        },
        "/transports/{id}": {
            "put": {"tags": ["transports"], "summary": "Update a transport unit", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Transport updated"}, "400": {"description": "Validation error or no fields"}}}
        },
        "/routes/distance": {
            "post": {"tags": ["routes"], "summary": "Great-circle distance between two points", "responses": {"200": {"description": "Distance in kilometres"}, "400": {"description": "Coordinates out of range"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Flota API",
	Description:      "Fleet management and CMR waybill processing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
