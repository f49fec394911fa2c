// Package docs registers the OpenAPI description served at /swagger/doc.json.
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
        "/expenses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "List expenses",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "date", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Record an expense",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/expenses/{id}/settle/{memberId}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Toggle a participant's settled flag",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/ledger/balances": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Get net balances",
                "parameters": [{"type": "string", "name": "currency", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ledger/settlement": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Get the settlement plan",
                "parameters": [{"type": "string", "name": "currency", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/members": {
            "get": {
                "produces": ["application/json"],
                "tags": ["members"],
                "summary": "List trip members",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["members"],
                "summary": "Add a trip member",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/rates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Get the rate table",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Merge rates into the table",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Trip Ledger API",
	Description:      "Shared-expense ledger and settlement engine for group trips",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
