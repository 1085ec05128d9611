// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o internal/docs
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
        "/accounts": {
            "get": {"produces": ["application/json"], "tags": ["accounts"], "summary": "List accounts", "responses": {"200": {"description": "Accounts and net worth"}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["accounts"], "summary": "Create an account", "responses": {"201": {"description": "Account created"}, "400": {"description": "Invalid input"}}}
        },
        "/accounts/{id}": {
            "delete": {"produces": ["application/json"], "tags": ["accounts"], "summary": "Delete an account", "parameters": [{"type": "string", "description": "Account ID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Account deleted"}, "404": {"description": "Account not found"}}}
        },
        "/transactions": {
            "get": {"produces": ["application/json"], "tags": ["transactions"], "summary": "List transactions", "parameters": [{"type": "string", "name": "category", "in": "query"}, {"type": "string", "name": "type", "in": "query"}, {"type": "string", "name": "search", "in": "query"}, {"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "page_size", "in": "query"}], "responses": {"200": {"description": "Transactions"}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["transactions"], "summary": "Create a transaction", "responses": {"201": {"description": "Transaction created"}, "400": {"description": "Invalid input"}}}
        },
        "/transactions/quick": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["transactions"], "summary": "Quick add a transaction", "responses": {"201": {"description": "Transaction created"}, "400": {"description": "Invalid input"}}}
        },
        "/transactions/recent": {
            "get": {"produces": ["application/json"], "tags": ["transactions"], "summary": "Recent transactions", "parameters": [{"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "Recent transactions"}}}
        },
        "/transactions/{id}": {
            "delete": {"produces": ["application/json"], "tags": ["transactions"], "summary": "Delete a transaction", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Transaction deleted"}, "404": {"description": "Transaction not found"}}}
        },
        "/budgets": {
            "get": {"produces": ["application/json"], "tags": ["budgets"], "summary": "Get budgets", "responses": {"200": {"description": "Budgets"}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["budgets"], "summary": "Create a budget", "responses": {"201": {"description": "Budget created"}, "400": {"description": "Invalid input"}}}
        },
        "/budgets/{id}/spend": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["budgets"], "summary": "Log spending", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Updated budget"}, "404": {"description": "Budget not found"}}}
        },
        "/budgets/{id}": {
            "delete": {"produces": ["application/json"], "tags": ["budgets"], "summary": "Delete a budget", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Budget deleted"}, "404": {"description": "Budget not found"}}}
        },
        "/goals": {
            "get": {"produces": ["application/json"], "tags": ["goals"], "summary": "Get goals", "responses": {"200": {"description": "Goals"}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["goals"], "summary": "Create a goal", "responses": {"201": {"description": "Goal created"}, "400": {"description": "Invalid input"}}}
        },
        "/goals/{id}/savings": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["goals"], "summary": "Add savings", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Updated goal"}, "404": {"description": "Goal not found"}}}
        },
        "/goals/{id}": {
            "delete": {"produces": ["application/json"], "tags": ["goals"], "summary": "Delete a goal", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Goal deleted"}, "404": {"description": "Goal not found"}}}
        },
        "/dashboard/metrics": {
            "get": {"produces": ["application/json"], "tags": ["dashboard"], "summary": "Dashboard metric cards", "responses": {"200": {"description": "Metric cards"}}}
        },
        "/dashboard/insights": {
            "get": {"produces": ["application/json"], "tags": ["dashboard"], "summary": "Financial health insights", "responses": {"200": {"description": "Insights"}}}
        },
        "/dashboard/chart": {
            "get": {"produces": ["application/json"], "tags": ["dashboard"], "summary": "Running balance chart", "responses": {"200": {"description": "Chart points"}}}
        },
        "/reports": {
            "get": {"produces": ["application/json"], "tags": ["reports"], "summary": "Period report", "parameters": [{"enum": ["monthly", "quarterly"], "type": "string", "name": "period", "in": "query"}], "responses": {"200": {"description": "Report"}, "400": {"description": "Invalid period"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "KeX-Pay API",
	Description:      "KeX-Pay is a personal finance dashboard: accounts, transactions, budgets, savings goals and the metrics derived from them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
