// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/main.go -o docs
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
        "/api/v1/mutual_funds": {
            "get": {
                "produces": ["application/json"],
                "tags": ["funds"],
                "summary": "List mutual funds",
                "parameters": [
                    {"type": "string", "description": "column [asc|desc]", "name": "order_by", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entities.MutualFundResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/entities.ErrorResponse"}}
                }
            }
        },
        "/api/v1/mutual_funds/{fund_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["funds"],
                "summary": "Get a mutual fund",
                "parameters": [
                    {"type": "integer", "description": "Fund ID", "name": "fund_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.MutualFundResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/entities.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/entities.ErrorResponse"}}
                }
            }
        },
        "/api/v1/fund_allocations/{fund_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["funds"],
                "summary": "List fund allocations",
                "parameters": [
                    {"type": "integer", "description": "Fund ID", "name": "fund_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entities.FundAllocationResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/entities.ErrorResponse"}}
                }
            }
        },
        "/api/v1/fund_overlaps": {
            "get": {
                "produces": ["application/json"],
                "tags": ["funds"],
                "summary": "List fund overlaps",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entities.FundOverlapResponse"}}}
                }
            }
        },
        "/api/v1/investment_overview": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Investment overview",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.InvestmentOverview"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/entities.ErrorResponse"}}
                }
            }
        },
        "/api/v1/performance_summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Performance summary",
                "parameters": [
                    {"type": "string", "description": "1M, 3M, 6M, 1Y, 3Y or MAX", "name": "timeframe", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.PerformanceReport"}}
                }
            }
        },
        "/api/v1/sector_allocation": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Sector allocation",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entities.SectorAllocation"}}}
                }
            }
        },
        "/api/v1/fund_overlap_data": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Fund overlap graph",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.OverlapGraph"}}
                }
            }
        },
        "/api/v1/charts/performance": {
            "get": {
                "produces": ["image/png"],
                "tags": ["charts"],
                "summary": "Performance chart",
                "parameters": [
                    {"type": "string", "description": "1M, 3M, 6M, 1Y, 3Y or MAX", "name": "timeframe", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/entities.ErrorResponse"}}
                }
            }
        },
        "/api/v1/charts/sectors": {
            "get": {
                "produces": ["image/png"],
                "tags": ["charts"],
                "summary": "Sector allocation chart",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/entities.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Get application health status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/health.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/health.HealthResponse"}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Get application readiness status",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Get application liveness status",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "entities.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "entities.MutualFundResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "investment_date": {"type": "string"},
                "amount_invested": {"type": "number"},
                "isn": {"type": "string"},
                "nav_at_investment": {"type": "number"},
                "returns_percentage": {"type": "number"}
            }
        },
        "entities.FundAllocationResponse": {
            "type": "object",
            "properties": {
                "fund_id": {"type": "integer"},
                "sector": {"type": "string"},
                "sector_percentage": {"type": "number"},
                "stock": {"type": "string"},
                "stock_percentage": {"type": "number"},
                "market_cap": {"type": "string"},
                "sector_amount": {"type": "number"},
                "sub_sector": {"type": "string"}
            }
        },
        "entities.FundOverlapResponse": {
            "type": "object",
            "properties": {
                "fund_1_id": {"type": "integer"},
                "fund_2_id": {"type": "integer"},
                "overlap_percentage": {"type": "number"}
            }
        },
        "entities.SchemePerformance": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "returns": {"type": "number"}
            }
        },
        "entities.InvestmentOverview": {
            "type": "object",
            "properties": {
                "current_investment_value": {"type": "number"},
                "initial_investment_value": {"type": "number"},
                "initial_investment_growth": {"type": "number"},
                "best_performing_scheme": {"$ref": "#/definitions/entities.SchemePerformance"},
                "worst_performing_scheme": {"$ref": "#/definitions/entities.SchemePerformance"}
            }
        },
        "entities.PerformancePoint": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "entities.PerformanceReport": {
            "type": "object",
            "properties": {
                "current_investment_value": {"type": "number"},
                "initial_investment_value": {"type": "number"},
                "history": {"type": "array", "items": {"$ref": "#/definitions/entities.PerformancePoint"}},
                "message": {"type": "string"}
            }
        },
        "entities.SubAllocation": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "percentage": {"type": "number"},
                "amount": {"type": "number"}
            }
        },
        "entities.SectorAllocation": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "amount": {"type": "number"},
                "percentage": {"type": "number"},
                "sub_allocations": {"type": "array", "items": {"$ref": "#/definitions/entities.SubAllocation"}}
            }
        },
        "entities.GraphNode": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            }
        },
        "entities.GraphLink": {
            "type": "object",
            "properties": {
                "source": {"type": "integer"},
                "target": {"type": "integer"},
                "value": {"type": "number"}
            }
        },
        "entities.OverlapGraph": {
            "type": "object",
            "properties": {
                "nodes": {"type": "array", "items": {"$ref": "#/definitions/entities.GraphNode"}},
                "links": {"type": "array", "items": {"$ref": "#/definitions/entities.GraphLink"}}
            }
        },
        "health.CheckResult": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "component": {"type": "string"},
                "message": {"type": "string"},
                "error": {"type": "string"},
                "duration": {"type": "integer"},
                "timestamp": {"type": "string"},
                "metadata": {"type": "object", "additionalProperties": true}
            }
        },
        "health.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "version": {"type": "string"},
                "checks": {"type": "object", "additionalProperties": {"$ref": "#/definitions/health.CheckResult"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Fund Insight API",
	Description:      "Read-only reporting over a mutual fund portfolio: holdings, overview, performance, sector allocation and fund overlap.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
