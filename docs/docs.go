// Package docs registers the Swagger 2.0 document served at /swagger/*.
// Keep it in step with the handler annotations when routes change.
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
		"/logs": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"logs"
				],
				"summary": "List study days",
				"description": "Paginated history, newest first. Filter by an inclusive date range.",
				"parameters": [
					{
						"type": "string",
						"format": "date",
						"description": "First date (YYYY-MM-DD)",
						"name": "from",
						"in": "query"
					},
					{
						"type": "string",
						"format": "date",
						"description": "Last date (YYYY-MM-DD)",
						"name": "to",
						"in": "query"
					},
					{
						"maximum": 100,
						"minimum": 1,
						"type": "integer",
						"default": 20,
						"description": "Results per page (1-100)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Cursor from previous response's next_cursor",
						"name": "cursor",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.DailyLogListResponse"
						}
					},
					"422": {
						"description": "Invalid query parameters",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"logs"
				],
				"summary": "Save a study day",
				"description": "Store planned vs. actual work for a date and return the day analysis. A second log for the same date replaces the first.",
				"parameters": [
					{
						"description": "Study day",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.CreateDailyLogRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Stored log with analysis",
						"schema": {
							"$ref": "#/definitions/domain.SaveDailyLogResponse"
						}
					},
					"400": {
						"description": "Invalid JSON body",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"422": {
						"description": "Invalid fields",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/logs/{date}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"logs"
				],
				"summary": "Get a study day",
				"parameters": [
					{
						"type": "string",
						"format": "date",
						"example": "2024-01-15",
						"description": "Calendar date",
						"name": "date",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.DailyLogResponse"
						}
					},
					"400": {
						"description": "Invalid date",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"404": {
						"description": "No log for date",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/analysis/day": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"analysis"
				],
				"summary": "Analyze a day without saving it",
				"parameters": [
					{
						"description": "Day text and self-ratings",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.AnalyzeDayRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.DayAnalysis"
						}
					},
					"400": {
						"description": "Invalid JSON body",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"422": {
						"description": "Invalid fields",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/analysis/trend": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"analysis"
				],
				"summary": "Multi-day trend",
				"parameters": [
					{
						"type": "integer",
						"default": 7,
						"minimum": 1,
						"maximum": 365,
						"description": "Number of most recent logs",
						"name": "days",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.TrendResponse"
						}
					},
					"400": {
						"description": "Invalid days",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/analysis/balance": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"analysis"
				],
				"summary": "Topical balance",
				"parameters": [
					{
						"type": "integer",
						"default": 7,
						"minimum": 1,
						"maximum": 365,
						"description": "Number of most recent logs",
						"name": "days",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.BalanceSummary"
						}
					},
					"400": {
						"description": "Invalid days",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/analysis/depth/ai": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"analysis"
				],
				"summary": "AI depth profile",
				"parameters": [
					{
						"type": "integer",
						"default": 14,
						"minimum": 1,
						"maximum": 365,
						"description": "Number of most recent logs",
						"name": "days",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.DepthProfile"
						}
					},
					"400": {
						"description": "Invalid days",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/analysis/depth/dsa": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"analysis"
				],
				"summary": "DSA depth profile",
				"parameters": [
					{
						"type": "integer",
						"default": 14,
						"minimum": 1,
						"maximum": 365,
						"description": "Number of most recent logs",
						"name": "days",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.DepthProfile"
						}
					},
					"400": {
						"description": "Invalid days",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/analysis/weekly": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"analysis"
				],
				"summary": "Weekly report preview",
				"parameters": [
					{
						"type": "integer",
						"default": 7,
						"minimum": 1,
						"maximum": 365,
						"description": "Number of most recent logs",
						"name": "days",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.WeeklyReport"
						}
					},
					"400": {
						"description": "Invalid days",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/weekly/run": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"weekly"
				],
				"summary": "Run the weekly verdict now",
				"description": "Analyzes the last seven logs, stores the verdict and sends it to the notification channel.",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.WeeklyRunResponse"
						}
					},
					"404": {
						"description": "No logs to review",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/weekly": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"weekly"
				],
				"summary": "Stored weekly verdicts",
				"parameters": [
					{
						"maximum": 100,
						"minimum": 1,
						"type": "integer",
						"default": 10,
						"description": "Number of verdicts (1-100)",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.WeeklyVerdictResponse"
							}
						}
					},
					"400": {
						"description": "Invalid limit",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/streak": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"check-in"
				],
				"summary": "Logging streak",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.StreakSummary"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/reminder/run": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"check-in"
				],
				"summary": "Run the daily check-in now",
				"description": "Sends the streak reminder unless today is already logged.",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.ReminderResult"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/insights": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"insights"
				],
				"summary": "Weekly report with a coaching note",
				"description": "Builds the deterministic weekly report and asks the LLM for a short coaching note on it.",
				"parameters": [
					{
						"type": "integer",
						"default": 7,
						"minimum": 1,
						"maximum": 365,
						"description": "Number of most recent logs",
						"name": "days",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.InsightsResponse"
						}
					},
					"400": {
						"description": "Invalid days",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"502": {
						"description": "LLM request failed",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"503": {
						"description": "LLM service unavailable",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		},
		"/insights/feedback": {
			"post": {
				"consumes": [
					"application/json"
				],
				"tags": [
					"insights"
				],
				"summary": "Rate a coaching note",
				"parameters": [
					{
						"description": "Feedback request",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.FeedbackRequest"
						}
					}
				],
				"responses": {
					"204": {
						"description": "Feedback recorded"
					},
					"400": {
						"description": "Invalid JSON body",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"422": {
						"description": "Invalid fields",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/problem.Problem"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"problem.FieldError": {
			"type": "object",
			"properties": {
				"field": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"problem.Problem": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"status": {
					"type": "integer"
				},
				"detail": {
					"type": "string"
				},
				"instance": {
					"type": "string"
				},
				"errors": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/problem.FieldError"
					}
				}
			}
		},
		"domain.CreateDailyLogRequest": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string",
					"example": "2024-01-15",
					"description": "Calendar date (YYYY-MM-DD)"
				},
				"planned_tasks": {
					"type": "string",
					"description": "Newline-separated planned tasks"
				},
				"actual_tasks": {
					"type": "string",
					"description": "Newline-separated completed tasks"
				},
				"energy": {
					"type": "integer",
					"minimum": 1,
					"maximum": 10,
					"example": 5
				},
				"clarity": {
					"type": "integer",
					"minimum": 1,
					"maximum": 10,
					"example": 5
				},
				"reflection": {
					"type": "string"
				}
			},
			"required": [
				"date",
				"energy",
				"clarity"
			]
		},
		"domain.AnalyzeDayRequest": {
			"type": "object",
			"properties": {
				"planned_tasks": {
					"type": "string"
				},
				"actual_tasks": {
					"type": "string"
				},
				"energy": {
					"type": "integer",
					"minimum": 1,
					"maximum": 10
				},
				"clarity": {
					"type": "integer",
					"minimum": 1,
					"maximum": 10
				}
			},
			"required": [
				"energy",
				"clarity"
			]
		},
		"domain.DailyLogResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"date": {
					"type": "string",
					"example": "2024-01-15"
				},
				"planned_tasks": {
					"type": "string"
				},
				"actual_tasks": {
					"type": "string"
				},
				"energy": {
					"type": "integer"
				},
				"clarity": {
					"type": "integer"
				},
				"reflection": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.DayAnalysis": {
			"type": "object",
			"properties": {
				"completion_ratio": {
					"type": "number",
					"example": 0.5
				},
				"productivity_score": {
					"type": "number",
					"example": 0.5
				},
				"burnout_flag": {
					"type": "string",
					"enum": [
						"LOW",
						"MODERATE",
						"HIGH"
					],
					"example": "MODERATE"
				},
				"gaps": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"risk_flags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"domain.SaveDailyLogResponse": {
			"type": "object",
			"properties": {
				"log": {
					"$ref": "#/definitions/domain.DailyLogResponse"
				},
				"analysis": {
					"$ref": "#/definitions/domain.DayAnalysis"
				}
			}
		},
		"domain.PaginationResponse": {
			"type": "object",
			"properties": {
				"next_cursor": {
					"type": "string"
				},
				"has_more": {
					"type": "boolean"
				}
			}
		},
		"domain.DailyLogListResponse": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.DailyLogResponse"
					}
				},
				"pagination": {
					"$ref": "#/definitions/domain.PaginationResponse"
				}
			}
		},
		"domain.TrendSummary": {
			"type": "object",
			"properties": {
				"days_analyzed": {
					"type": "integer"
				},
				"avg_completion": {
					"type": "number"
				},
				"avg_energy": {
					"type": "number"
				},
				"avg_clarity": {
					"type": "number"
				},
				"burnout_risk": {
					"type": "string",
					"enum": [
						"LOW",
						"MODERATE",
						"HIGH"
					],
					"example": "MODERATE"
				},
				"consistency": {
					"type": "string",
					"enum": [
						"GOOD",
						"POOR"
					]
				}
			}
		},
		"domain.TrendResponse": {
			"type": "object",
			"properties": {
				"days": {
					"type": "integer",
					"example": 7
				},
				"trend": {
					"$ref": "#/definitions/domain.TrendSummary"
				}
			}
		},
		"domain.BalanceSummary": {
			"type": "object",
			"properties": {
				"days_analyzed": {
					"type": "integer"
				},
				"coverage": {
					"type": "object",
					"additionalProperties": {
						"type": "integer"
					}
				},
				"risks": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"domain.DepthProfile": {
			"type": "object",
			"properties": {
				"level_score": {
					"type": "object",
					"additionalProperties": {
						"type": "integer"
					}
				},
				"dominant_level": {
					"type": "integer"
				},
				"warnings": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"domain.WeeklyVerdict": {
			"type": "object",
			"properties": {
				"verdicts": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"recovery": {
					"type": "string"
				}
			}
		},
		"domain.WindowInfo": {
			"type": "object",
			"properties": {
				"days": {
					"type": "integer"
				},
				"from": {
					"type": "string",
					"format": "date-time"
				},
				"to": {
					"type": "string",
					"format": "date-time"
				},
				"count": {
					"type": "integer"
				}
			}
		},
		"domain.WeeklyReport": {
			"type": "object",
			"properties": {
				"window": {
					"$ref": "#/definitions/domain.WindowInfo"
				},
				"trend": {
					"$ref": "#/definitions/domain.TrendSummary"
				},
				"balance": {
					"$ref": "#/definitions/domain.BalanceSummary"
				},
				"ai_depth": {
					"$ref": "#/definitions/domain.DepthProfile"
				},
				"dsa_depth": {
					"$ref": "#/definitions/domain.DepthProfile"
				},
				"verdict": {
					"$ref": "#/definitions/domain.WeeklyVerdict"
				}
			}
		},
		"domain.WeeklyVerdictResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"week_start": {
					"type": "string",
					"example": "2024-01-08"
				},
				"verdict_text": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.WeeklyRunResponse": {
			"type": "object",
			"properties": {
				"record": {
					"$ref": "#/definitions/domain.WeeklyVerdictResponse"
				},
				"report": {
					"$ref": "#/definitions/domain.WeeklyReport"
				},
				"notified": {
					"type": "boolean"
				}
			}
		},
		"domain.StreakSummary": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"enum": [
						"NEW",
						"CONTINUE",
						"BROKEN"
					]
				},
				"length": {
					"type": "integer"
				},
				"last_log_date": {
					"type": "string"
				},
				"discipline_score": {
					"type": "integer",
					"minimum": 0,
					"maximum": 100
				}
			}
		},
		"domain.ReminderResult": {
			"type": "object",
			"properties": {
				"skipped": {
					"type": "boolean"
				},
				"streak": {
					"$ref": "#/definitions/domain.StreakSummary"
				},
				"message": {
					"type": "string"
				},
				"notified": {
					"type": "boolean"
				}
			}
		},
		"domain.CoachingOutput": {
			"type": "object",
			"properties": {
				"summary": {
					"type": "string"
				},
				"guidance": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"domain.InsightsResponse": {
			"type": "object",
			"properties": {
				"report": {
					"$ref": "#/definitions/domain.WeeklyReport"
				},
				"streak": {
					"$ref": "#/definitions/domain.StreakSummary"
				},
				"coaching": {
					"$ref": "#/definitions/domain.CoachingOutput"
				},
				"trace_id": {
					"type": "string"
				}
			}
		},
		"domain.FeedbackRequest": {
			"type": "object",
			"properties": {
				"trace_id": {
					"type": "string"
				},
				"rating": {
					"type": "integer",
					"minimum": 1,
					"maximum": 5
				},
				"comment": {
					"type": "string"
				}
			},
			"required": [
				"trace_id",
				"rating"
			]
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Study Tracker API",
	Description:      "Log planned vs. actual study work and get deterministic feedback on execution, burnout, topical balance and depth.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
