// Package docs holds the OpenAPI document served at /docs. It mirrors the
// swag annotations on the handlers; regenerate it with `go generate` from the
// module root after changing them.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin/attendance": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Records grouped by date (newest first) and employee. Filters combine with AND.",
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Attendance across employees",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive substring of the employee code", "name": "employee_id", "in": "query"},
                    {"type": "string", "description": "Exact date, YYYY-MM-DD", "name": "date", "in": "query"},
                    {"type": "string", "description": "Month, YYYY-MM", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {"type": "array", "items": {"$ref": "#/definitions/models.DateGroup"}}
                            }
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ValidationErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/admin/attendance/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Same filters as the attendance listing, rendered as an xlsx workbook",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["Admin"],
                "summary": "Export attendance",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive substring of the employee code", "name": "employee_id", "in": "query"},
                    {"type": "string", "description": "Exact date, YYYY-MM-DD", "name": "date", "in": "query"},
                    {"type": "string", "description": "Month, YYYY-MM", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/admin/dashboard-stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Today's head counts and worked hours across the organization",
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Get dashboard statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DailySnapshot"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/admin/employees": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "All provisioned profiles sorted by employee code",
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "List employees",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {"type": "array", "items": {"$ref": "#/definitions/models.User"}},
                                "total": {"type": "integer"}
                            }
                        }
                    },
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates the login account and the employee profile together",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Provision an employee",
                "parameters": [
                    {"description": "New employee", "name": "employee", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.EmployeeCreatePayload"}}
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "message": {"type": "string"},
                                "data": {"$ref": "#/definitions/models.User"}
                            }
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ValidationErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/attendance/check-in": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Opens a new attendance session. Only one session may be open per day.",
                "produces": ["application/json"],
                "tags": ["Attendance"],
                "summary": "Check in",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "message": {"type": "string"},
                                "data": {"$ref": "#/definitions/models.AttendanceView"}
                            }
                        }
                    },
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/attendance/check-out": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Closes the most recent open session dated today",
                "produces": ["application/json"],
                "tags": ["Attendance"],
                "summary": "Check out",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "message": {"type": "string"},
                                "data": {"$ref": "#/definitions/models.AttendanceView"}
                            }
                        }
                    },
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/attendance/my-history": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Most recent records (date desc, check-in desc) with per-day totals",
                "produces": ["application/json"],
                "tags": ["Attendance"],
                "summary": "Own attendance history",
                "parameters": [
                    {"type": "integer", "description": "Number of records (default 30, max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {"type": "array", "items": {"$ref": "#/definitions/models.AttendanceView"}},
                                "days": {"type": "array", "items": {"$ref": "#/definitions/models.DateGroup"}}
                            }
                        }
                    },
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/attendance/my-summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Present days and inferred leave days of the current month",
                "produces": ["application/json"],
                "tags": ["Attendance"],
                "summary": "Own monthly summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MonthlySummary"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/attendance/today": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Latest record dated today and whether the caller is currently checked in",
                "produces": ["application/json"],
                "tags": ["Attendance"],
                "summary": "Today's attendance",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TodayAttendanceResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/attendance/toggle": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Checks out when today's latest session is open, checks in otherwise",
                "produces": ["application/json"],
                "tags": ["Attendance"],
                "summary": "Toggle check-in/check-out",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "201": {"description": "Created", "schema": {"type": "object"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Checks email and password and returns a PASETO token with the account profile",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UserLoginPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LoginSuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ValidationErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Tokens are stateless, the client discards its token",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Profile of the authenticated employee",
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Own profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/users/me/badge": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "PNG QR code encoding the caller's employee code",
                "produces": ["image/png"],
                "tags": ["Users"],
                "summary": "Employee badge",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.AttendanceRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "employee_id": {"type": "string"},
                "name": {"type": "string"},
                "date": {"type": "string"},
                "check_in": {"type": "string"},
                "check_out": {"type": "string"},
                "working_hours": {"type": "integer"},
                "status": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.AttendanceView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "employee_id": {"type": "string"},
                "name": {"type": "string"},
                "date": {"type": "string"},
                "check_in": {"type": "string"},
                "check_out": {"type": "string"},
                "working_hours": {"type": "integer"},
                "status": {"type": "string"},
                "created_at": {"type": "string"},
                "check_in_display": {"type": "string"},
                "check_out_display": {"type": "string"},
                "working_hours_display": {"type": "string"},
                "date_display": {"type": "string"}
            }
        },
        "models.DailySnapshot": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "total_employees": {"type": "integer"},
                "checked_in_today": {"type": "integer"},
                "total_hours_today": {"type": "integer"},
                "total_hours_today_display": {"type": "string"},
                "present_today": {"type": "integer"},
                "partial_today": {"type": "integer"},
                "absent_today": {"type": "integer"}
            }
        },
        "models.DateGroup": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "employees": {"type": "array", "items": {"$ref": "#/definitions/models.EmployeeDay"}}
            }
        },
        "models.EmployeeCreatePayload": {
            "type": "object",
            "required": ["email", "employee_id", "name", "password"],
            "properties": {
                "employee_id": {"type": "string", "maxLength": 32},
                "name": {"type": "string", "maxLength": 100},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "position": {"type": "string", "maxLength": 100},
                "notes": {"type": "string", "maxLength": 500},
                "role": {"type": "string", "enum": ["employee", "admin"]}
            }
        },
        "models.EmployeeDay": {
            "type": "object",
            "properties": {
                "employee_id": {"type": "string"},
                "name": {"type": "string"},
                "records": {"type": "array", "items": {"$ref": "#/definitions/models.AttendanceRecord"}},
                "total_minutes": {"type": "integer"},
                "total_minutes_display": {"type": "string"},
                "has_open_session": {"type": "boolean"},
                "day_status": {"type": "string"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "models.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "tag": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "models.LoginSuccessResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/models.User"}
            }
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "models.MonthlySummary": {
            "type": "object",
            "properties": {
                "month": {"type": "string"},
                "present_days": {"type": "integer"},
                "leaves_this_month": {"type": "integer"},
                "leave_dates": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.TodayAttendanceResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "is_checked_in": {"type": "boolean"},
                "record": {"$ref": "#/definitions/models.AttendanceView"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "uid": {"type": "string"},
                "employee_id": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string"},
                "email": {"type": "string"},
                "position": {"type": "string"},
                "notes": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.UserLoginPayload": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "models.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"$ref": "#/definitions/models.FieldError"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the PASETO token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Employee Attendance API",
	Description:      "Check-in/check-out tracking with per-day and monthly attendance reporting",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
