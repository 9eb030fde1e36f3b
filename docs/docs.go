// Package docs registers the OpenAPI description served under /docs.
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
        "/api/user/register": {
            "post": {"tags": ["User"], "summary": "Register a student", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/tokenResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errorResponse"}}}}
        },
        "/api/user/login": {
            "post": {"tags": ["User"], "summary": "Log in", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/tokenResponse"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}}}}
        },
        "/api/course": {
            "get": {"tags": ["Course"], "summary": "Course price and start date", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/courseResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}}}
        },
        "/api/admin/course/price": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["Admin"], "summary": "Change the course price", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/CoursePriceRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/courseResponse"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResponse"}}}}
        },
        "/api/promo/validate": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Promo"], "summary": "Check a promo code", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/ValidatePromoRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/promotionCheckResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}}}
        },
        "/api/admin/promos": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Admin"], "summary": "All promo codes", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/promotionResponse"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Admin"], "summary": "Add a promo code", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/CreatePromoRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/promotionResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errorResponse"}}}}
        },
        "/api/admin/promos/{code}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["Admin"], "summary": "Change a promo code", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "code", "type": "string", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/UpdatePromoRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/promotionResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Admin"], "summary": "Remove a promo code",
                "parameters": [{"in": "path", "name": "code", "type": "string", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}}}
        },
        "/api/payment/create-order": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Payment"], "summary": "Start a payment for the course", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "schema": {"$ref": "#/definitions/CreateOrderRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/createOrderResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errorResponse"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errorResponse"}}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/errorResponse"}}}}
        },
        "/api/payment/verify": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Payment"], "summary": "Reconcile a payment after checkout", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/VerifyRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/verifyResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/errorResponse"}}}}
        },
        "/api/payment/check-pending": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Payment"], "summary": "Refresh the caller's payment in flight", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/pendingResponse"}}}}
        },
        "/api/payment/status/{orderId}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Payment"], "summary": "One of the caller's orders", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "orderId", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/orderResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}}}
        },
        "/api/payment/history": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Payment"], "summary": "Caller's payment history, newest first", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/orderResponse"}}}}}
        },
        "/api/payment/webhook": {
            "post": {"tags": ["Payment"], "summary": "Gateway payment notification", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "header", "name": "x-webhook-signature", "type": "string", "required": true}, {"in": "header", "name": "x-webhook-timestamp", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/webhookResponse"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/errorResponse"}}}}
        }
    },
    "definitions": {
        "errorResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "tokenResponse": {"type": "object", "properties": {"token": {"type": "string"}}},
        "RegisterRequest": {"type": "object", "required": ["email", "name", "password"], "properties": {"email": {"type": "string"}, "name": {"type": "string"}, "password": {"type": "string"}, "phone": {"type": "string"}}},
        "LoginRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "CoursePriceRequest": {"type": "object", "required": ["price"], "properties": {"price": {"type": "integer"}, "original_price": {"type": "integer"}}},
        "courseResponse": {"type": "object", "properties": {"price": {"type": "integer"}, "original_price": {"type": "integer"}, "start_date": {"type": "string"}, "updated_at": {"type": "string"}}},
        "ValidatePromoRequest": {"type": "object", "required": ["code"], "properties": {"code": {"type": "string"}}},
        "promotionCheckResponse": {"type": "object", "properties": {"valid": {"type": "boolean"}, "code": {"type": "string"}, "discount_percent": {"type": "integer"}, "description": {"type": "string"}}},
        "CreatePromoRequest": {"type": "object", "required": ["code", "discount_percent"], "properties": {"code": {"type": "string"}, "discount_percent": {"type": "integer"}, "description": {"type": "string"}, "is_active": {"type": "boolean"}, "valid_from": {"type": "string"}, "valid_until": {"type": "string"}, "max_uses": {"type": "integer"}}},
        "UpdatePromoRequest": {"type": "object", "properties": {"discount_percent": {"type": "integer"}, "description": {"type": "string"}, "is_active": {"type": "boolean"}, "max_uses": {"type": "integer"}, "valid_until": {"type": "string"}, "clear_max_uses": {"type": "boolean"}, "clear_valid_until": {"type": "boolean"}}},
        "promotionResponse": {"type": "object", "properties": {"code": {"type": "string"}, "discount_percent": {"type": "integer"}, "description": {"type": "string"}, "is_active": {"type": "boolean"}, "valid_from": {"type": "string"}, "valid_until": {"type": "string"}, "max_uses": {"type": "integer"}, "used_count": {"type": "integer"}, "created_at": {"type": "string"}}},
        "CreateOrderRequest": {"type": "object", "properties": {"promo_code": {"type": "string"}}},
        "createOrderResponse": {"type": "object", "properties": {"order_id": {"type": "string"}, "gateway_session_id": {"type": "string"}, "amount": {"type": "integer"}, "currency": {"type": "string"}, "promo_code": {"type": "string"}, "discount_percent": {"type": "integer"}, "discount_amount": {"type": "integer"}}},
        "VerifyRequest": {"type": "object", "required": ["order_id"], "properties": {"order_id": {"type": "string"}}},
        "verifyResponse": {"type": "object", "properties": {"status": {"type": "string"}, "message": {"type": "string"}}},
        "orderResponse": {"type": "object", "properties": {"order_id": {"type": "string"}, "amount": {"type": "integer"}, "currency": {"type": "string"}, "status": {"type": "string"}, "method": {"type": "string"}, "transaction_reference": {"type": "string"}, "promo_code": {"type": "string"}, "discount_percent": {"type": "integer"}, "discount_amount": {"type": "integer"}, "created_at": {"type": "string"}, "settled_at": {"type": "string"}}},
        "pendingResponse": {"type": "object", "properties": {"has_pending": {"type": "boolean"}, "order": {"$ref": "#/definitions/orderResponse"}}},
        "webhookResponse": {"type": "object", "properties": {"status": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Course enrollment API",
	Description:      "Enrollment, promo codes and payments for the bootcamp course.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
