// Package docs 注册OpenAPI文档，供 /swagger/*any 使用
// 新增或修改接口时同步更新docTemplate中的paths
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
        "/api/v1/authors": {
            "get": {"produces": ["application/json"], "tags": ["作者"], "summary": "作者列表", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["作者"], "summary": "创建作者", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/v1/authors/search": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["作者"], "summary": "按姓名搜索作者", "parameters": [{"type": "string", "name": "name", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/authors/{id}": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["作者"], "summary": "作者详情", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "tags": ["作者"], "summary": "修改作者", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["作者"], "summary": "删除作者", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/books": {
            "get": {"produces": ["application/json"], "tags": ["图书"], "summary": "图书列表", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["图书"], "summary": "创建图书", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/books/{id}": {
            "get": {"produces": ["application/json"], "tags": ["图书"], "summary": "图书详情", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "tags": ["图书"], "summary": "全量替换图书", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request"}}},
            "patch": {"security": [{"BearerAuth": []}], "consumes": ["application/json-patch+json"], "tags": ["图书"], "summary": "JSON Patch局部更新图书", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/books/{id}/comments": {
            "get": {"produces": ["application/json"], "tags": ["评论"], "summary": "评论列表", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["评论"], "summary": "发表评论", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/books/{id}/comments/{commentId}": {
            "get": {"produces": ["application/json"], "tags": ["评论"], "summary": "评论详情", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "tags": ["评论"], "summary": "修改评论", "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}}}
        },
        "/api/v1/users/register": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["用户"], "summary": "用户注册", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/users/login": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["用户"], "summary": "用户登录", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/v1/users/refresh": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["用户"], "summary": "刷新Access Token", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/v1/users/logout": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["用户"], "summary": "登出", "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo 文档元信息，Host等字段可在启动时覆盖
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Library API",
	Description:      "图书馆目录服务：作者、图书（有序作者）、评论",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
