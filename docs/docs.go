// Package docs holds the OpenAPI document served by Swagger UI.
//
// The template follows the layout produced by swaggo/swag; regenerate with
// `swag init -g main.go -d ./,./internal/http` after changing handler annotations.
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
        "/genres": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List genres",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.GenreDTO"}}
                    }
                }
            }
        },
        "/materialTypes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List material types",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.MaterialTypeDTO"}}
                    }
                }
            }
        },
        "/materials": {
            "get": {
                "produces": ["application/json"],
                "tags": ["materials"],
                "summary": "List circulating materials",
                "parameters": [
                    {"type": "integer", "description": "Material type ID", "name": "materialTypeId", "in": "query"},
                    {"type": "integer", "description": "Genre ID", "name": "genreId", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.MaterialDTO"}}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["materials"],
                "summary": "Create material",
                "parameters": [
                    {
                        "description": "New material",
                        "name": "material",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.CreateMaterialRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/http.MaterialDTO"}
                    },
                    "400": {
                        "description": "Invalid data submitted",
                        "schema": {"type": "string"}
                    }
                }
            }
        },
        "/materials/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["materials"],
                "summary": "Get material detail",
                "parameters": [
                    {"type": "integer", "description": "Material ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.MaterialDTO"}
                    },
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "tags": ["materials"],
                "summary": "Withdraw material from circulation",
                "parameters": [
                    {"type": "integer", "description": "Material ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/patrons": {
            "get": {
                "produces": ["application/json"],
                "tags": ["patrons"],
                "summary": "List patrons with checkouts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.PatronDTO"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "http.CheckoutDTO": {
            "type": "object",
            "properties": {
                "checkoutDate": {"type": "string"},
                "id": {"type": "integer"},
                "material": {"$ref": "#/definitions/http.MaterialDTO"},
                "materialId": {"type": "integer"},
                "patron": {"$ref": "#/definitions/http.PatronDTO"},
                "patronId": {"type": "integer"},
                "returnDate": {"type": "string"}
            }
        },
        "http.CreateMaterialRequest": {
            "type": "object",
            "required": ["genreId", "materialName", "materialTypeId"],
            "properties": {
                "genreId": {"type": "integer"},
                "materialName": {"type": "string"},
                "materialTypeId": {"type": "integer"}
            }
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "http.GenreDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "http.MaterialDTO": {
            "type": "object",
            "properties": {
                "checkouts": {"type": "array", "items": {"$ref": "#/definitions/http.CheckoutDTO"}},
                "genre": {"$ref": "#/definitions/http.GenreDTO"},
                "genreId": {"type": "integer"},
                "id": {"type": "integer"},
                "materialName": {"type": "string"},
                "materialType": {"$ref": "#/definitions/http.MaterialTypeDTO"},
                "materialTypeId": {"type": "integer"},
                "outOfCirculationSince": {"type": "string"}
            }
        },
        "http.MaterialTypeDTO": {
            "type": "object",
            "properties": {
                "checkoutDays": {"type": "integer"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "http.PatronDTO": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "checkouts": {"type": "array", "items": {"$ref": "#/definitions/http.CheckoutDTO"}},
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "id": {"type": "integer"},
                "isActive": {"type": "boolean"},
                "lastName": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Loncotes Library API",
	Description:      "Catalog of library materials, patrons and checkouts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
