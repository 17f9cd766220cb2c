// Package swagger registers the OpenAPI document served at /swagger/*.
//
// The layout is the one swag emits, so the file can be replaced with the
// output of `swag init -g cmd/api/main.go -o docs/swagger --outputTypes go`
// after handler annotations change.
package swagger

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
        "/config": {
            "get": {
                "description": "Returns every stored config entry as a JSON array, ordered by store key lexicographically (config:10 sorts before config:2).",
                "produces": ["application/json"],
                "tags": ["config"],
                "summary": "List config entries",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "delete": {
                "tags": ["config"],
                "summary": "Delete all config entries",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/config/{id}": {
            "get": {
                "description": "Returns the stored bytes of one entry verbatim.",
                "produces": ["application/json"],
                "tags": ["config"],
                "summary": "Get config entry",
                "parameters": [
                    {"type": "integer", "description": "Entry id (1-30)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "put": {
                "description": "Stores the request body verbatim under the entry id, replacing any previous value.",
                "consumes": ["application/json"],
                "tags": ["config"],
                "summary": "Replace config entry",
                "parameters": [
                    {"type": "integer", "description": "Entry id (1-30)", "name": "id", "in": "path", "required": true},
                    {"description": "Entry", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "delete": {
                "tags": ["config"],
                "summary": "Delete config entry",
                "parameters": [
                    {"type": "integer", "description": "Entry id (1-30)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/health-check": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "It's fine", "schema": {"type": "string"}}
                }
            }
        },
        "/item": {
            "get": {
                "description": "Returns every item detail ordered by store key, each with an \"image\" field when an image was uploaded.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List items",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "delete": {
                "tags": ["items"],
                "summary": "Delete all items",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/item/{id}": {
            "delete": {
                "tags": ["items"],
                "summary": "Delete item",
                "parameters": [
                    {"type": "integer", "description": "Item id (1-6)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/item/{id}/detail": {
            "put": {
                "description": "Stores the request body verbatim as the item's detail record.",
                "consumes": ["application/json"],
                "tags": ["items"],
                "summary": "Replace item detail",
                "parameters": [
                    {"type": "integer", "description": "Item id (1-6)", "name": "id", "in": "path", "required": true},
                    {"description": "Detail", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/item/{id}/image": {
            "put": {
                "description": "Uploads the multipart \"image\" field to object storage as item-{id}.jpg and records its public URL.",
                "consumes": ["multipart/form-data"],
                "tags": ["items"],
                "summary": "Upload item image",
                "parameters": [
                    {"type": "integer", "description": "Item id (1-6)", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "JPEG image", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/profile": {
            "get": {
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Get profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "put": {
                "description": "Stores the request body verbatim as the profile.",
                "consumes": ["application/json"],
                "tags": ["profile"],
                "summary": "Replace profile",
                "parameters": [
                    {"description": "Profile", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/video-url": {
            "get": {
                "description": "Returns a V4-signed URL for PUTting video.mp4 (Content-Type video/mp4). The URL expires after five minutes by default.",
                "produces": ["application/json"],
                "tags": ["video"],
                "summary": "Signed video upload URL",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/video.URLResponse"}},
                    "500": {"description": "Internal Server Error"}
                }
            }
        }
    },
    "definitions": {
        "video.URLResponse": {
            "type": "object",
            "properties": {
                "video_url": {
                    "type": "string",
                    "example": "https://storage.example.com/bottle-template/video.mp4?X-Amz-Signature=..."
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Bottle Template API",
	Description:      "Configuration, profile and inventory records backed by a key-value store, with item images and video uploads on object storage.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
