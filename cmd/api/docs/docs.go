// Package docs holds the OpenAPI document served under /swagger. It is
// maintained by hand alongside the swag annotations on the handlers.
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
		"/auth/login": {
			"post": {
				"summary": "Log in",
				"tags": [
					"auth"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TokenResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				]
			}
		},
		"/auth/reissue": {
			"post": {
				"summary": "Reissue tokens",
				"tags": [
					"auth"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TokenResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/dto.ReissueRequest"
						}
					}
				]
			}
		},
		"/auth/logout": {
			"post": {
				"summary": "Log out",
				"tags": [
					"auth"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MessageResponse"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/users": {
			"post": {
				"summary": "Create an account",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.SignUpResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SignUpRequest"
						}
					}
				]
			}
		},
		"/users/me": {
			"get": {
				"summary": "Get current user's profile",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.UserProfileResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/articles": {
			"get": {
				"summary": "List articles",
				"tags": [
					"articles"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.ArticleResponse"
							}
						}
					}
				}
			}
		},
		"/articles/upload": {
			"post": {
				"summary": "Upload articles",
				"tags": [
					"articles"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "string"
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.ArticleUploadRequest"
							}
						}
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/articles/{articleId}/with-quiz": {
			"get": {
				"summary": "Get an article with its quiz",
				"tags": [
					"articles"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ArticleWithQuizResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Article ID",
						"name": "articleId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/quiz/upload": {
			"post": {
				"summary": "Upload a quiz",
				"tags": [
					"quiz"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.DataResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.QuizUploadRequest"
						}
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/quiz/bulk-upload": {
			"post": {
				"summary": "Upload several quizzes",
				"tags": [
					"quiz"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.QuizBulkUploadResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.QuizBulkUploadRequest"
						}
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/quiz/article/{articleId}": {
			"get": {
				"summary": "Get an article's quiz",
				"tags": [
					"quiz"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.QuizResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Article ID",
						"name": "articleId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/quiz/article/{articleId}/answers": {
			"get": {
				"summary": "Get an article's answer key",
				"tags": [
					"quiz"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.QuizGradeResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Article ID",
						"name": "articleId",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/quiz/grade": {
			"post": {
				"summary": "Grade submitted answers",
				"tags": [
					"quiz"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.QuizGradeResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.QuizGradeRequest"
						}
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/quiz/generate/{articleId}": {
			"post": {
				"summary": "Generate a quiz with AI",
				"tags": [
					"quiz"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.QuizResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"503": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Article ID",
						"name": "articleId",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		},
		"/ai/quiz": {
			"post": {
				"summary": "Generate quiz candidates from text",
				"tags": [
					"ai"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AIQuizResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"503": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.AIQuizRequest"
						}
					}
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"dto.AIQuizRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
				},
				"title": {
					"type": "string"
				}
			},
			"description": "Request body for AI quiz generation",
			"required": [
				"content",
				"title"
			]
		},
		"dto.AIQuizResponse": {
			"type": "object",
			"properties": {
				"qna": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.GeneratedQuizResponse"
					}
				}
			}
		},
		"dto.AnswerRequest": {
			"type": "object",
			"properties": {
				"answer": {
					"type": "boolean"
				},
				"id": {
					"type": "integer"
				}
			},
			"required": [
				"answer",
				"id"
			]
		},
		"dto.ArticleResponse": {
			"type": "object",
			"properties": {
				"articleId": {
					"type": "string"
				},
				"categoryId": {
					"type": "integer"
				},
				"date": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"imageUrl": {
					"type": "string"
				},
				"source": {
					"type": "string"
				},
				"title": {
					"type": "string"
				}
			},
			"description": "Article information"
		},
		"dto.ArticleUploadRequest": {
			"type": "object",
			"properties": {
				"articleId": {
					"type": "string"
				},
				"categoryId": {
					"type": "integer"
				},
				"date": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"imageUrl": {
					"type": "string"
				},
				"source": {
					"type": "string"
				},
				"title": {
					"type": "string"
				}
			},
			"required": [
				"articleId",
				"title"
			]
		},
		"dto.ArticleWithQuizResponse": {
			"type": "object",
			"properties": {
				"article": {
					"$ref": "#/definitions/dto.ArticleResponse"
				},
				"quizList": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.QuestionResponse"
					}
				}
			},
			"description": "Article with its quiz questions"
		},
		"dto.BulkUploadFailure": {
			"type": "object",
			"properties": {
				"articleId": {
					"type": "integer"
				},
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"dto.DataResponse": {
			"type": "object",
			"properties": {
				"data": {}
			}
		},
		"dto.ErrorResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"errors": {},
				"message": {
					"type": "string"
				}
			},
			"description": "Error response"
		},
		"dto.GeneratedQuizResponse": {
			"type": "object",
			"properties": {
				"answer": {
					"type": "string"
				},
				"options": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"question": {
					"type": "string"
				},
				"quizType": {
					"type": "string"
				}
			}
		},
		"dto.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"description": "Request body for logging in",
			"required": [
				"email",
				"password"
			]
		},
		"dto.MessageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"dto.QuestionRequest": {
			"type": "object",
			"properties": {
				"correctAnswer": {
					"type": "boolean"
				},
				"question": {
					"type": "string"
				}
			},
			"required": [
				"correctAnswer",
				"question"
			]
		},
		"dto.QuestionResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"question": {
					"type": "string"
				}
			}
		},
		"dto.QuizBulkUploadRequest": {
			"type": "object",
			"properties": {
				"quizzes": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.QuizUploadRequest"
					}
				}
			},
			"description": "Request body for uploading several quiz sets",
			"required": [
				"quizzes"
			]
		},
		"dto.QuizBulkUploadResponse": {
			"type": "object",
			"properties": {
				"failed": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.BulkUploadFailure"
					}
				},
				"uploaded": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				}
			}
		},
		"dto.QuizGradeRequest": {
			"type": "object",
			"properties": {
				"answers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.AnswerRequest"
					}
				},
				"articleId": {
					"type": "integer"
				}
			},
			"description": "Request body for grading a quiz",
			"required": [
				"answers",
				"articleId"
			]
		},
		"dto.QuizGradeResponse": {
			"type": "object",
			"properties": {
				"articleId": {
					"type": "integer"
				},
				"results": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.QuizResultResponse"
					}
				}
			},
			"description": "Grading results"
		},
		"dto.QuizResponse": {
			"type": "object",
			"properties": {
				"articleId": {
					"type": "integer"
				},
				"questions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.QuestionResponse"
					}
				}
			},
			"description": "Quiz questions of an article"
		},
		"dto.QuizResultResponse": {
			"type": "object",
			"properties": {
				"correctAnswer": {
					"type": "boolean"
				},
				"id": {
					"type": "integer"
				}
			}
		},
		"dto.QuizUploadRequest": {
			"type": "object",
			"properties": {
				"articleId": {
					"type": "integer"
				},
				"questions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.QuestionRequest"
					}
				}
			},
			"description": "Request body for uploading a quiz set",
			"required": [
				"articleId",
				"questions"
			]
		},
		"dto.ReissueRequest": {
			"type": "object",
			"properties": {
				"refreshToken": {
					"type": "string"
				}
			}
		},
		"dto.SignUpRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"description": "Request body for creating a user",
			"required": [
				"email",
				"password"
			]
		},
		"dto.SignUpResponse": {
			"type": "object",
			"properties": {
				"userId": {
					"type": "integer"
				}
			}
		},
		"dto.TokenResponse": {
			"type": "object",
			"properties": {
				"accessToken": {
					"type": "string"
				},
				"refreshToken": {
					"type": "string"
				}
			},
			"description": "Response body for authentication tokens"
		},
		"dto.UserProfileResponse": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				}
			}
		}
	},
	"securityDefinitions": {
		"ApiKeyAuth": {
			"description": "Type 'Bearer YOUR_JWT_TOKEN' to authorize.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "News Quiz API",
	Description:      "API for news articles and the true/false quizzes attached to them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
