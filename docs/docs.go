// Package docs enregistre la spécification Swagger auprès de swag.
// Régénéré par `swag init -g cmd/api/main.go` ; le JSON servi par le
// middleware est docs/swagger.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/finance": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["finance"],
                "summary": "Rapport financier",
                "parameters": [
                    {"name": "type", "in": "query", "type": "string", "default": "overview"},
                    {"name": "startDate", "in": "query", "type": "string"},
                    {"name": "endDate", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "rapport demandé"},
                    "400": {"description": "type ou dates invalides"},
                    "401": {"description": "non authentifié"},
                    "403": {"description": "réservé au PDG"}
                }
            }
        },
        "/api/finance/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["finance"],
                "summary": "Export d'un rapport financier",
                "parameters": [
                    {"name": "type", "in": "query", "type": "string", "default": "overview"},
                    {"name": "format", "in": "query", "type": "string", "default": "pdf"},
                    {"name": "startDate", "in": "query", "type": "string"},
                    {"name": "endDate", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "fichier PDF, XLSX ou XML"},
                    "400": {"description": "type ou format invalide"}
                }
            }
        }
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
	Title:            "Éditions API",
	Description:      "API de la plateforme d'édition : catalogue, commandes, ventes, droits d'auteur et reporting financier PDG.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
