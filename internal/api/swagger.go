package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Doctor Profile API - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "Doctor Profile API", "version": "1.0.0" },
  "paths": {
    "/": { "get": { "summary": "Liveness message", "responses": { "200": { "description": "running" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/profile": { "get": { "summary": "Doctor profile", "responses": { "200": { "description": "profile" } } } },
    "/testimonials": { "get": { "summary": "Patient testimonials", "responses": { "200": { "description": "list of testimonials" } } } },
    "/appointments": {
      "post": {
        "summary": "Request an appointment",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["full_name","email","phone","preferred_date","preferred_time","service"],"properties":{"full_name":{"type":"string","minLength":2},"email":{"type":"string","format":"email"},"phone":{"type":"string","minLength":7},"preferred_date":{"type":"string"},"preferred_time":{"type":"string"},"service":{"type":"string"},"notes":{"type":"string","nullable":true}}}}}},
        "responses": { "200": { "description": "stored" }, "422": { "description": "validation failed" }, "429": { "description": "rate limited" }, "500": { "description": "store error" } }
      }
    },
    "/contact": {
      "post": {
        "summary": "Send a contact message",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","email","subject","message"],"properties":{"name":{"type":"string","minLength":2},"email":{"type":"string","format":"email"},"subject":{"type":"string","minLength":2},"message":{"type":"string","minLength":5}}}}}},
        "responses": { "200": { "description": "stored" }, "422": { "description": "validation failed" }, "429": { "description": "rate limited" }, "500": { "description": "store error" } }
      }
    },
    "/test": { "get": { "summary": "Backend and database diagnostics", "responses": { "200": { "description": "diagnostic report" } } } },
    "/doctor.jpg": { "get": { "summary": "Doctor photo", "responses": { "302": { "description": "redirect to photo" }, "404": { "description": "no photo" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
