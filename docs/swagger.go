// Package docs provides Swagger documentation for the API.
package docs

// @title InkPress CMS Backend API
// @version 1.0
// @description Multi-tenant headless CMS with a JWT protected admin API and an API key protected public content API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://inkpress.io/support
// @contact.email support@inkpress.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
