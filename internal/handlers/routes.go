package handlers

import (
	"github.com/gin-gonic/gin"
)

// Admin bundles the handlers mounted under the internal API group
type Admin struct {
	Imports  *ImportHandler
	Uploads  *UploadsHandler
	Settings *SettingsHandler
}

// RegisterRoutes mounts the admin API on an already authenticated group
func RegisterRoutes(internal *gin.RouterGroup, admin Admin) {
	internal.GET("/health", HealthCheck)

	group := internal.Group("/admin")
	{
		imports := group.Group("/import")
		imports.POST("/products", admin.Imports.ImportProducts)
		imports.POST("/blogs", admin.Imports.ImportBlogPosts)
		imports.GET("/uploads", admin.Uploads.List)
		imports.GET("/:entity/last", admin.Imports.LastResult)

		group.GET("/settings/:section", admin.Settings.Get)
		group.PUT("/settings/:section", admin.Settings.Put)
	}
}
