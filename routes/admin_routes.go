package routes

import (
	"github.com/gin-gonic/gin"
	admin_auth_controller "github.com/novedades-silva/toystore-backend/controllers/admin/auth"
	admin_category "github.com/novedades-silva/toystore-backend/controllers/admin/category_controller"
	admin_product "github.com/novedades-silva/toystore-backend/controllers/admin/product_controller"
	"github.com/novedades-silva/toystore-backend/middleware"
)

func SetupAdminAuthRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	admin.POST("/login", admin_auth_controller.AdminLogin)
	admin.POST("/logout", admin_auth_controller.AdminLogout)

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.GET("/me", admin_auth_controller.GetAdminMe)
	}
}

func SetupAdminProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	product.Use(middleware.AdminAuthMiddleware())
	{
		product.GET("", admin_product.GetInventory)
		product.POST("", admin_product.CreateProduct)
		product.PATCH("/:id", admin_product.UpdateProduct)
		product.DELETE("/:id", admin_product.DeleteProduct)
	}
}

func SetupAdminCategoryRoutes(rg *gin.RouterGroup) {
	category := rg.Group("/categories")
	category.Use(middleware.AdminAuthMiddleware())
	{
		category.POST("", admin_category.CreateCategory)
		category.PATCH("/:id", admin_category.UpdateCategory)
		category.DELETE("/:id", admin_category.DeleteCategory)
	}
}
