package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/phamnguyendevv/fashion-api/controllers/product"
	"gorm.io/gorm"
)

func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	// Products
	r.POST("/addproducts", productControllers.CreateProduct(db))
	r.POST("/product/list", productControllers.ListProducts(db))
	r.GET("/get-all-products", productControllers.GetAllProducts(db))
	r.GET("/getprobycate/:categoryId", productControllers.GetProductsByCategory(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))

	// Categories
	r.POST("/addcategoris", productControllers.CreateCategory(db))
	r.GET("/getcategoris", productControllers.GetCategories(db))
	r.GET("/category", productControllers.GetCategoryByName(db))
	r.GET("/category/list", productControllers.GetCategoriesWithProducts(db))
}
