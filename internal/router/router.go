package router

import (
	"github.com/haxeuz-store/internal/config"
	publichandlers "github.com/haxeuz-store/internal/http/handlers/public"
	"github.com/haxeuz-store/internal/logger"
	"github.com/haxeuz-store/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	storefront := publichandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（商品图片）
	r.Static("/uploads", "./uploads")

	api := r.Group("/api")
	{
		api.GET("/health", storefront.Health)

		// 公开目录接口
		api.GET("/products", storefront.ListProducts)
		api.GET("/products/featured", storefront.ListFeaturedProducts)
		api.GET("/products/:id", storefront.GetProduct)
		api.GET("/categories", storefront.ListCategories)

		// 认证接口
		auth := api.Group("/auth")
		{
			auth.POST("/register", storefront.Register)
			auth.POST("/login", storefront.Login)
		}

		// 用户接口（需鉴权）
		user := api.Group("")
		user.Use(TokenAuthMiddleware(c.UserAuthService))
		{
			user.POST("/auth/logout", storefront.Logout)
			user.GET("/cart", storefront.GetCart)
			user.POST("/cart/add", storefront.AddCartItem)
			user.PUT("/cart/update/:item_id", storefront.UpdateCartItem)
			user.DELETE("/cart/remove/:item_id", storefront.RemoveCartItem)
			user.GET("/orders", storefront.ListOrders)
			user.POST("/orders/create", storefront.CreateOrder)
		}
	}

	r.NoRoute(storefront.NoRoute)

	return r
}
