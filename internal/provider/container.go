package provider

import (
	"github.com/haxeuz-store/internal/cache"
	"github.com/haxeuz-store/internal/config"
	"github.com/haxeuz-store/internal/logger"
	"github.com/haxeuz-store/internal/models"
	"github.com/haxeuz-store/internal/repository"
	"github.com/haxeuz-store/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	UserRepo      repository.UserRepository
	AuthTokenRepo repository.AuthTokenRepository
	CategoryRepo  repository.CategoryRepository
	ProductRepo   repository.ProductRepository
	CartRepo      repository.CartRepository
	OrderRepo     repository.OrderRepository
	CouponRepo    repository.CouponRepository

	// Services
	UserAuthService *service.UserAuthService
	ProductService  *service.ProductService
	CategoryService *service.CategoryService
	CartService     *service.CartService
	OrderService    *service.OrderService
	CouponService   *service.CouponService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.AuthTokenRepo = repository.NewAuthTokenRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
}

func (c *Container) initServices() {
	c.UserAuthService = service.NewUserAuthService(c.UserRepo, c.AuthTokenRepo, c.Config.Security.PasswordPolicy.MinLength)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo)
	c.CouponService = service.NewCouponService(c.CouponRepo)
}
