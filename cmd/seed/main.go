package main

import (
	"fmt"
	"os"
	"time"

	"github.com/haxeuz-store/internal/config"
	"github.com/haxeuz-store/internal/constants"
	"github.com/haxeuz-store/internal/logger"
	"github.com/haxeuz-store/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// 商品尺码表
var productSizes = models.StringArray{"S", "M", "L", "XL", "XXL"}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "Eco-Conscious", Slug: "eco-conscious", Description: "Sustainable pieces printed on organic cotton."},
		{Name: "Statement", Slug: "statement", Description: "Bold graphics that speak before you do."},
		{Name: "Artistic", Slug: "artistic", Description: "Classic art reimagined for the street."},
		{Name: "Streetwear", Slug: "streetwear", Description: "Heavyweight washes built for the everyday."},
		{Name: "Gothic", Slug: "gothic", Description: "Dark washes and heavy prints."},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	// 添加商品
	products := []models.Product{
		{
			Name:         "Save The Flower Tee",
			Slug:         "save-the-flower-tee",
			Description:  "Oversized heavyweight tee with a hand-drawn floral print on the back. Printed with water-based inks on 100% organic cotton.",
			Price:        models.NewMoneyFromDecimal(decimal.RequireFromString("54.99")),
			ComparePrice: models.NewMoneyFromDecimal(decimal.RequireFromString("69.99")),
			FrontImage:   "https://blob.haxeuz.com/products/save-the-flower-tee-front.webp",
			BackImage:    "https://blob.haxeuz.com/products/save-the-flower-tee-back.webp",
			CategoryID:   categoryIDs["eco-conscious"],
			Sizes:        productSizes,
			Stock:        100,
			IsActive:     true,
			IsFeatured:   true,
		},
		{
			Name:         "Busted Vintage Wash",
			Slug:         "busted-vintage-wash",
			Description:  "Acid-washed tee with a distressed 'BUSTED' graphic across the chest. Garment-dyed for a one-of-one fade on every piece.",
			Price:        models.NewMoneyFromDecimal(decimal.RequireFromString("64.99")),
			ComparePrice: models.NewMoneyFromDecimal(decimal.RequireFromString("79.99")),
			FrontImage:   "https://blob.haxeuz.com/products/busted-vintage-wash-front.webp",
			BackImage:    "https://blob.haxeuz.com/products/busted-vintage-wash-back.webp",
			CategoryID:   categoryIDs["statement"],
			Sizes:        productSizes,
			Stock:        100,
			IsActive:     true,
			IsFeatured:   true,
		},
		{
			Name:         "Renaissance Fusion",
			Slug:         "renaissance-fusion",
			Description:  "Classical fresco artwork collides with modern typography. Double-sided print on a boxy heavyweight blank.",
			Price:        models.NewMoneyFromDecimal(decimal.RequireFromString("59.99")),
			ComparePrice: models.NewMoneyFromDecimal(decimal.RequireFromString("74.99")),
			FrontImage:   "https://blob.haxeuz.com/products/renaissance-fusion-front.webp",
			BackImage:    "https://blob.haxeuz.com/products/renaissance-fusion-back.webp",
			CategoryID:   categoryIDs["artistic"],
			Sizes:        productSizes,
			Stock:        100,
			IsActive:     true,
			IsFeatured:   true,
		},
		{
			Name:         "UFO Flame Wash",
			Slug:         "ufo-flame-wash",
			Description:  "Sun-faded flame wash with a UFO back print. Drop shoulders, relaxed fit, pre-shrunk.",
			Price:        models.NewMoneyFromDecimal(decimal.RequireFromString("62.99")),
			ComparePrice: models.NewMoneyFromDecimal(decimal.RequireFromString("77.99")),
			FrontImage:   "https://blob.haxeuz.com/products/ufo-flame-wash-front.webp",
			BackImage:    "https://blob.haxeuz.com/products/ufo-flame-wash-back.webp",
			CategoryID:   categoryIDs["streetwear"],
			Sizes:        productSizes,
			Stock:        100,
			IsActive:     true,
			IsFeatured:   true,
		},
		{
			Name:         "Soul Gothic Wash",
			Slug:         "soul-gothic-wash",
			Description:  "Jet-black mineral wash with gothic lettering across the back. Heavy 280gsm cotton with a lived-in feel.",
			Price:        models.NewMoneyFromDecimal(decimal.RequireFromString("58.99")),
			ComparePrice: models.NewMoneyFromDecimal(decimal.RequireFromString("72.99")),
			FrontImage:   "https://blob.haxeuz.com/products/soul-gothic-wash-front.webp",
			BackImage:    "https://blob.haxeuz.com/products/soul-gothic-wash-back.webp",
			CategoryID:   categoryIDs["gothic"],
			Sizes:        productSizes,
			Stock:        100,
			IsActive:     true,
			IsFeatured:   false,
		},
	}

	for _, prod := range products {
		if prod.CategoryID == 0 {
			stdLog.Printf("Skip product %s: category_id missing", prod.Slug)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("slug = ?", prod.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Slug)
			}
		} else {
			existing.Name = prod.Name
			existing.Description = prod.Description
			existing.Price = prod.Price
			existing.ComparePrice = prod.ComparePrice
			existing.FrontImage = prod.FrontImage
			existing.BackImage = prod.BackImage
			existing.CategoryID = prod.CategoryID
			existing.Sizes = prod.Sizes
			existing.Stock = prod.Stock
			existing.IsActive = prod.IsActive
			existing.IsFeatured = prod.IsFeatured
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Slug)
			}
		}
	}

	// 为每个商品生成尺码变体，XXL 加价 2.00
	var productList []models.Product
	if err := models.DB.Find(&productList).Error; err != nil {
		stdLog.Printf("Failed to load products: %v", err)
	}
	variantCount := 0
	for _, prod := range productList {
		for _, size := range prod.Sizes {
			sku := fmt.Sprintf("HX%03d-%s", prod.ID, size)
			adjustment := decimal.Zero
			if size == "XXL" {
				adjustment = decimal.RequireFromString("2.00")
			}
			var existing models.ProductVariant
			if err := models.DB.Where("sku = ?", sku).First(&existing).Error; err != nil {
				variant := models.ProductVariant{
					ProductID:       prod.ID,
					Size:            size,
					SKU:             sku,
					Stock:           20,
					PriceAdjustment: models.NewMoneyFromDecimal(adjustment),
				}
				if err := models.DB.Create(&variant).Error; err != nil {
					stdLog.Printf("Failed to create variant %s: %v", sku, err)
					continue
				}
				variantCount++
			}
		}
	}
	if variantCount > 0 {
		stdLog.Printf("Created %d product variants", variantCount)
	}

	// 添加优惠券，有效期 30 天
	now := time.Now()
	coupons := []models.Coupon{
		{
			Code:          "WELCOME10",
			Description:   "10% off your first order",
			DiscountType:  constants.CouponTypePercentage,
			DiscountValue: models.NewMoneyFromDecimal(decimal.RequireFromString("10.00")),
			MinimumAmount: models.NewMoneyFromDecimal(decimal.RequireFromString("50.00")),
			ValidFrom:     now,
			ValidUntil:    now.AddDate(0, 0, 30),
			IsActive:      true,
		},
		{
			Code:          "FREESHIP",
			Description:   "Free shipping on orders over $75",
			DiscountType:  constants.CouponTypeFixed,
			DiscountValue: models.NewMoneyFromDecimal(decimal.RequireFromString("9.99")),
			MinimumAmount: models.NewMoneyFromDecimal(decimal.RequireFromString("75.00")),
			ValidFrom:     now,
			ValidUntil:    now.AddDate(0, 0, 30),
			IsActive:      true,
		},
	}

	for _, coupon := range coupons {
		var existing models.Coupon
		if err := models.DB.Where("code = ?", coupon.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&coupon).Error; err != nil {
				stdLog.Printf("Failed to create coupon %s: %v", coupon.Code, err)
			} else {
				stdLog.Printf("Created coupon: %s", coupon.Code)
			}
		} else {
			stdLog.Printf("Coupon already exists: %s", coupon.Code)
		}
	}

	// 初始化管理账号
	adminEmail := "admin@haxeuz.com"
	adminPassword := os.Getenv("HX_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin12345"
	}
	var adminUser models.User
	if err := models.DB.Where("email = ?", adminEmail).First(&adminUser).Error; err != nil {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			stdLog.Printf("Failed to hash admin password: %v", hashErr)
		} else {
			adminUser = models.User{
				Email:        adminEmail,
				Username:     "admin",
				FirstName:    "Admin",
				LastName:     "Haxeuz",
				PasswordHash: string(hash),
				IsActive:     true,
			}
			if err := models.DB.Create(&adminUser).Error; err != nil {
				stdLog.Printf("Failed to create admin user: %v", err)
			} else {
				stdLog.Printf("Created admin user: %s", adminEmail)
				if adminPassword == "admin12345" {
					stdLog.Printf("Warning: admin user created with default password, change it")
				}
			}
		}
	} else {
		stdLog.Printf("Admin user already exists: %s", adminEmail)
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 5 Categories")
	fmt.Println("- 5 Products (4 featured)")
	fmt.Println("- Size variants per product (S-XXL)")
	fmt.Println("- 2 Coupons (WELCOME10, FREESHIP)")
	fmt.Println("- Admin user")
}
