package api

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"rewardsadmin/config"
	"rewardsadmin/db"
	_ "rewardsadmin/docs" // Import for side effect: registers swagger spec via init()
	"rewardsadmin/uploads"
	"rewardsadmin/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"     // swagger embed files
	ginSwagger "github.com/swaggo/gin-swagger" // gin-swagger middleware
)

// NewRouter wires every route of the admin backend onto a gin engine.
func NewRouter(cfg *config.Config, database *db.Database, sidecar *uploads.Sidecar) (*gin.Engine, error) {
	// gin.Default already carries the Logger and Recovery middleware.
	router := gin.Default()

	// The gate is global so it also runs for the dashboard pages served by NoRoute.
	router.Use(utils.AuthGate(utils.AuthCookieName, utils.GatedRoutes))

	apiGroup := router.Group("/api")

	// Brand Routes
	brandGroup := apiGroup.Group("/brands")
	{
		// GET /api/brands
		brandGroup.GET("", func(c *gin.Context) {
			ListBrandsHandler(c, database)
		})
		// POST /api/brands
		brandGroup.POST("", func(c *gin.Context) {
			CreateBrandHandler(c, database, sidecar)
		})
	}

	// Voucher Routes
	voucherGroup := apiGroup.Group("/vouchers")
	{
		// GET /api/vouchers
		voucherGroup.GET("", func(c *gin.Context) {
			ListVouchersHandler(c, database)
		})
		// POST /api/vouchers
		voucherGroup.POST("", func(c *gin.Context) {
			CreateVoucherHandler(c, database, sidecar)
		})
	}

	// Coupon Routes
	couponGroup := apiGroup.Group("/coupons")
	{
		// GET /api/coupons
		couponGroup.GET("", func(c *gin.Context) {
			ListCouponsHandler(c, database)
		})
		// POST /api/coupons
		couponGroup.POST("", func(c *gin.Context) {
			CreateCouponHandler(c, database)
		})
		// PUT /api/coupons (rename by position)
		couponGroup.PUT("", func(c *gin.Context) {
			UpdateCouponHandler(c, database)
		})
		// PUT /api/coupons/{id}
		couponGroup.PUT("/:id", func(c *gin.Context) {
			RenameCouponHandler(c, database)
		})
	}

	// Session Routes
	authGroup := apiGroup.Group("/auth")
	{
		// GET /api/auth/check
		authGroup.GET("/check", CheckAuthHandler)
		// POST /api/auth/logout
		authGroup.POST("/logout", LogoutHandler)
		// POST /api/auth/login
		authGroup.POST("/login", func(c *gin.Context) {
			LoginHandler(c, cfg)
		})
	}

	// Everything served by the external API goes through the proxy.
	if cfg.BackendURL != "" {
		proxy, err := NewBackendProxy(cfg.BackendURL)
		if err != nil {
			return nil, err
		}
		apiGroup.Any("/backend/*path", proxy)
		log.Printf("INFO: Proxying /api/backend/* to %s", cfg.BackendURL)
	}

	// --- Uploaded Media ---
	router.Static("/"+sidecar.SubDir, sidecar.Dir())

	// --- Swagger Route ---
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- Dashboard Pages ---
	router.NoRoute(DashboardPageHandler(cfg.PublicDir))

	return router, nil
}

// DashboardPageHandler serves the dashboard's static export from publicDir.
// "/brands" resolves to brands, brands.html or brands/index.html, in that order.
func DashboardPageHandler(publicDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			utils.GinNotFound(c, "Page not found")
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			utils.GinNotFound(c, fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path))
			return
		}

		file, ok := resolvePage(publicDir, c.Request.URL.Path)
		if !ok {
			utils.GinNotFound(c, "Page not found")
			return
		}
		c.File(file)
	}
}

// resolvePage maps a request path to a regular file inside publicDir.
func resolvePage(publicDir, requestPath string) (string, bool) {
	// Cleaning a rooted path removes every ".." element, so candidates stay under publicDir.
	clean := path.Clean("/" + requestPath)

	var candidates []string
	if clean == "/" {
		candidates = []string{"index.html"}
	} else {
		rel := strings.TrimPrefix(clean, "/")
		candidates = []string{rel, rel + ".html", path.Join(rel, "index.html")}
	}

	for _, candidate := range candidates {
		full := filepath.Join(publicDir, filepath.FromSlash(candidate))
		info, err := os.Stat(full)
		if err == nil && info.Mode().IsRegular() {
			return full, true
		}
	}
	return "", false
}
