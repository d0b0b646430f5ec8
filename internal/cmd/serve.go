package cmd

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/spf13/cobra"

	"edshop/internal/config"
	"edshop/internal/http/handlers"
	applog "edshop/internal/log"
	"edshop/internal/repos"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storefront server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN, cfg.SeedCount)
	if err != nil {
		return err
	}

	engine := html.New("./web/templates", ".html")
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Generic failure page; internals never leak
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Une erreur est survenue. Veuillez réessayer.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Une erreur est survenue. Veuillez réessayer.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, cfg)

	searchLimiter := limiter.New(limiter.Config{Max: 20, Expiration: time.Minute})
	chatLimiter := limiter.New(limiter.Config{
		Max:        15,
		Expiration: 30 * time.Second,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.chat.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})

	// Public pages
	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/category/:name", deps.CatalogHandler.CategoryPage)
	app.Get("/search", searchLimiter, deps.CatalogHandler.SearchPage)
	app.Get("/product/:id", deps.ProductHandler.Detail)
	app.Get("/cart", deps.OrderHandler.CartPage)
	app.Get("/checkout", deps.OrderHandler.CheckoutPage)
	app.Get("/order/:id", deps.OrderHandler.View)

	// API
	api := app.Group("/api/v1")
	api.Get("/products", deps.CatalogHandler.Products)
	api.Post("/orders", deps.OrderHandler.Place)
	api.Post("/chat", chatLimiter, deps.ChatHandler.Reply)
	api.Post("/admin/reseed", deps.AdminHandler.RunReseed)

	// Admin
	app.Get("/admin", deps.AdminHandler.Dashboard)
	app.Post("/admin/orders/:id/status", deps.AdminHandler.UpdateOrderStatus)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page introuvable"})
	})

	return app.Listen(cfg.Addr)
}
