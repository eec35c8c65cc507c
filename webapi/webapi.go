// Package webapi provides the HTTP surface of the invoice financing API.
// It is organized into sub-packages per resource:
// - auth: signup, login and the caller's profile
// - investment: capital commitments and the active marketplace
// - invoice: receivables and their verification lifecycle
// - transaction: the caller's ledger
// - portfolio: the caller's valuation snapshots
package webapi

import (
	"context"
	"strings"
	"time"

	"github.com/amirasaad/invochain/infra"
	"github.com/amirasaad/invochain/pkg/app"
	authweb "github.com/amirasaad/invochain/webapi/auth"
	"github.com/amirasaad/invochain/webapi/common"
	investmentweb "github.com/amirasaad/invochain/webapi/investment"
	invoiceweb "github.com/amirasaad/invochain/webapi/invoice"
	portfolioweb "github.com/amirasaad/invochain/webapi/portfolio"
	transactionweb "github.com/amirasaad/invochain/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const Version = "1.0.0"

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	cfg := a.Config

	fiberApp := fiber.New(fiber.Config{
		AppName:      "InvoChain API",
		ErrorHandler: common.ErrorHandler(a.Deps.Logger, cfg.IsDevelopment()),
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	fiberApp.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	fiberApp.Use(cors.New(corsConfig(cfg.Cors.Origins)))

	// Uses X-Forwarded-For header when behind a proxy, then X-Real-IP,
	// then the direct IP.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too many requests")
		},
	}))

	fiberApp.Get("/", banner)
	fiberApp.Get("/health", health(a))

	authweb.Routes(fiberApp, a.AuthService, a.UserService, a.InvestmentService, cfg)
	investmentweb.Routes(fiberApp, a.InvestmentService, cfg)
	invoiceweb.Routes(fiberApp, a.InvoiceService, cfg)
	transactionweb.Routes(fiberApp, a.TransactionService, cfg)
	portfolioweb.Routes(fiberApp, a.PortfolioService, cfg)
	return fiberApp
}

func corsConfig(origins string) cors.Config {
	origins = strings.TrimSpace(origins)
	if origins == "" {
		origins = "*"
	}
	return cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		// Fiber refuses credentials with a wildcard origin.
		AllowCredentials: origins != "*",
	}
}

func banner(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "InvoChain API Server",
		"version": Version,
		"endpoints": fiber.Map{
			"auth":         "/api/auth",
			"investments":  "/api/investments",
			"invoices":     "/api/invoices",
			"transactions": "/api/transactions",
			"portfolio":    "/api/portfolio",
			"health":       "/health",
		},
	})
}

func health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := fiber.Map{
			"status":      "ok",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": a.Config.Env,
			"database":    a.Config.DB.Driver,
		}
		if a.Deps.DB == nil {
			return c.JSON(body)
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := infra.Ping(ctx, a.Deps.DB); err != nil {
			a.Deps.Logger.Error("Health check ping failed", "error", err)
			body["status"] = "unavailable"
			body["database_ping"] = "failed"
			return c.Status(fiber.StatusServiceUnavailable).JSON(body)
		}
		body["database_ping"] = "ok"
		return c.JSON(body)
	}
}
