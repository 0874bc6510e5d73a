package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "kosku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar dengan urutan yang benar:
// recovery paling luar, lalu CORS, limiter global, terakhir logger.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(loggerMw.LoggerMiddleware())
}
