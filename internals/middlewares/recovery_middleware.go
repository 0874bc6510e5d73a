package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware: panic di handler jadi 500, bukan proses mati.
// Stack dicetak dengan request-id supaya gampang dilacak di log.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			reqid, _ := c.Locals("reqid").(string)
			log.Printf("[PANIC] id=%s %s %s: %v", reqid, c.Method(), c.OriginalURL(), e)
		},
	})
}
