package adminValidator

import (
	"strconv"

	"skillflow/middleware"

	"github.com/gofiber/fiber/v2"
)

// UserID validates the :userId route parameter
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("userId")
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
		}
		c.Locals("targetUserID", uint(id))
		return c.Next()
	}
}

// RequestID validates the :requestId route parameter
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("requestId")
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
		}
		c.Locals("requestID", uint(id))
		return c.Next()
	}
}

// SetBan validates the ban request body
func SetBan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Banned bool `json:"banned"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedBan", reqData)
		return c.Next()
	}
}
