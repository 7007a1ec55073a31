package api

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/segmentio/ksuid"
)

// RequestID tags every request with a snowflake id from the given node.
// An invalid node falls back to ksuid ids.
func RequestID(nodeID int64) fiber.Handler {
	generate := func() string {
		return ksuid.New().String()
	}
	if node, err := snowflake.NewNode(nodeID); err == nil {
		generate = func() string {
			return node.Generate().String()
		}
	}
	return requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: generate,
	})
}
