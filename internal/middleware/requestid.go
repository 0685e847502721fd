package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const HeaderRequestID = "X-Request-ID"

func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.Request.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("request_id", id)
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}
