package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope is the JSON shape every endpoint answers with.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int64      `json:"count,omitempty"`
	Token   string      `json:"token,omitempty"`
}

// SendData replies 200 with a data payload.
func SendData(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

// SendCreated replies 201 with the freshly created resource.
func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Data: data})
}

// SendList replies 200 with a collection and its length.
func SendList(c *fiber.Ctx, data interface{}, count int64) error {
	return c.JSON(Envelope{Success: true, Data: data, Count: &count})
}

// SendMessage replies 200 with a human-readable confirmation.
func SendMessage(c *fiber.Ctx, message string) error {
	return c.JSON(Envelope{Success: true, Message: message})
}

// SendToken replies 200 with a signed bearer token and the principal.
func SendToken(c *fiber.Ctx, token string, data interface{}) error {
	return c.JSON(Envelope{Success: true, Token: token, Data: data})
}
