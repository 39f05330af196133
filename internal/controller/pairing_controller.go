package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"book-duets-be/internal/pkg/serverutils"
	"book-duets-be/internal/service"
)

type IPairingController interface {
	RegisterRoutes(r fiber.Router)
	RandomPairing(ctx *fiber.Ctx) error
}

type pairingController struct {
	service service.IPairingService
}

func NewPairingController(service service.IPairingService) IPairingController {
	return &pairingController{service: service}
}

func (c *pairingController) RegisterRoutes(r fiber.Router) {
	g := r.Group("/pairings")
	g.Get("/random", c.RandomPairing)
}

func (c *pairingController) RandomPairing(ctx *fiber.Ctx) error {
	res, err := c.service.RandomPairing(ctx.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoPairings) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("PairingNotFound"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("InternalError"))
	}
	return ctx.JSON(res)
}
