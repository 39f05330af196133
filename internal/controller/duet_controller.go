package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"book-duets-be/internal/dto"
	"book-duets-be/internal/pkg/serverutils"
	"book-duets-be/internal/service"
	"book-duets-be/pkg/corpus"
	"book-duets-be/pkg/filter"
)

type IDuetController interface {
	RegisterRoutes(r fiber.Router)
	CustomDuet(ctx *fiber.Ctx) error
}

type duetController struct {
	service  service.IDuetService
	validate *validator.Validate
}

func NewDuetController(service service.IDuetService) IDuetController {
	return &duetController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *duetController) RegisterRoutes(r fiber.Router) {
	g := r.Group("/duets")
	g.Get("/custom", c.CustomDuet)
}

func (c *duetController) CustomDuet(ctx *fiber.Ctx) error {
	req := &dto.CustomDuetRequest{
		Musician:    ctx.Query("musician"),
		Author:      ctx.Query("author"),
		FilterLevel: ctx.Query("filter_level", filter.LevelNone),
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("BadRequest"))
	}

	res, err := c.service.CustomDuet(ctx.Context(), req)
	if err != nil {
		return ctx.Status(serverutils.DomainErrorStatus(err)).
			JSON(serverutils.ErrorResponse(corpus.ErrorName(err)))
	}
	return ctx.JSON(res)
}
