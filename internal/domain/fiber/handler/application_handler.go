package handler

import (
	"github.com/fadilmartias/placement-portal/internal/dto"
	"github.com/fadilmartias/placement-portal/internal/usecase"
	"github.com/fadilmartias/placement-portal/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	uc *usecase.ApplicationUsecase
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/applications", h.List)
	router.Post("/applications", h.Create)
}

func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	apps, err := h.uc.List(c.UserContext(), c.Query("studentId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to load applications",
		}, err)
	}
	return c.JSON(apps)
}

// Create answers 500 for missing driveId or studentId, the same as any other failure.
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	res, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to create application",
		}, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}
