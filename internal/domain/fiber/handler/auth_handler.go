package handler

import (
	"errors"

	"github.com/fadilmartias/placement-portal/internal/dto"
	"github.com/fadilmartias/placement-portal/internal/usecase"
	"github.com/fadilmartias/placement-portal/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/auth/login", h.Login)
	router.Post("/auth/register", h.Register)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	res, err := h.uc.Login(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid credentials",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Login failed",
		}, err)
	}
	return c.JSON(res)
}

// Register reports every failure, including duplicate emails, as 400 with the raw error text.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if c.Is("json") {
		var input map[string]any
		if err := c.App().Config().JSONDecoder(c.Body(), &input); err == nil {
			req.Input = input
		}
	}

	res, err := h.uc.Register(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}
