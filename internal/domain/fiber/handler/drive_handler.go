package handler

import (
	"errors"

	"github.com/fadilmartias/placement-portal/internal/usecase"
	"github.com/fadilmartias/placement-portal/internal/util"
	"github.com/gofiber/fiber/v2"
)

type DriveHandler struct {
	uc *usecase.DriveUsecase
}

func NewDriveHandler(uc *usecase.DriveUsecase) *DriveHandler {
	return &DriveHandler{uc: uc}
}

func (h *DriveHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/drives", h.List)
	router.Get("/drives/recommended", h.Recommended)
	router.Get("/drives/:id/eligibility", h.Eligibility)
}

func (h *DriveHandler) List(c *fiber.Ctx) error {
	drives, err := h.uc.List(c.UserContext())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to load drives",
		}, err)
	}
	return c.JSON(drives)
}

func (h *DriveHandler) Eligibility(c *fiber.Ctx) error {
	res, err := h.uc.Eligibility(c.UserContext(), c.Params("id"), c.Query("studentId"))
	if err != nil {
		return studentLookupError(c, err)
	}
	return c.JSON(res)
}

func (h *DriveHandler) Recommended(c *fiber.Ctx) error {
	drives, err := h.uc.Recommended(c.UserContext(), c.Query("studentId"))
	if err != nil {
		return studentLookupError(c, err)
	}
	return c.JSON(drives)
}

func studentLookupError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrMissingStudentID), errors.Is(err, usecase.ErrNotStudent):
		return util.ErrorResponse(c, util.ErrorResponseFormat{Code: fiber.StatusBadRequest, Message: err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{Code: fiber.StatusNotFound, Message: err.Error()})
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "Failed to check eligibility"}, err)
	}
}
