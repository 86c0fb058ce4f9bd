package handler

import (
	"errors"
	"io"
	"time"

	"github.com/fadilmartias/placement-portal/internal/dto"
	"github.com/fadilmartias/placement-portal/internal/middleware"
	"github.com/fadilmartias/placement-portal/internal/usecase"
	"github.com/fadilmartias/placement-portal/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AnalysisHandler struct {
	uc        *usecase.AnalysisUsecase
	rateLimit int
}

// NewAnalysisHandler limits each IP to rateLimit AI calls per minute across both endpoints.
func NewAnalysisHandler(uc *usecase.AnalysisUsecase, rateLimit int) *AnalysisHandler {
	return &AnalysisHandler{uc: uc, rateLimit: rateLimit}
}

func (h *AnalysisHandler) RegisterRoutes(router fiber.Router) {
	limit := middleware.RateLimiter(h.rateLimit, time.Minute)
	router.Post("/gemini/analyze", limit, h.AnalyzeProfile)
	router.Post("/analyze/resume-ats", limit, h.AnalyzeResumeATS)
}

func (h *AnalysisHandler) AnalyzeProfile(c *fiber.Ctx) error {
	if !h.uc.Enabled() {
		return aiError(c, usecase.ErrAIUnavailable)
	}

	var req dto.AnalyzeProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return aiError(c, err)
	}

	res, err := h.uc.AnalyzeProfile(c.UserContext(), req)
	if err != nil {
		return aiError(c, err)
	}
	return c.JSON(res)
}

func (h *AnalysisHandler) AnalyzeResumeATS(c *fiber.Ctx) error {
	if !h.uc.Enabled() {
		return aiError(c, usecase.ErrAIUnavailable)
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "No file uploaded",
		}, err)
	}
	src, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to read resume",
		}, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to read resume",
		}, err)
	}

	res, err := h.uc.AnalyzeResumeATS(c.UserContext(), data, file.Header.Get("Content-Type"), file.Filename)
	if err != nil {
		if errors.Is(err, usecase.ErrUnreadableResume) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "Could not read text from the uploaded file",
			}, err)
		}
		return aiError(c, err)
	}
	return c.JSON(res)
}

func aiError(c *fiber.Ctx, err error) error {
	if errors.Is(err, usecase.ErrAIUnavailable) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: "AI analysis is not configured",
		})
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusInternalServerError,
		Message: "AI Analysis failed",
	}, err)
}
