package handler

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/placement-portal/internal/dto"
	"github.com/fadilmartias/placement-portal/internal/usecase"
	"github.com/fadilmartias/placement-portal/internal/util"
	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uc      *usecase.ResumeUsecase
	maxSize int64
}

func NewUploadHandler(uc *usecase.ResumeUsecase, maxSize int64) *UploadHandler {
	return &UploadHandler{uc: uc, maxSize: maxSize}
}

func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/upload/resume", h.UploadResume)
}

func (h *UploadHandler) UploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "No file part",
		}, err)
	}
	if file.Filename == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "No selected file",
		})
	}
	studentID := c.FormValue("studentId")
	if studentID == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "studentId is required",
		})
	}
	if h.maxSize > 0 && file.Size > h.maxSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("resume file size is too large (max %d bytes)", h.maxSize),
		})
	}

	src, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Upload failed",
		}, err)
	}
	defer src.Close()

	filename, err := h.uc.Upload(c.UserContext(), studentID, file.Filename, src)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidFilename) || errors.Is(err, usecase.ErrMissingUploadField) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Upload failed",
		}, err)
	}

	return c.JSON(dto.UploadResumeResponse{
		Message:  "Resume uploaded successfully",
		Filename: filename,
	})
}
