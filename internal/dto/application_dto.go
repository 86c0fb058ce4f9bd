package dto

type CreateApplicationRequest struct {
	DriveID   string `json:"driveId" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
}

type CreateApplicationResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type UploadResumeResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}
