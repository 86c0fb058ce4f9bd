package dto

// AnalyzeProfileRequest keeps cgpa and branch loosely typed; they are only
// interpolated into the prompt.
type AnalyzeProfileRequest struct {
	Cgpa   any      `json:"cgpa" validate:"required"`
	Branch any      `json:"branch" validate:"required"`
	Skills []string `json:"skills" validate:"required"`
}

type AnalyzeProfileResponse struct {
	Analysis string `json:"analysis"`
}

type Performance struct {
	Technical     int `json:"technical"`
	Aptitude      int `json:"aptitude"`
	Communication int `json:"communication"`
}

type ATSResult struct {
	AtsScore     int         `json:"atsScore"`
	IsResume     bool        `json:"isResume"`
	ProfileScore int         `json:"profileScore"`
	Performance  Performance `json:"performance"`
	Analysis     string      `json:"analysis"`
}
