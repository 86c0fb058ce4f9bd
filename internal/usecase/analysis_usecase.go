package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/placement-portal/internal/dto"
	"github.com/fadilmartias/placement-portal/internal/logger"
	"github.com/fadilmartias/placement-portal/internal/service"
	"github.com/fadilmartias/placement-portal/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

const maxResumeChars = 15000

const jsonOnlySystemPrompt = "You are an expert Career Counselor and ATS Resume Analyzer. You MUST respond with valid JSON only. No markdown formatting."

type AnalysisUsecase struct {
	ai       service.TextGenerator
	validate *validator.Validate
}

// NewAnalysisUsecase accepts a nil generator; every call then fails with ErrAIUnavailable.
func NewAnalysisUsecase(ai service.TextGenerator, validate *validator.Validate) *AnalysisUsecase {
	return &AnalysisUsecase{ai: ai, validate: validate}
}

func (uc *AnalysisUsecase) Enabled() bool {
	return uc.ai != nil
}

func (uc *AnalysisUsecase) AnalyzeProfile(ctx context.Context, req dto.AnalyzeProfileRequest) (*dto.AnalyzeProfileResponse, error) {
	if uc.ai == nil {
		return nil, ErrAIUnavailable
	}
	if err := uc.validate.StructCtx(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIFailed, err)
	}

	text, err := uc.ai.GenerateText(ctx, "", profilePrompt(req))
	if err != nil {
		logger.Error().Err(err).Str("provider", uc.ai.Provider()).Msg("AI Error")
		return nil, fmt.Errorf("%w: %v", ErrAIFailed, err)
	}
	return &dto.AnalyzeProfileResponse{Analysis: text}, nil
}

func (uc *AnalysisUsecase) AnalyzeResumeATS(ctx context.Context, data []byte, contentType, filename string) (*dto.ATSResult, error) {
	if uc.ai == nil {
		return nil, ErrAIUnavailable
	}

	content, err := util.ExtractText(data, contentType, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableResume, err)
	}

	text, err := uc.ai.GenerateText(ctx, jsonOnlySystemPrompt, atsPrompt(util.Truncate(content, maxResumeChars)))
	if err != nil {
		logger.Error().Err(err).Str("provider", uc.ai.Provider()).Msg("AI Error")
		return nil, fmt.Errorf("%w: %v", ErrAIFailed, err)
	}
	return ParseATSResult(text), nil
}

func profilePrompt(req dto.AnalyzeProfileRequest) string {
	profile := fmt.Sprintf("Student Profile: CGPA %v, Branch %v, Skills: %s.", req.Cgpa, req.Branch, strings.Join(req.Skills, ", "))
	return fmt.Sprintf(`
Act as a Career Counselor. Analyze this student profile:
%s

Provide a structured response in markdown with:
1. **Profile Strength**: (Weak/Moderate/Strong)
2. **Skill Gaps**: What key skills are missing for a Full Stack Developer role?
3. **Recommended Certifications**: List 2-3 specific certs.
4. **Action Plan**: 3 steps to improve employability in next 3 months.
Keep it concise.
`, profile)
}

func atsPrompt(content string) string {
	return fmt.Sprintf(`
Analyze this document as an Applicant Tracking System would:
"%s"

Return a STRICT JSON object with the following structure (no other text):
{
	"isResume": boolean,
	"atsScore": number,
	"profileScore": number,
	"performance": {
		"technical": number,
		"aptitude": number,
		"communication": number
	},
	"analysis": "markdown string"
}

isResume is false when the document is not a resume or CV.
atsScore (0-100) rates keyword coverage, section structure and parseability.
profileScore (0-100) rates overall candidate strength.
performance values (0-100) estimate technical skill quality, problem solving and clarity of writing.

Content for "analysis" field (Markdown):
1. **Profile Summary**: Brief assessment.
2. **Key Skills Identified**: Technical & Soft skills.
3. **Improvement Skills**: 3-5 high-value skills to add.
4. **ATS Feedback**: Missing sections, formatting and keyword issues.
5. **Detailed Action Plan**: Learning paths & job search strategy.
`, content)
}

// ParseATSResult reads the model's JSON reply. Replies that are not JSON fall
// back to neutral scores of 50 with the raw text as the analysis.
func ParseATSResult(raw string) *dto.ATSResult {
	content := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(raw, "```json", ""), "```", ""))
	if !gjson.Valid(content) {
		start, end := strings.Index(content, "{"), strings.LastIndex(content, "}")
		if start >= 0 && end > start && gjson.Valid(content[start:end+1]) {
			content = content[start : end+1]
		} else {
			return &dto.ATSResult{
				AtsScore:     50,
				IsResume:     true,
				ProfileScore: 50,
				Performance:  dto.Performance{Technical: 50, Aptitude: 50, Communication: 50},
				Analysis:     content,
			}
		}
	}

	res := gjson.Parse(content)
	isResume := true
	if v := res.Get("isResume"); v.Exists() {
		isResume = v.Bool()
	}
	return &dto.ATSResult{
		AtsScore:     score(res.Get("atsScore")),
		IsResume:     isResume,
		ProfileScore: score(res.Get("profileScore")),
		Performance: dto.Performance{
			Technical:     score(res.Get("performance.technical")),
			Aptitude:      score(res.Get("performance.aptitude")),
			Communication: score(res.Get("performance.communication")),
		},
		Analysis: res.Get("analysis").String(),
	}
}

func score(v gjson.Result) int {
	n := int(v.Float() + 0.5)
	switch {
	case n < 0:
		return 0
	case n > 100:
		return 100
	default:
		return n
	}
}
