package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fadilmartias/placement-portal/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply  string
	err    error
	system string
	prompt string
}

func (f *fakeGenerator) GenerateText(_ context.Context, system, prompt string) (string, error) {
	f.system, f.prompt = system, prompt
	return f.reply, f.err
}

func (f *fakeGenerator) Provider() string { return "fake" }

func TestAnalysisUsecase_Unconfigured(t *testing.T) {
	uc := NewAnalysisUsecase(nil, validator.New())
	assert.False(t, uc.Enabled())

	_, err := uc.AnalyzeProfile(context.Background(), dto.AnalyzeProfileRequest{Cgpa: 8.5, Branch: "CSE", Skills: []string{"Go"}})
	assert.ErrorIs(t, err, ErrAIUnavailable)

	_, err = uc.AnalyzeResumeATS(context.Background(), []byte("resume"), "text/plain", "cv.txt")
	assert.ErrorIs(t, err, ErrAIUnavailable)
}

func TestAnalysisUsecase_AnalyzeProfile(t *testing.T) {
	gen := &fakeGenerator{reply: "1. **Profile Strength**: Strong"}
	uc := NewAnalysisUsecase(gen, validator.New())

	res, err := uc.AnalyzeProfile(context.Background(), dto.AnalyzeProfileRequest{
		Cgpa: 8.5, Branch: "CSE", Skills: []string{"React", "Node.js"},
	})
	require.NoError(t, err)
	assert.Equal(t, "1. **Profile Strength**: Strong", res.Analysis)
	assert.Contains(t, gen.prompt, "Student Profile: CGPA 8.5, Branch CSE, Skills: React, Node.js.")
	assert.Contains(t, gen.prompt, "Act as a Career Counselor.")
}

func TestAnalysisUsecase_AnalyzeProfileFailures(t *testing.T) {
	uc := NewAnalysisUsecase(&fakeGenerator{err: errors.New("quota exceeded")}, validator.New())

	_, err := uc.AnalyzeProfile(context.Background(), dto.AnalyzeProfileRequest{Cgpa: 8.5, Branch: "CSE", Skills: []string{}})
	assert.ErrorIs(t, err, ErrAIFailed)

	_, err = uc.AnalyzeProfile(context.Background(), dto.AnalyzeProfileRequest{Branch: "CSE"})
	assert.ErrorIs(t, err, ErrAIFailed)
}

func TestAnalysisUsecase_AnalyzeResumeATS(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n{\"isResume\":true,\"atsScore\":78,\"profileScore\":81,\"performance\":{\"technical\":85,\"aptitude\":70,\"communication\":77},\"analysis\":\"**Profile Summary**: solid\"}\n```"}
	uc := NewAnalysisUsecase(gen, validator.New())

	long := strings.Repeat("a", maxResumeChars+500)
	res, err := uc.AnalyzeResumeATS(context.Background(), []byte(long), "text/plain", "cv.txt")
	require.NoError(t, err)
	assert.Equal(t, 78, res.AtsScore)
	assert.True(t, res.IsResume)
	assert.Equal(t, 81, res.ProfileScore)
	assert.Equal(t, dto.Performance{Technical: 85, Aptitude: 70, Communication: 77}, res.Performance)
	assert.Equal(t, "**Profile Summary**: solid", res.Analysis)

	assert.Equal(t, jsonOnlySystemPrompt, gen.system)
	assert.Contains(t, gen.prompt, strings.Repeat("a", maxResumeChars))
	assert.NotContains(t, gen.prompt, strings.Repeat("a", maxResumeChars+1))
}

func TestAnalysisUsecase_AnalyzeResumeATSUnreadable(t *testing.T) {
	uc := NewAnalysisUsecase(&fakeGenerator{}, validator.New())

	_, err := uc.AnalyzeResumeATS(context.Background(), []byte{}, "text/plain", "cv.txt")
	assert.ErrorIs(t, err, ErrUnreadableResume)
}

func TestParseATSResult(t *testing.T) {
	t.Run("not a resume", func(t *testing.T) {
		res := ParseATSResult(`{"isResume":false,"atsScore":0,"analysis":"This is a grocery list."}`)
		assert.False(t, res.IsResume)
		assert.Zero(t, res.AtsScore)
	})

	t.Run("json wrapped in prose", func(t *testing.T) {
		res := ParseATSResult("Here you go:\n{\"atsScore\": 64.6, \"profileScore\": 140}\nGood luck!")
		assert.Equal(t, 65, res.AtsScore)
		assert.Equal(t, 100, res.ProfileScore)
		assert.True(t, res.IsResume)
	})

	t.Run("fallback", func(t *testing.T) {
		res := ParseATSResult("I could not produce JSON, but the resume looks fine.")
		assert.Equal(t, 50, res.AtsScore)
		assert.Equal(t, 50, res.ProfileScore)
		assert.Equal(t, dto.Performance{Technical: 50, Aptitude: 50, Communication: 50}, res.Performance)
		assert.Equal(t, "I could not produce JSON, but the resume looks fine.", res.Analysis)
	})
}
