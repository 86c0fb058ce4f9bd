package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fadilmartias/placement-portal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const geminiOK = `{"candidates":[{"content":{"role":"model","parts":[{"text":"**Profile Strength**: Strong"}]}}]}`

func newTestGemini(t *testing.T, handler http.HandlerFunc, retries int) *GeminiService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := NewGeminiService(context.Background(), &config.GeminiConfig{
		APIKey:     "test-key",
		Model:      "gemini-test",
		MaxRetries: retries,
		BaseURL:    srv.URL,
	})
	require.NoError(t, err)
	svc.BaseDelay = time.Millisecond
	return svc
}

func TestGeminiService_GenerateText(t *testing.T) {
	var body []byte
	svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-test:generateContent"), r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, geminiOK)
	}, 0)

	text, err := svc.GenerateText(context.Background(), "Be brief.", "Student Profile: CGPA 8.5")
	require.NoError(t, err)
	assert.Equal(t, "**Profile Strength**: Strong", text)
	assert.Equal(t, "gemini", svc.Provider())

	assert.Contains(t, gjson.GetBytes(body, "contents.0.parts.0.text").String(), "CGPA 8.5")
	assert.Equal(t, "Be brief.", gjson.GetBytes(body, "systemInstruction.parts.0.text").String())
}

func TestGeminiService_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`)
	}, 0)

	_, err := svc.GenerateText(context.Background(), "", "hello")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGeminiService_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, `{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`)
			return
		}
		_, _ = io.WriteString(w, geminiOK)
	}, 2)

	text, err := svc.GenerateText(context.Background(), "", "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGeminiService_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
	}, 3)

	_, err := svc.GenerateText(context.Background(), "", "hello")
	assert.ErrorContains(t, err, "generate content failed")
	assert.Equal(t, int32(1), calls.Load())
}

func TestGeminiService_RejectsEmptyPrompt(t *testing.T) {
	svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}, 0)

	_, err := svc.GenerateText(context.Background(), "", "   ")
	assert.ErrorContains(t, err, "prompt cannot be empty")
}

func TestSambaNovaService_GenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer samba-key", r.Header.Get("Authorization"))
		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Meta-Llama-3.1-8B-Instruct", req["model"])
		msgs, _ := req["messages"].([]any)
		if assert.Len(t, msgs, 2) {
			assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"{\"profileScore\":80}"}}]}`)
	}))
	defer srv.Close()

	svc := NewSambaNovaService(&config.SambaNovaConfig{APIKey: "samba-key", URL: srv.URL, Model: "Meta-Llama-3.1-8B-Instruct"})
	text, err := svc.GenerateText(context.Background(), "Respond with JSON.", "Analyze this")
	require.NoError(t, err)
	assert.Equal(t, `{"profileScore":80}`, text)
}

func TestSambaNovaService_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"bad key"}`)
	}))
	defer srv.Close()

	svc := NewSambaNovaService(&config.SambaNovaConfig{APIKey: "x", URL: srv.URL, Model: "m"})
	_, err := svc.GenerateText(context.Background(), "", "hi")
	assert.ErrorContains(t, err, "status 401")
}

func TestSambaNovaService_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"choices":[]}`)
	}))
	defer srv.Close()

	svc := NewSambaNovaService(&config.SambaNovaConfig{APIKey: "x", URL: srv.URL, Model: "m"})
	_, err := svc.GenerateText(context.Background(), "", "hi")
	assert.ErrorContains(t, err, "no response from LLM")
}

func TestNewTextGenerator_ProviderOrder(t *testing.T) {
	ctx := context.Background()
	samba := &config.SambaNovaConfig{APIKey: "s", URL: "http://localhost", Model: "m"}

	gen, err := NewTextGenerator(ctx, &config.GeminiConfig{}, &config.SambaNovaConfig{})
	require.NoError(t, err)
	assert.Nil(t, gen)

	gen, err = NewTextGenerator(ctx, &config.GeminiConfig{}, samba)
	require.NoError(t, err)
	assert.Equal(t, "sambanova", gen.Provider())

	gen, err = NewTextGenerator(ctx, &config.GeminiConfig{APIKey: "g", Model: "gemini-test"}, samba)
	require.NoError(t, err)
	assert.Equal(t, "gemini", gen.Provider())
}
