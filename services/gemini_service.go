package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/hostkeep/rental-app/utils"
)

const (
	geminiBaseURL     = "https://generativelanguage.googleapis.com"
	photoModel        = "gemini-3-flash-preview"
	summaryModel      = "gemini-3-pro-preview"
	photoInstruction  = "Describe the issue shown in this photo for a property maintenance ticket. Be concise and specific. Start with what is broken or damaged."
	notesPromptHeader = "Summarize the following maintenance notes from a short-term rental business into a brief report. Group similar issues if possible and highlight any recurring problems."
)

// Fixed degradation strings. Gateway calls are advisory: whatever goes
// wrong, the caller gets one of these instead of an error.
const (
	MsgNotConfigured   = "Gemini API key not configured."
	MsgNoNotes         = "No maintenance notes available to summarize."
	MsgAnalyzeEmpty    = "Could not analyze the image."
	MsgAnalyzeFailed   = "Error analyzing image. Please describe it manually."
	MsgSummarizeEmpty  = "Could not generate summary."
	MsgSummarizeFailed = "Error generating summary."
)

// GeminiService is the pass-through to the generateContent API. It is
// built once at startup; without a key every call short-circuits to the
// configured-off string before touching the network. The HTTP client
// deliberately carries no timeout, requests ride the caller's context.
type GeminiService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiService() *GeminiService {
	return &GeminiService{
		apiKey:     os.Getenv("GEMINI_API_KEY"),
		baseURL:    geminiBaseURL,
		httpClient: &http.Client{},
	}
}

// IsAvailable reports whether a credential is configured.
func (gs *GeminiService) IsAvailable() bool {
	return gs.apiKey != ""
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiPart struct {
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
	Text       string            `json:"text,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// AnalyzeIssuePhoto asks the model to describe a damage photo for a
// ticket. base64Image is the raw image, already base64 encoded.
func (gs *GeminiService) AnalyzeIssuePhoto(ctx context.Context, base64Image, mimeType string) string {
	if !gs.IsAvailable() {
		return MsgNotConfigured
	}

	req := geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{
		{InlineData: &geminiInlineData{MimeType: mimeType, Data: base64Image}},
		{Text: photoInstruction},
	}}}}

	text, err := gs.generateContent(ctx, photoModel, req)
	if err != nil {
		utils.ErrorLogger.Printf("gemini: analyzing image: %v", err)
		return MsgAnalyzeFailed
	}
	if text == "" {
		return MsgAnalyzeEmpty
	}
	return text
}

// SummarizeMaintenanceNotes turns the collected maintenance notes into
// a short report. An empty notes list never reaches the network.
func (gs *GeminiService) SummarizeMaintenanceNotes(ctx context.Context, notes []string) string {
	if !gs.IsAvailable() {
		return MsgNotConfigured
	}
	if len(notes) == 0 {
		return MsgNoNotes
	}

	prompt := fmt.Sprintf("%s\n\n---\n%s\n---\n", notesPromptHeader, strings.Join(notes, "\n---\n"))
	req := geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}}

	text, err := gs.generateContent(ctx, summaryModel, req)
	if err != nil {
		utils.ErrorLogger.Printf("gemini: summarizing notes: %v", err)
		return MsgSummarizeFailed
	}
	if text == "" {
		return MsgSummarizeEmpty
	}
	return text
}

// generateContent performs one generateContent call and returns the
// first candidate's text.
func (gs *GeminiService) generateContent(ctx context.Context, model string, payload geminiRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", gs.baseURL, model, gs.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := gs.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, raw)
	}

	var decoded geminiResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", err
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return strings.TrimSpace(decoded.Candidates[0].Content.Parts[0].Text), nil
}
