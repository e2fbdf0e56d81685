package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hostkeep/rental-app/utils"
)

func newGeminiBackend(t *testing.T, statusCode int, body string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(statusCode)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func TestGeminiService_NotConfigured(t *testing.T) {
	utils.InitLogger()
	server, calls := newGeminiBackend(t, http.StatusOK, `{}`)

	gs := &GeminiService{apiKey: "", baseURL: server.URL, httpClient: server.Client()}

	if got := gs.AnalyzeIssuePhoto(context.Background(), "aGVsbG8=", "image/png"); got != MsgNotConfigured {
		t.Errorf("AnalyzeIssuePhoto() = %q, want %q", got, MsgNotConfigured)
	}
	if got := gs.SummarizeMaintenanceNotes(context.Background(), []string{"note"}); got != MsgNotConfigured {
		t.Errorf("SummarizeMaintenanceNotes() = %q, want %q", got, MsgNotConfigured)
	}
	if *calls != 0 {
		t.Errorf("expected no network calls without a key, got %d", *calls)
	}
}

func TestGeminiService_EmptyNotesSkipsNetwork(t *testing.T) {
	utils.InitLogger()
	server, calls := newGeminiBackend(t, http.StatusOK, `{}`)

	gs := &GeminiService{apiKey: "test-key", baseURL: server.URL, httpClient: server.Client()}

	if got := gs.SummarizeMaintenanceNotes(context.Background(), nil); got != MsgNoNotes {
		t.Errorf("SummarizeMaintenanceNotes() = %q, want %q", got, MsgNoNotes)
	}
	if *calls != 0 {
		t.Errorf("expected no network calls for empty notes, got %d", *calls)
	}
}

func TestGeminiService_AnalyzeIssuePhoto(t *testing.T) {
	utils.InitLogger()

	tests := []struct {
		name           string
		mockStatusCode int
		mockResponse   string
		want           string
	}{
		{
			name:           "model text returned",
			mockStatusCode: http.StatusOK,
			mockResponse:   `{"candidates":[{"content":{"parts":[{"text":"Broken cabinet hinge on the left door."}]}}]}`,
			want:           "Broken cabinet hinge on the left door.",
		},
		{
			name:           "empty response",
			mockStatusCode: http.StatusOK,
			mockResponse:   `{"candidates":[]}`,
			want:           MsgAnalyzeEmpty,
		},
		{
			name:           "request failure",
			mockStatusCode: http.StatusInternalServerError,
			mockResponse:   `{"error":{"message":"boom"}}`,
			want:           MsgAnalyzeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newGeminiBackend(t, tt.mockStatusCode, tt.mockResponse)
			gs := &GeminiService{apiKey: "test-key", baseURL: server.URL, httpClient: server.Client()}

			got := gs.AnalyzeIssuePhoto(context.Background(), "aGVsbG8=", "image/png")
			if got != tt.want {
				t.Errorf("AnalyzeIssuePhoto() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGeminiService_SummarizeMaintenanceNotes(t *testing.T) {
	utils.InitLogger()

	tests := []struct {
		name           string
		mockStatusCode int
		mockResponse   string
		want           string
	}{
		{
			name:           "model text returned",
			mockStatusCode: http.StatusOK,
			mockResponse:   `{"candidates":[{"content":{"parts":[{"text":"Mostly plumbing issues; the faucet keeps recurring."}]}}]}`,
			want:           "Mostly plumbing issues; the faucet keeps recurring.",
		},
		{
			name:           "empty response",
			mockStatusCode: http.StatusOK,
			mockResponse:   `{"candidates":[]}`,
			want:           MsgSummarizeEmpty,
		},
		{
			name:           "request failure",
			mockStatusCode: http.StatusServiceUnavailable,
			mockResponse:   `{"error":{"message":"overloaded"}}`,
			want:           MsgSummarizeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newGeminiBackend(t, tt.mockStatusCode, tt.mockResponse)
			gs := &GeminiService{apiKey: "test-key", baseURL: server.URL, httpClient: server.Client()}

			got := gs.SummarizeMaintenanceNotes(context.Background(), []string{"fixed faucet", "replaced bulb"})
			if got != tt.want {
				t.Errorf("SummarizeMaintenanceNotes() = %q, want %q", got, tt.want)
			}
		})
	}
}
