package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fliklylike-cyber/Media-Grab/internal/model"
	"github.com/fliklylike-cyber/Media-Grab/internal/validate"
	"github.com/fliklylike-cyber/Media-Grab/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGrabService struct {
	grabFunc  func(ctx context.Context, sub model.Submission) (model.Result, error)
	state     model.State
	stats     model.Stats
	checkFunc func(raw string) error
}

func (m *mockGrabService) Grab(ctx context.Context, sub model.Submission) (model.Result, error) {
	return m.grabFunc(ctx, sub)
}

func (m *mockGrabService) State() model.State {
	if m.state == "" {
		return model.StateIdle
	}
	return m.state
}

func (m *mockGrabService) Stats() model.Stats {
	return m.stats
}

func (m *mockGrabService) CheckURL(raw string) error {
	if m.checkFunc != nil {
		return m.checkFunc(raw)
	}
	return validate.CheckURL(raw)
}

func (m *mockGrabService) Classify(raw string) (string, bool) {
	if raw == "https://youtube.com/watch?v=abc" {
		return "YouTube", true
	}
	return "", false
}

func TestHandler_handleGrab(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		grabResult  model.Result
		grabErr     error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "Successful grab",
			body:        `{"url":"https://youtube.com/watch?v=abc","format":"mp4"}`,
			contentType: "application/json",
			grabResult: model.Result{
				Status:   model.StatusSuccess,
				Message:  "Success! Your MP4 Video is ready for download.",
				Platform: "YouTube",
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Success! Your MP4 Video is ready for download.",
		},
		{
			name:        "Simulated failure",
			body:        `{"url":"https://youtube.com/watch?v=abc","format":"mp4"}`,
			contentType: "application/json",
			grabResult: model.Result{
				Status:  model.StatusError,
				Message: "Download failed. Please try again.",
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Download failed. Please try again.",
		},
		{
			name:        "Empty URL",
			body:        `{"url":"","format":"mp4"}`,
			contentType: "application/json",
			grabErr:     validate.ErrEmptyURL,
			wantStatus:  http.StatusBadRequest,
			wantMessage: MsgEmptyURL,
		},
		{
			name:        "Invalid URL",
			body:        `{"url":"not a url","format":"mp4"}`,
			contentType: "application/json",
			grabErr:     validate.ErrInvalidURL,
			wantStatus:  http.StatusBadRequest,
			wantMessage: MsgInvalidURL,
		},
		{
			name:        "Busy",
			body:        `{"url":"https://youtube.com/watch?v=abc","format":"mp4"}`,
			contentType: "application/json",
			grabErr:     worker.ErrBusy,
			wantStatus:  http.StatusConflict,
			wantMessage: MsgBusy,
		},
		{
			name:        "Unknown format",
			body:        `{"url":"https://youtube.com/watch?v=abc","format":"flac"}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Unknown format",
		},
		{
			name:        "Wrong content type",
			body:        "https://youtube.com/watch?v=abc",
			contentType: "text/plain",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "Malformed JSON",
			body:        `{"url":`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mockGrabService{
				grabFunc: func(ctx context.Context, sub model.Submission) (model.Result, error) {
					return tt.grabResult, tt.grabErr
				},
			}

			h := NewHandler(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/grab", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", tt.contentType)

			rr := httptest.NewRecorder()
			h.handleGrab(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantMessage != "" {
				var result model.Result
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
				assert.Equal(t, tt.wantMessage, result.Message)
			}
		})
	}
}

func TestHandler_handleGrab_PassesSubmission(t *testing.T) {
	var got model.Submission
	mockService := &mockGrabService{
		grabFunc: func(ctx context.Context, sub model.Submission) (model.Result, error) {
			got = sub
			return model.Result{Status: model.StatusSuccess, Message: "ok"}, nil
		},
	}

	h := NewHandler(mockService)

	body := `{"url":"https://youtu.be/abc","format":"mp3"}`
	req := httptest.NewRequest(http.MethodPost, "/api/grab", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	h.handleGrab(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://youtu.be/abc", got.URL)
	assert.Equal(t, model.FormatMP3, got.Format)
}

func TestHandler_handleStatus(t *testing.T) {
	h := NewHandler(&mockGrabService{state: model.StateBusy})

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rr := httptest.NewRecorder()
	h.handleStatus(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"state":"busy"}`, rr.Body.String())
}

func TestHandler_handleStats(t *testing.T) {
	h := NewHandler(&mockGrabService{stats: model.Stats{Accepted: 3, Rejected: 1, Succeeded: 2, Failed: 1}})

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rr := httptest.NewRecorder()
	h.handleStats(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"accepted":3,"rejected":1,"succeeded":2,"failed":1}`, rr.Body.String())
}

func TestHandler_handleValidateDebug(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want ValidateDebugResponse
	}{
		{
			name: "Valid supported URL",
			url:  "https://youtube.com/watch?v=abc",
			want: ValidateDebugResponse{
				URL:       "https://youtube.com/watch?v=abc",
				Valid:     true,
				Platform:  "YouTube",
				Supported: true,
			},
		},
		{
			name: "Valid unsupported URL",
			url:  "https://example.org/video",
			want: ValidateDebugResponse{
				URL:   "https://example.org/video",
				Valid: true,
			},
		},
		{
			name: "Empty URL",
			url:  "",
			want: ValidateDebugResponse{
				Message: MsgEmptyURL,
			},
		},
		{
			name: "Invalid URL",
			url:  "nope",
			want: ValidateDebugResponse{
				URL:     "nope",
				Message: MsgInvalidURL,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&mockGrabService{})

			req := httptest.NewRequest(http.MethodGet, "/debug/validate?url="+tt.url, nil)
			rr := httptest.NewRecorder()
			h.handleValidateDebug(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)

			var got ValidateDebugResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandler_handlePage(t *testing.T) {
	h := NewHandler(&mockGrabService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.handlePage(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "MP4 Video")
	assert.Contains(t, rr.Body.String(), "MP3 Audio")
	assert.Contains(t, rr.Body.String(), "/api/grab")
}

func TestHandler_RegisterRoutes(t *testing.T) {
	mockService := &mockGrabService{
		grabFunc: func(ctx context.Context, sub model.Submission) (model.Result, error) {
			return model.Result{Status: model.StatusSuccess, Message: "ok"}, nil
		},
	}
	h := NewHandler(mockService)

	router := h.RegisterRoutes()
	require.NotNil(t, router)

	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
