package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetJSON(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		wantStatus  int
		errContains string
		want        string
	}{
		{
			name:   "ok",
			status: http.StatusOK,
			body:   `{"name":"value"}`,
			want:   "value",
		},
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			body:       `{"error":true,"reason":"overloaded"}`,
			wantErr:    true,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "bad request",
			status:     http.StatusBadRequest,
			body:       `{"error":true,"reason":"Invalid date"}`,
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "malformed json",
			status:      http.StatusOK,
			body:        `{"name":`,
			wantErr:     true,
			errContains: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUA string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUA = r.Header.Get("User-Agent")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			var out struct {
				Name string `json:"name"`
			}
			err := GetJSON(context.Background(), server.Client(), server.URL, "weatherwise-test", &out)

			if gotUA != "weatherwise-test" {
				t.Errorf("User-Agent = %q, want weatherwise-test", gotUA)
			}

			if tt.wantErr {
				if err == nil {
					t.Fatal("GetJSON() expected error but got none")
				}
				if tt.wantStatus != 0 {
					var statusErr *StatusError
					if !errors.As(err, &statusErr) {
						t.Fatalf("GetJSON() error = %v, want StatusError", err)
					}
					if statusErr.StatusCode != tt.wantStatus {
						t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, tt.wantStatus)
					}
					if !strings.Contains(err.Error(), tt.body) {
						t.Errorf("error %q does not carry the upstream body", err)
					}
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("GetJSON() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("GetJSON() unexpected error = %v", err)
			}
			if out.Name != tt.want {
				t.Errorf("Name = %q, want %q", out.Name, tt.want)
			}
		})
	}
}

func TestGetJSON_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	var out map[string]any
	err := GetJSON(context.Background(), http.DefaultClient, url, "", &out)
	if err == nil || !strings.Contains(err.Error(), "failed to fetch") {
		t.Errorf("GetJSON() error = %v, want fetch failure", err)
	}
}
