package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "interviewcoach/internal/platform/net/http"
	"interviewcoach/internal/services/reports/service"
)

func TestGenerateRoute(t *testing.T) {
	mux := chi.NewRouter()
	phttp.AdaptChi(mux).Route("/reports", func(r phttp.Router) { Register(r, service.New(nil)) })

	cases := []struct {
		name, body string
		status     int
	}{
		{"empty history", `{"domain":"electronics"}`, stdhttp.StatusOK},
		{"bad session id", `{"session_id":"nope"}`, stdhttp.StatusBadRequest},
		{"sessions disabled", `{"session_id":"6f1c1a52-9b7e-4c3e-8a43-2f0d9e4b7c11"}`, stdhttp.StatusServiceUnavailable},
		{"unknown field", `{"turns":[]}`, stdhttp.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodPost, "/reports/generate", strings.NewReader(tc.body)))
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tc.status, rec.Body.String())
			}
			if tc.status != stdhttp.StatusOK {
				return
			}
			var env struct {
				Data struct {
					Domain     string   `json:"domain"`
					Weaknesses []string `json:"weaknesses"`
				} `json:"data"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if env.Data.Domain != "electronics" || len(env.Data.Weaknesses) != 1 || env.Data.Weaknesses[0] != "Complete more sessions for analysis" {
				t.Fatalf("report = %+v", env.Data)
			}
		})
	}
}
