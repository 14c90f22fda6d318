package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"interviewcoach/internal/modkit/httpkit"
	phttp "interviewcoach/internal/platform/net/http"
)

func TestBuild_LaterOptionsWin(t *testing.T) {
	b := Build(WithName("a"), WithPrefix("/a"), WithName("b"), WithPorts(42))
	if b.Name != "b" || b.Prefix != "/a" {
		t.Fatalf("built = %+v", b)
	}
	if b.Ports.(int) != 42 {
		t.Fatalf("ports = %v", b.Ports)
	}
	if b.Subrouter == nil || b.Register == nil {
		t.Fatal("default hooks must be set")
	}
}

func TestBuilt_MountOrder(t *testing.T) {
	var order []string
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "mw")
			next.ServeHTTP(w, r)
		})
	}
	b := Build(
		WithPrefix("/things"),
		WithMiddlewares(mw),
		WithRegister(func(r httpkit.Router) {
			r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) {
				order = append(order, "extra")
				w.WriteHeader(http.StatusNoContent)
			})
		}),
	)

	mux := chi.NewRouter()
	b.Mount(phttp.AdaptChi(mux), func(r httpkit.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			order = append(order, "own")
			w.WriteHeader(http.StatusNoContent)
		})
	})

	for _, path := range []string{"/things/", "/things/extra"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("%s status = %d", path, rec.Code)
		}
	}
	want := []string{"mw", "own", "mw", "extra"}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestDeps_Defaults(t *testing.T) {
	var d Deps
	if d.Lexicon() == nil {
		t.Fatal("default lexicon is nil")
	}
	if got := len(d.Capabilities().Snapshot()); got != 2 {
		t.Fatalf("default registry gates = %d, want 2", got)
	}
}
