package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-linkedinify"
)

func newTestServer(t *testing.T, opts Options) (*Server, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	opts.Logger = zerolog.New(&logs)
	return New(opts), &logs
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("response is not JSON: %v (%q)", err, rec.Body.String())
	}
	return v
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{Version: "1.2.3"})
	rec := do(t, s.Handler(), http.MethodGet, "/healthz", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := decode[healthResponse](t, rec)
	if got.Status != "ok" || got.Version != "1.2.3" {
		t.Errorf("body = %+v", got)
	}
}

func TestTranscode(t *testing.T) {
	t.Parallel()

	s, logs := newTestServer(t, Options{})
	rec := do(t, s.Handler(), http.MethodPost, "/v1/transcode",
		`{"markdown":"# Hi\n* one","hashtags":["go"]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}

	got := decode[transcodeResponse](t, rec)
	want := linkedinify.ToBoldUnicode("Hi") + "\n\n• one\n\n#go"
	if got.Text != want {
		t.Errorf("text = %q, want %q", got.Text, want)
	}
	if got.Profile != linkedinify.ProfileLinkedIn {
		t.Errorf("profile = %q", got.Profile)
	}
	if got.Stats.Hashtags != 1 {
		t.Errorf("stats.hashtags = %d, want 1", got.Stats.Hashtags)
	}
	if got.Warnings == nil || len(got.Warnings) != 0 {
		t.Errorf("warnings = %v, want empty list", got.Warnings)
	}
	if !strings.Contains(rec.Body.String(), `"warnings":[]`) {
		t.Errorf("warnings should encode as [], body %q", rec.Body.String())
	}
	if !strings.Contains(logs.String(), `"path":"/v1/transcode"`) {
		t.Errorf("missing access log, got %q", logs.String())
	}
}

func TestTranscode_TwitterProfile(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{})
	body := `{"markdown":"` + strings.Repeat("word ", 100) + `","profile":"Twitter"}`
	rec := do(t, s.Handler(), http.MethodPost, "/v1/transcode", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	got := decode[transcodeResponse](t, rec)
	if got.Profile != linkedinify.ProfileTwitter {
		t.Errorf("profile = %q, want twitter", got.Profile)
	}
	if got.Stats.UTF16Length > 280 || !strings.HasSuffix(got.Text, "…") {
		t.Errorf("text not truncated: %d units, %q", got.Stats.UTF16Length, got.Text)
	}
}

func TestTranscode_Limits(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{
		LimitsFor: func(linkedinify.Profile) linkedinify.Limits { return linkedinify.Limits{MaxChars: 5} },
	})
	rec := do(t, s.Handler(), http.MethodPost, "/v1/transcode", `{"markdown":"too long for five"}`)

	got := decode[transcodeResponse](t, rec)
	if len(got.Warnings) != 1 || got.Warnings[0].Code != linkedinify.ExceedsCharLimit {
		t.Errorf("warnings = %v, want %s", got.Warnings, linkedinify.ExceedsCharLimit)
	}
}

func TestTranscode_EmptyMarkdown(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{})

	for _, body := range []string{`{"markdown":""}`, `{"markdown":"  \n "}`, `{"profile":"linkedin","hashtags":["go"]}`} {
		rec := do(t, s.Handler(), http.MethodPost, "/v1/transcode", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, body %q", body, rec.Code, rec.Body.String())
		}
		got := decode[transcodeResponse](t, rec)
		if got.Text != "" || got.Stats.Characters != 0 {
			t.Errorf("%s: text = %q, stats = %+v, want empty", body, got.Text, got.Stats)
		}
	}
}

func TestTranscode_BadRequests(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{MaxBodyBytes: 64})

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantField  string
		wantError  string
	}{
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest, wantError: "empty body"},
		{name: "malformed json", body: `{"markdown":`, wantStatus: http.StatusBadRequest, wantError: "invalid JSON"},
		{name: "unknown field", body: `{"markdown":"x","theme":"dark"}`, wantStatus: http.StatusBadRequest, wantError: "unknown field"},
		{name: "trailing data", body: `{"markdown":"x"} {}`, wantStatus: http.StatusBadRequest, wantError: "trailing"},
		{name: "unknown profile", body: `{"markdown":"x","profile":"myspace"}`, wantStatus: http.StatusBadRequest, wantField: "profile", wantError: "linkedin or twitter"},
		{name: "empty hashtag", body: `{"markdown":"x","hashtags":[""]}`, wantStatus: http.StatusBadRequest, wantField: "hashtags[0]"},
		{name: "oversized", body: `{"markdown":"` + strings.Repeat("x", 100) + `"}`, wantStatus: http.StatusRequestEntityTooLarge, wantError: "64 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := do(t, s.Handler(), http.MethodPost, "/v1/transcode", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %q)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			got := decode[errorResponse](t, rec)
			if got.Field != tt.wantField {
				t.Errorf("field = %q, want %q", got.Field, tt.wantField)
			}
			if !strings.Contains(got.Error, tt.wantError) {
				t.Errorf("error = %q, want it to contain %q", got.Error, tt.wantError)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{})
	rec := do(t, s.Handler(), http.MethodPost, "/v1/preview",
		`{"markdown":"# Title\n\n<script>alert(1)</script>"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	got := decode[previewResponse](t, rec)
	if !strings.Contains(got.HTML, "<h1") {
		t.Errorf("html = %q, want heading", got.HTML)
	}
	if strings.Contains(got.HTML, "<script>") {
		t.Errorf("html = %q, want script stripped", got.HTML)
	}
}

func TestPreview_MissingMarkdown(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{})
	rec := do(t, s.Handler(), http.MethodPost, "/v1/preview", `{}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	got := decode[errorResponse](t, rec)
	if got.Field != "markdown" || !strings.Contains(got.Error, "required") {
		t.Errorf("body = %+v, want required markdown", got)
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{})
	rec := do(t, s.Handler(), http.MethodPost, "/v1/stats",
		`{"text":"hello @ann #go","profile":"twitter"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	got := decode[statsResponse](t, rec)
	if got.Stats.Words != 3 || got.Stats.Mentions != 1 || got.Stats.Hashtags != 1 {
		t.Errorf("stats = %+v", got.Stats)
	}
	if got.Limits.MaxChars != 280 {
		t.Errorf("limits.maxChars = %d, want 280", got.Limits.MaxChars)
	}
}

func TestRouting(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{})

	if rec := do(t, s.Handler(), http.MethodGet, "/v1/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown route status = %d, want 404", rec.Code)
	}
	if rec := do(t, s.Handler(), http.MethodGet, "/v1/transcode", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /v1/transcode status = %d, want 405", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{AllowedOrigins: []string{"https://example.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/v1/transcode", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/v1/transcode", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin got Access-Control-Allow-Origin = %q", got)
	}
}

func TestRecoverJSON(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	h := recoverJSON(zerolog.New(&logs))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if got := decode[errorResponse](t, rec); got.Error != "internal error" {
		t.Errorf("error = %q", got.Error)
	}
	if !strings.Contains(logs.String(), "panic recovered") || !strings.Contains(logs.String(), "boom") {
		t.Errorf("logs = %q", logs.String())
	}
}

func TestNew_PanicsOnUnknownProfile(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("New() did not panic")
		}
	}()
	New(Options{Profile: "myspace"})
}

func TestServe_Shutdown(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	s, _ := newTestServer(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}
