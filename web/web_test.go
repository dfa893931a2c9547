package web

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	New(1024).Register(app)
	return app
}

func postRun(t *testing.T, app *fiber.App, body string) (int, runResponse) {
	t.Helper()
	req := httptest.NewRequest("POST", "/run", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var result runResponse
	if resp.StatusCode == fiber.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			t.Fatal(err)
		}
	}
	return resp.StatusCode, result
}

func TestIndexServesPlayground(t *testing.T) {
	app := newTestApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "<textarea") {
		t.Error("page should contain the source editor")
	}
}

func TestRunHappyPath(t *testing.T) {
	app := newTestApp()
	code, result := postRun(t, app, `{"source": "print 1 + 2;"}`)

	if code != fiber.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if result.Status != "ok" {
		t.Errorf("status = %q", result.Status)
	}
	if result.Output != "3\n" {
		t.Errorf("output = %q", result.Output)
	}
	if len(result.Diagnostics) != 0 {
		t.Errorf("diagnostics = %v", result.Diagnostics)
	}
}

func TestRunSyntaxError(t *testing.T) {
	app := newTestApp()
	code, result := postRun(t, app, `{"source": "print 1"}`)

	if code != fiber.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if result.Status != "syntax_error" {
		t.Errorf("status = %q", result.Status)
	}
	if len(result.Diagnostics) != 1 || !strings.Contains(result.Diagnostics[0], "[line 1]") {
		t.Errorf("diagnostics = %v", result.Diagnostics)
	}
}

func TestRunRuntimeError(t *testing.T) {
	app := newTestApp()
	code, result := postRun(t, app, `{"source": "print \"a\";\nprint 1 + nil;"}`)

	if code != fiber.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if result.Status != "runtime_error" {
		t.Errorf("status = %q", result.Status)
	}
	if result.Output != "a\n" {
		t.Errorf("output before the error should be kept, got %q", result.Output)
	}
	if len(result.Diagnostics) != 2 || result.Diagnostics[1] != "[line 2]" {
		t.Errorf("diagnostics = %v", result.Diagnostics)
	}
}

func TestRunsAreIsolated(t *testing.T) {
	app := newTestApp()
	postRun(t, app, `{"source": "var leak = 1;"}`)
	_, result := postRun(t, app, `{"source": "print leak;"}`)

	if result.Status != "runtime_error" {
		t.Errorf("state must not leak between runs, status = %q", result.Status)
	}
}

func TestRunRejectsBadBody(t *testing.T) {
	app := newTestApp()
	code, _ := postRun(t, app, "{not json")
	if code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestRunRejectsOversizedSource(t *testing.T) {
	app := newTestApp()
	big, err := json.Marshal(runRequest{Source: strings.Repeat("x", maxSourceBytes+1)})
	if err != nil {
		t.Fatal(err)
	}
	code, _ := postRun(t, app, string(big))
	if code != fiber.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", code)
	}
}
