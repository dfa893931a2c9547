// Package web provides the embedded Lox playground: an HTML page and a
// JSON run endpoint.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lemonberrylabs/golox/pkg/lox"
	"github.com/lemonberrylabs/golox/pkg/runtime"
)

//go:embed templates/*.html
var templateFS embed.FS

// maxSourceBytes caps the size of a submitted program.
const maxSourceBytes = 64 * 1024

// Handler serves the playground page and the run API.
type Handler struct {
	maxCallDepth int
}

// New creates a playground handler. maxCallDepth bounds the Lox call stack
// of each submitted program.
func New(maxCallDepth int) *Handler {
	return &Handler{maxCallDepth: maxCallDepth}
}

// Register mounts the playground routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.index)
	app.Post("/run", h.run)
}

func (h *Handler) index(c *fiber.Ctx) error {
	tmpl, err := template.ParseFS(templateFS, "templates/playground.html")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// runRequest is the POST /run payload.
type runRequest struct {
	Source string `json:"source"`
}

// runResponse is the POST /run result. Diagnostics holds one entry per
// reported error line; Output is the program's print output.
type runResponse struct {
	Status      string   `json:"status"`
	Output      string   `json:"output"`
	Diagnostics []string `json:"diagnostics"`
}

func (h *Handler) run(c *fiber.Ctx) error {
	var req runRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Source) > maxSourceBytes {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "source too large")
	}

	// Each request gets a fresh interpreter: the playground has no session
	// state between runs.
	var out, errOut bytes.Buffer
	runner := lox.NewRunner(&out, &errOut, runtime.WithMaxCallDepth(h.maxCallDepth))
	status := runner.Run(req.Source)

	var diagnostics []string
	if errOut.Len() > 0 {
		diagnostics = strings.Split(strings.TrimRight(errOut.String(), "\n"), "\n")
	}

	return c.JSON(runResponse{
		Status:      status.String(),
		Output:      out.String(),
		Diagnostics: diagnostics,
	})
}
