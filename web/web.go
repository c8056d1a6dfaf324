// Package web provides the Slate playground HTTP surface: a small embedded
// UI and a JSON API for running sources and browsing run history.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/slatelang/slate/pkg/ast"
	"github.com/slatelang/slate/pkg/diag"
	"github.com/slatelang/slate/pkg/runtime"
	"github.com/slatelang/slate/pkg/store"
)

//go:embed templates/playground.html
var templateFS embed.FS

// Handler serves the playground pages and API.
type Handler struct {
	store   *store.Store
	version string
}

// New creates a new playground handler.
func New(s *store.Store, version string) *Handler {
	return &Handler{store: s, version: version}
}

// NewApp creates a Fiber app with request logging, ready for Register.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{AppName: "slate-playground"})
	app.Use(logger.New())
	return app
}

// Register adds playground routes to the Fiber app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.playground)
	app.Post("/api/run", h.run)
	app.Get("/api/runs", h.listRuns)
	app.Get("/api/runs/:id", h.getRun)
}

type runRequest struct {
	Source string `json:"source"`
}

type runResponse struct {
	ID            string   `json:"id"`
	Output        string   `json:"output"`
	Errors        []string `json:"errors"`
	RuntimeErrors []string `json:"runtimeErrors"`
	AST           string   `json:"ast"`
}

// run executes the posted source in a fresh engine and records the result.
func (h *Handler) run(c *fiber.Ctx) error {
	var req runRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	rep := diag.NewCollect()
	var out bytes.Buffer
	eng := runtime.NewEngine(&out, rep)

	start := time.Now()
	program := eng.Run(req.Source)
	elapsed := time.Since(start)

	run := h.store.AddRun(&store.Run{
		Source:        req.Source,
		Output:        out.String(),
		Errors:        rep.Errors,
		RuntimeErrors: rep.RuntimeErrors,
		StartTime:     start,
		DurationMS:    elapsed.Milliseconds(),
	})

	resp := runResponse{
		ID:            run.ID,
		Output:        out.String(),
		Errors:        rep.Errors,
		RuntimeErrors: rep.RuntimeErrors,
	}
	if !rep.HadError() {
		resp.AST = ast.PrintProgram(program)
	}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}
	if resp.RuntimeErrors == nil {
		resp.RuntimeErrors = []string{}
	}
	return c.JSON(resp)
}

// listRuns returns recent runs, newest first.
func (h *Handler) listRuns(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	return c.JSON(fiber.Map{"runs": h.store.ListRuns(limit)})
}

// getRun returns a single stored run.
func (h *Handler) getRun(c *fiber.Ctx) error {
	run, err := h.store.GetRun(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(run)
}

type pageData struct {
	Version string
}

// playground serves the embedded editor page.
func (h *Handler) playground(c *fiber.Ctx) error {
	tmpl, err := template.ParseFS(templateFS, "templates/playground.html")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("template error: " + err.Error())
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, pageData{Version: h.version}); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("template error: " + err.Error())
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.Send(buf.Bytes())
}
