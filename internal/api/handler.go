// Package api exposes the parsing pipeline over HTTP for the dashboard
// frontend: one upload/parse endpoint plus read endpoints for stored
// parse runs.
package api

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lavepeguesucesso-png/Lave1/internal/config"
	"github.com/lavepeguesucesso-png/Lave1/internal/extractor"
	"github.com/lavepeguesucesso-png/Lave1/internal/models"
	"github.com/lavepeguesucesso-png/Lave1/internal/parser"
	"github.com/lavepeguesucesso-png/Lave1/internal/report"
	"github.com/lavepeguesucesso-png/Lave1/internal/storage"
	"github.com/lavepeguesucesso-png/Lave1/internal/writer"
)

const apiVersion = "1.0.0"

// ParseResponse is the JSON response from POST /api/parse.
type ParseResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error,omitempty"`
	RunID        string               `json:"runId,omitempty"`
	Metadata     *models.Metadata     `json:"metadata,omitempty"`
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
	Advisories   []models.Advisory    `json:"advisories,omitempty"`
	Summary      *report.Summary      `json:"summary,omitempty"`
}

// Server wires the HTTP handlers to their collaborators. The store may
// be nil, in which case parse runs are not persisted.
type Server struct {
	cfg   *config.Config
	store *storage.Database
}

func NewServer(cfg *config.Config, store *storage.Database) *Server {
	return &Server{cfg: cfg, store: store}
}

// App builds the fiber application with all routes registered.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: s.cfg.MaxUploadMB << 20,
	})

	app.Get("/api/health", s.handleHealth)
	app.Post("/api/parse", s.handleParse)
	app.Get("/api/runs", s.handleListRuns)
	app.Get("/api/runs/:id", s.handleGetRun)
	app.Get("/api/runs/:id/summary", s.handleRunSummary)
	app.Get("/api/runs/:id/export", s.handleExport)

	if s.cfg.StaticDir != "" {
		app.Static("/", s.cfg.StaticDir)
	}

	return app
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": apiVersion,
	})
}

func (s *Server) handleParse(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to open uploaded file.")
	}
	defer file.Close()

	text, err := extractor.Read(file, fileHeader.Filename)
	if err != nil {
		return writeError(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("Text extraction failed: %v", err))
	}

	result := parser.ParseDocument(text)

	// The frontend has one upload slot per format; a report landing in
	// the wrong slot is worth flagging but never blocks processing.
	if expected := slotReportType(c.FormValue("slot")); expected != "" && expected != result.Metadata.ReportType {
		result.Advisories = append(result.Advisories, models.Advisory{
			Code: parser.AdvisorySlotMismatch,
			Message: fmt.Sprintf("file detected as %s but uploaded to the %s slot",
				result.Metadata.ReportType, expected),
		})
	}

	resp := ParseResponse{
		Success:      true,
		Metadata:     &result.Metadata,
		Transactions: result.Transactions,
		Count:        len(result.Transactions),
		Advisories:   result.Advisories,
		Summary:      report.Summarize(result.Transactions),
	}

	if s.store != nil && c.FormValue("save") != "false" {
		run := storage.NewParseRun(uuid.NewString(), fileHeader.Filename, result)
		if err := s.store.SaveRun(run); err != nil {
			return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("Failed to save parse run: %v", err))
		}
		resp.RunID = run.ID
	}

	return c.JSON(resp)
}

func (s *Server) handleListRuns(c *fiber.Ctx) error {
	if s.store == nil {
		return writeError(c, fiber.StatusServiceUnavailable, "Run history is not enabled.")
	}
	runs, err := s.store.ListRuns()
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"success": true, "runs": runs})
}

func (s *Server) handleGetRun(c *fiber.Ctx) error {
	run, err := s.loadRun(c)
	if run == nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "run": run})
}

func (s *Server) handleRunSummary(c *fiber.Ctx) error {
	run, err := s.loadRun(c)
	if run == nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"runId":   run.ID,
		"summary": report.Summarize(run.Normalized()),
	})
}

func (s *Server) handleExport(c *fiber.Ctx) error {
	run, err := s.loadRun(c)
	if run == nil {
		return err
	}

	result := &models.ParseResult{
		Metadata: models.Metadata{
			UnitName:   run.UnitName,
			Period:     run.Period,
			ReportType: models.ReportType(run.ReportType),
		},
		Transactions: run.Normalized(),
	}

	var buf bytes.Buffer
	w := &writer.CSVWriter{IncludeMetadata: true}
	if err := w.Write(&buf, result); err != nil {
		return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", err))
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", run.ID+".csv"))
	return c.Send(buf.Bytes())
}

// loadRun resolves the :id path parameter against the store, writing the
// error response itself when the run cannot be served.
func (s *Server) loadRun(c *fiber.Ctx) (*storage.ParseRun, error) {
	if s.store == nil {
		return nil, writeError(c, fiber.StatusServiceUnavailable, "Run history is not enabled.")
	}
	run, err := s.store.GetRun(c.Params("id"))
	if errors.Is(err, storage.ErrRunNotFound) {
		return nil, writeError(c, fiber.StatusNotFound, "Parse run not found.")
	}
	if err != nil {
		return nil, writeError(c, fiber.StatusInternalServerError, err.Error())
	}
	return run, nil
}

// slotReportType maps the frontend's upload-slot names to report types.
func slotReportType(slot string) models.ReportType {
	switch slot {
	case "selfservice", "self-service", "autoatendimento":
		return models.ReportSelfService
	case "attendant", "balcao", "balcão":
		return models.ReportAttendant
	default:
		return ""
	}
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ParseResponse{
		Success:      false,
		Error:        msg,
		Transactions: []models.Transaction{},
	})
}
