// Package server exposes the analysis pipeline over HTTP.
//
// The boundary is deliberately thin: it accepts either a raw JSON body or a
// multipart upload containing JSON, hands the decoded tree to the analyzer,
// and serializes the report with non-finite floats rendered as null. All
// analytical semantics live below this layer.
package server

import (
	"github.com/dimityrivanov/transaction-insights/internal/analyzer"
	"github.com/dimityrivanov/transaction-insights/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Config holds the HTTP server settings.
type Config struct {
	Listen      string
	CORSOrigins string
	// BodyLimit caps request bodies, in bytes.
	BodyLimit int
}

// DefaultConfig returns the default server settings.
func DefaultConfig() *Config {
	return &Config{
		Listen:      ":5000",
		CORSOrigins: "*",
		BodyLimit:   10 * 1024 * 1024,
	}
}

// Server wires the fiber application, the analyzer and the logger.
type Server struct {
	app      *fiber.App
	analyzer *analyzer.Analyzer
	log      logger.Logger
	config   *Config
}

// New creates a Server with routes and middleware registered.
func New(config *Config, log logger.Logger) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	log = log.WithComponent("server")

	app := fiber.New(fiber.Config{
		BodyLimit:             config.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	s := &Server{
		app:      app,
		analyzer: analyzer.New(log),
		log:      log,
		config:   config,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", s.handleHealth)
	s.app.Post("/analyze", s.handleAnalyze)
}

// App exposes the underlying fiber application, used by tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen starts serving on the configured address and blocks.
func (s *Server) Listen() error {
	s.log.WithField("listen", s.config.Listen).Info("Starting HTTP server")
	return s.app.Listen(s.config.Listen)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
