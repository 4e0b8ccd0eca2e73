package server

import (
	"encoding/json"

	"github.com/dimityrivanov/transaction-insights/internal/reporter"
	"github.com/dimityrivanov/transaction-insights/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleAnalyze runs one analysis call. The request carries the statement
// batch either as a raw JSON body or as a multipart upload under the "file"
// field; requests with neither are rejected with 400.
func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	requestID := uuid.NewString()
	log := s.log.WithField("request_id", requestID)

	tree, err := s.decodeInput(c)
	if err != nil {
		log.WithError(err).Warn("Rejected analyze request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	report := s.analyzer.Analyze(tree)

	body, err := reporter.EncodeJSON(report)
	if err != nil {
		log.WithError(err).Error("Failed to serialize report")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to serialize report",
		})
	}

	log.WithFields(logger.Fields{
		"bytes":    len(body),
		"is_error": report.IsError(),
	}).Debug("Analyze request served")

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// decodeInput extracts the statement tree from the request: JSON body first,
// then a multipart "file" part containing JSON.
func (s *Server) decodeInput(c *fiber.Ctx) (map[string]interface{}, error) {
	if c.Is("json") {
		var tree map[string]interface{}
		if err := json.Unmarshal(c.Body(), &tree); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
		}
		return tree, nil
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "No JSON or file uploaded")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Failed to open uploaded file")
	}
	defer f.Close()

	var tree map[string]interface{}
	if err := json.NewDecoder(f).Decode(&tree); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Uploaded file is not valid JSON")
	}
	return tree, nil
}
