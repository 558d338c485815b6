package handlers

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"resumehub/internal/repositories"
	"resumehub/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ResumeHandler handles HTTP requests for resume upload and the stored
// analysis results.
type ResumeHandler struct {
	resumeService *services.ResumeService
	uploadDir     string
}

// NewResumeHandler creates a new ResumeHandler. Uploaded files are stored
// under uploadDir with generated names.
func NewResumeHandler(resumeService *services.ResumeService, uploadDir string) *ResumeHandler {
	return &ResumeHandler{
		resumeService: resumeService,
		uploadDir:     uploadDir,
	}
}

// RegisterRoutes registers the resume routes with the Fiber app.
func (h *ResumeHandler) RegisterRoutes(router fiber.Router) {
	accountRoutes := router.Group("/accounts")
	accountRoutes.Post("/:id/resume", h.HandleUpload)
	accountRoutes.Get("/:id/analysis", h.HandleLatestAnalysis)
	accountRoutes.Get("/:id/jobs", h.HandleRecommendations)
}

// HandleUpload saves the uploaded resume file and runs the analysis
// pipeline for the account.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil || accountID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid account id",
		})
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "resume file is required",
		})
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		log.Printf("Error creating upload directory: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "something went wrong",
		})
	}

	storedName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	storedPath := filepath.Join(h.uploadDir, storedName)
	if err := c.SaveFile(file, storedPath); err != nil {
		log.Printf("Error saving uploaded resume: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "something went wrong",
		})
	}

	analysis, jobs, err := h.resumeService.ProcessUpload(uint(accountID), storedPath)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "account not found",
			})
		}
		log.Printf("Error processing resume upload: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "something went wrong",
		})
	}

	return c.JSON(fiber.Map{
		"message":         "Resume analyzed successfully",
		"analysis":        analysis,
		"recommendations": jobs,
	})
}

// HandleLatestAnalysis returns the most recent stored analysis for the
// account.
func (h *ResumeHandler) HandleLatestAnalysis(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil || accountID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid account id",
		})
	}

	analysis, err := h.resumeService.LatestAnalysis(uint(accountID))
	if err != nil {
		if errors.Is(err, repositories.ErrAnalysisNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "no resume analysis found",
			})
		}
		log.Printf("Error fetching latest analysis: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "something went wrong",
		})
	}

	return c.JSON(analysis)
}

// HandleRecommendations returns the stored job recommendations for the
// account.
func (h *ResumeHandler) HandleRecommendations(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil || accountID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid account id",
		})
	}

	jobs, err := h.resumeService.RecommendationsFor(uint(accountID))
	if err != nil {
		log.Printf("Error fetching job recommendations: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "something went wrong",
		})
	}

	return c.JSON(jobs)
}
