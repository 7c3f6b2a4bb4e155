package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtracker-api/internal/dtos"
	"jobtracker-api/internal/services"
)

// ScrapeHandler exposes best-effort extraction of job details from a
// posting URL, used by the UI to prefill the new-application form.
type ScrapeHandler struct {
	Scraper *services.ScraperService
}

func NewScrapeHandler(scraper *services.ScraperService) *ScrapeHandler {
	return &ScrapeHandler{Scraper: scraper}
}

// Scrape is POST /jobs/scrape.
func (h *ScrapeHandler) Scrape(c *gin.Context) {
	var req dtos.ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.Scraper.Scrape(req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Scrape failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    job,
	})
}
