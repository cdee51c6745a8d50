package controllers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"stockroom/inventory"
	"stockroom/report"
)

type ReportController struct {
	store *inventory.Store
	log   *slog.Logger
}

func NewReportController(store *inventory.Store, log *slog.Logger) *ReportController {
	return &ReportController{store: store, log: log}
}

// Stock returns current quantity next to the estimated quantity sold.
func (rc *ReportController) Stock(c *fiber.Ctx) error {
	products, err := rc.store.List(c.UserContext())
	if err != nil {
		return respondError(c, rc.log, err)
	}
	summary, err := report.Build(products)
	if err != nil {
		return respondError(c, rc.log, err)
	}
	return c.JSON(summary)
}
