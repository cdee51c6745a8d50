package routes

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/controllers"
)

func RegisterReportRoutes(api fiber.Router, rc *controllers.ReportController) {
	api.Get("/report", rc.Stock)
}
