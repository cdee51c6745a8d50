package routes

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/controllers"
)

func RegisterProductRoutes(api fiber.Router, pc *controllers.ProductController) {
	api.Get("/products", pc.GetAll)
	api.Get("/products/:id", pc.GetByID)
	api.Post("/products", pc.Create)
	api.Put("/products/:id", pc.Update)
	api.Delete("/products/:id", pc.Delete)
	api.Post("/products/:id/sale", pc.SimulateSale)
	api.Get("/products/:id/history", pc.History)
}
