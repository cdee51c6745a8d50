package controllers

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"stockroom/inventory"
)

type ProductController struct {
	store *inventory.Store
	log   *slog.Logger
}

func NewProductController(store *inventory.Store, log *slog.Logger) *ProductController {
	return &ProductController{store: store, log: log}
}

// productInput accepts price and quantity as JSON numbers or numeric strings.
type productInput struct {
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
	Quantity json.Number `json:"quantity"`
}

type saleInput struct {
	Quantity json.Number `json:"quantity"`
}

func (pc *ProductController) parseDraft(c *fiber.Ctx) (inventory.Draft, error) {
	var input productInput
	if err := c.BodyParser(&input); err != nil {
		return inventory.Draft{}, fmt.Errorf("%w: malformed request body", inventory.ErrValidation)
	}
	return inventory.ParseDraft(input.Name, input.Price.String(), input.Quantity.String())
}

func (pc *ProductController) GetAll(c *fiber.Ctx) error {
	products, err := pc.store.List(c.UserContext())
	if err != nil {
		return respondError(c, pc.log, err)
	}
	return c.JSON(products)
}

func (pc *ProductController) GetByID(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	product, err := pc.store.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	return c.JSON(product)
}

func (pc *ProductController) Create(c *fiber.Ctx) error {
	draft, err := pc.parseDraft(c)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	product, err := pc.store.Create(c.UserContext(), draft)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (pc *ProductController) Update(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	draft, err := pc.parseDraft(c)
	if err != nil {
		// a stale id is reported before bad input
		if _, getErr := pc.store.Get(c.UserContext(), id); getErr != nil {
			return respondError(c, pc.log, getErr)
		}
		return respondError(c, pc.log, err)
	}
	product, err := pc.store.Update(c.UserContext(), id, draft)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	return c.JSON(product)
}

func (pc *ProductController) Delete(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	if err := pc.store.Delete(c.UserContext(), id); err != nil {
		return respondError(c, pc.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (pc *ProductController) SimulateSale(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	var input saleInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, pc.log, fmt.Errorf("%w: malformed request body", inventory.ErrValidation))
	}
	quantity, err := inventory.ParseQuantity(input.Quantity.String())
	if err != nil {
		return respondError(c, pc.log, err)
	}
	product, err := pc.store.SimulateSale(c.UserContext(), id, quantity)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	return c.JSON(product)
}

// History returns the ledger of a product. A removed product still has one.
func (pc *ProductController) History(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	entries, err := pc.store.History(c.UserContext(), id)
	if err != nil {
		return respondError(c, pc.log, err)
	}
	return c.JSON(entries)
}
