package server

import (
	"vitrine/internal/models"
	"vitrine/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateItem handles POST /api/items
// @Summary Create a new item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{title=string,description=string,img=string,visibility=string} true "Item payload"
// @Success 201 {object} models.Item
// @Failure 400 {object} models.ErrorResponse
// @Router /items [post]
func (s *Server) CreateItem(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Img         string `json:"img"`
		Visibility  string `json:"visibility"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.itemService.CreateItem(ctx, service.CreateItemInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Img:         req.Img,
		Visibility:  req.Visibility,
	})
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// ListItems handles GET /api/items/allItems
// @Summary List public items and the caller's own items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param perPage query int false "Items per page"
// @Success 200 {object} service.ItemPage
// @Router /items/allItems [get]
func (s *Server) ListItems(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	page := parsePageQuery(c)

	result, err := s.itemService.ListItems(ctx, service.ListItemsInput{
		UserID:  userID,
		Page:    page.Page,
		PerPage: page.PerPage,
	})
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.JSON(result)
}

// UpdateItem handles PUT /api/items/:id
// @Summary Update an item's mutable fields (owner only)
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} models.Item
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /items/{id} [put]
func (s *Server) UpdateItem(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	itemID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	// Pointer fields distinguish "absent" from "set to empty"; only the
	// allow-listed fields below can be overwritten.
	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Img         *string `json:"img"`
		Visibility  *string `json:"visibility"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.itemService.UpdateItem(ctx, service.UpdateItemInput{
		UserID:      userID,
		ItemID:      itemID,
		Title:       req.Title,
		Description: req.Description,
		Img:         req.Img,
		Visibility:  req.Visibility,
	})
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.JSON(item)
}

// DeleteItem handles DELETE /api/items/:id
// @Summary Delete an item (owner only)
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} object{msg=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /items/{id} [delete]
func (s *Server) DeleteItem(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	itemID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.itemService.DeleteItem(ctx, service.DeleteItemInput{
		UserID: userID,
		ItemID: itemID,
	}); err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.JSON(fiber.Map{"msg": "Item deleted successfully"})
}
