package server

import (
	"vitrine/internal/models"
	"vitrine/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /api/items/:id/comment
// @Summary Add a comment to an item
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body object{text=string} true "Comment payload"
// @Success 201 {object} object{msg=string,comments=[]models.Comment}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /items/{id}/comment [post]
func (s *Server) AddComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	itemID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comments, err := s.commentService.AddComment(ctx, service.AddCommentInput{
		UserID: userID,
		ItemID: itemID,
		Text:   req.Text,
	})
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":      "Comment added",
		"comments": comments,
	})
}

// DeleteComment handles DELETE /api/items/:itemId/comment/:commentId
// @Summary Delete a comment (author only)
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param itemId path int true "Item ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} object{msg=string,comments=[]models.Comment}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /items/{itemId}/comment/{commentId} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	itemID, err := s.parseID(c, "itemId")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.DeleteComment(ctx, service.DeleteCommentInput{
		UserID:    userID,
		ItemID:    itemID,
		CommentID: commentID,
	})
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}

	return c.JSON(fiber.Map{
		"msg":      "Comment deleted",
		"comments": comments,
	})
}
