package controllers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vestniklab/Vestnik/app/models"
	"github.com/vestniklab/Vestnik/app/repository"
	"github.com/vestniklab/Vestnik/internal/pkg/aggregator"
	"github.com/vestniklab/Vestnik/internal/pkg/usercontext"
)

// CommentController serves the JSON comment endpoints the pages call
type CommentController struct {
	agg         *aggregator.Aggregator
	commentRepo repository.CommentRepository
	newsRepo    repository.NewsRepository
}

// NewCommentController creates a new comment controller
func NewCommentController(agg *aggregator.Aggregator, commentRepo repository.CommentRepository, newsRepo repository.NewsRepository) *CommentController {
	return &CommentController{agg: agg, commentRepo: commentRepo, newsRepo: newsRepo}
}

// HandleCommentList returns a news item's comments newest first, each with
// its author resolved.
func (cc *CommentController) HandleCommentList(c *fiber.Ctx) error {
	newsID := parseIDParam(c, "id")
	if newsID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Некорректный идентификатор новости",
		})
	}

	comments, err := cc.agg.Comments(newsID)
	if err != nil {
		log.Printf("Error fetching comments for news %d: %v", newsID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal",
			"message": "Не удалось загрузить комментарии",
		})
	}

	return c.JSON(comments)
}

type commentRequest struct {
	Content string `json:"content" form:"content"`
}

// HandleCommentCreate appends a comment for the authenticated viewer.
func (cc *CommentController) HandleCommentCreate(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "auth_required",
			"message": "Пожалуйста, войдите в систему, чтобы оставить комментарий",
		})
	}

	newsID := parseIDParam(c, "id")
	if newsID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Некорректный идентификатор новости",
		})
	}

	if _, err := cc.newsRepo.GetByID(newsID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "Новость не найдена",
		})
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Комментарий не может быть пустым",
		})
	}

	comment := &models.Comment{
		NewsID:   newsID,
		AuthorID: userCtx.UserID,
		Content:  strings.TrimSpace(req.Content),
	}
	if err := cc.commentRepo.Create(comment); err != nil {
		log.Printf("Error creating comment on news %d: %v", newsID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal",
			"message": "Не удалось отправить комментарий",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(aggregator.CommentWithAuthor{
		Comment:    *comment,
		AuthorName: userCtx.Username,
	})
}

var commentController *CommentController

// InitializeCommentController initializes the global comment controller
func InitializeCommentController() {
	repos := repository.GetGlobalRepositories()
	commentController = NewCommentController(newAggregator(repos), repos.Comment, repos.News)
}

// GetCommentController returns the global comment controller instance
func GetCommentController() *CommentController {
	if commentController == nil {
		InitializeCommentController()
	}
	return commentController
}
