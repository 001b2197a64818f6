package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/vestniklab/Vestnik/app/models"
	"github.com/vestniklab/Vestnik/app/repository"
	"github.com/vestniklab/Vestnik/internal/pkg/reactions"
	"github.com/vestniklab/Vestnik/internal/pkg/usercontext"
)

// ReactionController serves the JSON reaction endpoint the pages call
type ReactionController struct {
	engine       *reactions.Engine
	reactionRepo repository.ReactionRepository
}

// NewReactionController creates a new reaction controller
func NewReactionController(engine *reactions.Engine, reactionRepo repository.ReactionRepository) *ReactionController {
	return &ReactionController{engine: engine, reactionRepo: reactionRepo}
}

type reactRequest struct {
	Kind string `json:"kind" form:"kind"`
}

// HandleReact applies a like or dislike for the viewer. The auth check is
// deliberately inside the engine: an anonymous request gets the
// authenticate prompt and triggers zero store calls.
func (rc *ReactionController) HandleReact(c *fiber.Ctx) error {
	newsID := parseIDParam(c, "id")
	if newsID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Некорректный идентификатор новости",
		})
	}

	var req reactRequest
	if err := c.BodyParser(&req); err != nil || !models.ValidReactionKind(req.Kind) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Некорректный тип реакции",
		})
	}

	userID := usercontext.GetUserID(c)
	outcome, err := rc.engine.React(userID, newsID, req.Kind)
	if err != nil {
		if errors.Is(err, reactions.ErrAuthRequired) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "auth_required",
				"message": "Пожалуйста, авторизуйтесь для добавления реакции",
			})
		}
		log.Printf("Error applying reaction to news %d: %v", newsID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal",
			"message": "Не удалось сохранить реакцию",
		})
	}

	// Fresh totals let the page replace its counts after the confirmed
	// mutation instead of trusting the deltas blindly.
	likes, dislikes, err := rc.reactionRepo.CountsByNews(newsID)
	if err != nil {
		log.Printf("Error counting reactions for news %d: %v", newsID, err)
	}

	return c.JSON(fiber.Map{
		"state":         outcome.State,
		"like_delta":    outcome.LikeDelta,
		"dislike_delta": outcome.DislikeDelta,
		"likes":         likes,
		"dislikes":      dislikes,
	})
}

var reactionController *ReactionController

// InitializeReactionController initializes the global reaction controller
func InitializeReactionController() {
	repos := repository.GetGlobalRepositories()
	reactionController = NewReactionController(reactions.NewEngine(repos.Reaction), repos.Reaction)
}

// GetReactionController returns the global reaction controller instance
func GetReactionController() *ReactionController {
	if reactionController == nil {
		InitializeReactionController()
	}
	return reactionController
}
