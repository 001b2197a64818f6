package controllers

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/vestniklab/Vestnik/app/models"
	"github.com/vestniklab/Vestnik/app/repository"
	"github.com/vestniklab/Vestnik/internal/pkg/aggregator"
	"github.com/vestniklab/Vestnik/internal/pkg/constants"
	"github.com/vestniklab/Vestnik/internal/pkg/storage"
	"github.com/vestniklab/Vestnik/internal/pkg/usercontext"
)

// MyNewsController covers the author workspace: the own-articles list and
// the create, edit and delete flows.
type MyNewsController struct {
	agg          *aggregator.Aggregator
	newsRepo     repository.NewsRepository
	categoryRepo repository.CategoryRepository
	statsRepo    repository.StatsRepository
}

// NewMyNewsController creates a new my-news controller
func NewMyNewsController(agg *aggregator.Aggregator, newsRepo repository.NewsRepository, categoryRepo repository.CategoryRepository, statsRepo repository.StatsRepository) *MyNewsController {
	return &MyNewsController{agg: agg, newsRepo: newsRepo, categoryRepo: categoryRepo, statsRepo: statsRepo}
}

// AuthoredNews is an author-workspace row: the public aggregate plus the
// view counter only the author sees.
type AuthoredNews struct {
	aggregator.NewsWithDetails
	Views int64 `json:"views"`
}

// matchesAuthorSearch reports whether a row survives the workspace search.
// The query matches the title case-insensitively, the date matches the
// creation day in YYYY-MM-DD form. Empty terms match everything.
func matchesAuthorSearch(item *AuthoredNews, query, date string) bool {
	if query != "" && !strings.Contains(strings.ToLower(item.Title), strings.ToLower(query)) {
		return false
	}
	if date != "" && item.CreatedAt.Format("2006-01-02") != date {
		return false
	}
	return true
}

// filterAuthoredNews applies the workspace search in memory. The author's
// list is small enough that a round trip per keystroke would cost more than
// it saves.
func filterAuthoredNews(items []AuthoredNews, query, date string) []AuthoredNews {
	if query == "" && date == "" {
		return items
	}
	out := make([]AuthoredNews, 0, len(items))
	for i := range items {
		if matchesAuthorSearch(&items[i], query, date) {
			out = append(out, items[i])
		}
	}
	return out
}

// HandleMyNews renders the author's own articles, drafts included, newest
// first, with per-article view counters.
func (mc *MyNewsController) HandleMyNews(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	newsList, err := mc.agg.Collect(repository.NewsFilter{AuthorID: userCtx.UserID})
	if err != nil {
		log.Printf("Error collecting news for author %d: %v", userCtx.UserID, err)
		return render(c, "pages/error", "Ошибка", fiber.Map{
			"Message": "Не удалось загрузить ваши новости. Пожалуйста, попробуйте позже.",
		})
	}

	authored := make([]AuthoredNews, len(newsList))
	for i := range newsList {
		authored[i] = AuthoredNews{NewsWithDetails: newsList[i]}
		if views, err := mc.statsRepo.GetViews(newsList[i].ID); err == nil {
			authored[i].Views = views
		}
	}

	query := strings.TrimSpace(c.Query("q"))
	date := strings.TrimSpace(c.Query("date"))
	authored = filterAuthoredNews(authored, query, date)

	return render(c, "pages/my_news", "Мои новости", fiber.Map{
		"News":        authored,
		"SearchQuery": query,
		"SearchDate":  date,
	})
}

// HandleNewsCreate shows the article form and creates the article on POST.
func (mc *MyNewsController) HandleNewsCreate(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		return mc.saveNews(c, nil)
	}

	categories, err := mc.categoryRepo.List()
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
	}

	return render(c, "pages/news_form", "Новая новость", fiber.Map{
		"Categories": categories,
	})
}

// HandleNewsEdit shows the pre-filled form and updates the article on POST.
// Only the author or an admin may reach the saved row.
func (mc *MyNewsController) HandleNewsEdit(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	id := parseIDParam(c, "id")
	news, err := mc.newsRepo.GetByID(id)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusNotFound).SendString("Новость не найдена")
	}
	if news.AuthorID != userCtx.UserID && !userCtx.IsAdmin {
		return c.Status(fiber.StatusForbidden).SendString("Вы не можете редактировать чужую новость")
	}

	if c.Method() == fiber.MethodPost {
		return mc.saveNews(c, news)
	}

	categories, err := mc.categoryRepo.List()
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
	}
	linked, err := mc.categoryRepo.GetForNews(id)
	if err != nil {
		log.Printf("Error fetching categories for news %d: %v", id, err)
	}
	linkedIDs := make(map[uint]bool, len(linked))
	for i := range linked {
		linkedIDs[linked[i].ID] = true
	}

	return render(c, "pages/news_form", "Редактировать новость", fiber.Map{
		"News":       news,
		"Categories": categories,
		"LinkedIDs":  linkedIDs,
	})
}

// saveNews persists the submitted form, creating when existing is nil and
// updating it otherwise, then swaps the category links in one transaction.
func (mc *MyNewsController) saveNews(c *fiber.Ctx, existing *models.News) error {
	userCtx := usercontext.GetUserContext(c)
	fm := fiber.Map{"type": "error"}

	formRoute := constants.MyNewsRoute + "/create"
	if existing != nil {
		formRoute = constants.MyNewsRoute + "/" + strconv.FormatUint(uint64(existing.ID), 10) + "/edit"
	}

	news := &models.News{AuthorID: userCtx.UserID}
	if existing != nil {
		news = existing
	}
	news.Title = strings.TrimSpace(c.FormValue("title"))
	news.Content = strings.TrimSpace(c.FormValue("content"))
	news.VideoURL = strings.TrimSpace(c.FormValue("video_url"))
	news.Published = c.FormValue("published") == "on" || c.FormValue("published") == "true"

	if err := news.Validate(); err != nil {
		fm["message"] = "Заполните заголовок (от 3 символов) и текст новости"
		return flash.WithError(c, fm).Redirect(formRoute)
	}

	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		if client := storage.GetClient(); client != nil {
			url, err := client.UploadImage(fileHeader)
			if err != nil {
				log.Printf("Error uploading image: %v", err)
				fm["message"] = "Не удалось загрузить изображение"
				return flash.WithError(c, fm).Redirect(formRoute)
			}
			news.ImageURL = url
		}
	}

	var err error
	if existing == nil {
		err = mc.newsRepo.Create(news)
	} else {
		err = mc.newsRepo.Update(news)
	}
	if err != nil {
		log.Printf("Error saving news: %v", err)
		fm["message"] = "Не удалось сохранить новость"
		return flash.WithError(c, fm).Redirect(formRoute)
	}

	categoryIDs := parseCategoryIDs(formValues(c, "category_ids"))
	if err := mc.categoryRepo.ReplaceForNews(news.ID, categoryIDs); err != nil {
		log.Printf("Error updating categories for news %d: %v", news.ID, err)
		fm["message"] = "Новость сохранена, но категории обновить не удалось"
		return flash.WithError(c, fm).Redirect(constants.MyNewsRoute)
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Новость сохранена",
	}
	return flash.WithSuccess(c, fm).Redirect(constants.MyNewsRoute)
}

// HandleNewsDelete removes an article. Only the author or an admin may
// delete it; a failed delete leaves the list untouched and reports why.
func (mc *MyNewsController) HandleNewsDelete(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	fm := fiber.Map{"type": "error"}

	id := parseIDParam(c, "id")
	news, err := mc.newsRepo.GetByID(id)
	if err != nil || id == 0 {
		fm["message"] = "Новость не найдена"
		return flash.WithError(c, fm).Redirect(constants.MyNewsRoute)
	}
	if news.AuthorID != userCtx.UserID && !userCtx.IsAdmin {
		fm["message"] = "Вы не можете удалить чужую новость"
		return flash.WithError(c, fm).Redirect(constants.MyNewsRoute)
	}

	if err := mc.newsRepo.Delete(id); err != nil {
		log.Printf("Error deleting news %d: %v", id, err)
		fm["message"] = "Не удалось удалить новость"
		return flash.WithError(c, fm).Redirect(constants.MyNewsRoute)
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Новость удалена",
	}
	return flash.WithSuccess(c, fm).Redirect(constants.MyNewsRoute)
}

// formValues reads a multi-value form field from either body encoding. The
// article form posts multipart because of the image upload, so PostArgs
// alone would miss the checkboxes.
func formValues(c *fiber.Ctx, key string) []string {
	if form, err := c.MultipartForm(); err == nil && form != nil {
		return form.Value[key]
	}
	args := c.Context().PostArgs().PeekMulti(key)
	values := make([]string, len(args))
	for i, v := range args {
		values[i] = string(v)
	}
	return values
}

// parseCategoryIDs converts the multi-value form field into ids, silently
// skipping anything non-numeric.
func parseCategoryIDs(values []string) []uint {
	ids := make([]uint, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil || id == 0 {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

var myNewsController *MyNewsController

// InitializeMyNewsController initializes the global my-news controller
func InitializeMyNewsController() {
	repos := repository.GetGlobalRepositories()
	myNewsController = NewMyNewsController(newAggregator(repos), repos.News, repos.Category, repos.Stats)
}

// GetMyNewsController returns the global my-news controller instance
func GetMyNewsController() *MyNewsController {
	if myNewsController == nil {
		InitializeMyNewsController()
	}
	return myNewsController
}
