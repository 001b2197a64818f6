package controllers

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/vestniklab/Vestnik/app/models"
	"github.com/vestniklab/Vestnik/app/repository"
	"github.com/vestniklab/Vestnik/internal/pkg/constants"
	"github.com/vestniklab/Vestnik/internal/pkg/statistics"
)

const timeFormat = "02.01.2006 15:04"

// AdminController serves the moderation area: the dashboard plus list,
// edit and delete views for every entity.
type AdminController struct {
	repos *repository.Repositories
}

// NewAdminController creates a new admin controller
func NewAdminController(repos *repository.Repositories) *AdminController {
	return &AdminController{repos: repos}
}

// HandleDashboard renders the admin landing page with cached entity totals.
func (ac *AdminController) HandleDashboard(c *fiber.Ctx) error {
	counts := statistics.GetEntityCounts()

	return render(c, "pages/admin_dashboard", "Панель администратора", fiber.Map{
		"Counts": counts,
	})
}

// adminTable renders the shared list template. Rows are pre-formatted
// strings so one template serves all five entities.
func adminTable(c *fiber.Ctx, title, entity string, columns []string, rows [][]string, ids []uint, editable bool) error {
	return render(c, "pages/admin_table", title, fiber.Map{
		"Entity":   entity,
		"Columns":  columns,
		"Rows":     rows,
		"RowIDs":   ids,
		"Editable": editable,
	})
}

// HandleNewsList shows every article, drafts included.
func (ac *AdminController) HandleNewsList(c *fiber.Ctx) error {
	newsList, err := ac.repos.News.List(repository.NewsFilter{})
	if err != nil {
		log.Printf("Error listing news for admin: %v", err)
		return adminListError(c)
	}

	rows := make([][]string, len(newsList))
	ids := make([]uint, len(newsList))
	for i, n := range newsList {
		status := "Черновик"
		if n.Published {
			status = "Опубликована"
		}
		rows[i] = []string{
			strconv.FormatUint(uint64(n.ID), 10),
			n.Title,
			status,
			strconv.FormatUint(uint64(n.AuthorID), 10),
			n.CreatedAt.Format(timeFormat),
		}
		ids[i] = n.ID
	}

	return adminTable(c, "Новости", "news",
		[]string{"ID", "Заголовок", "Статус", "Автор", "Создана"}, rows, ids, true)
}

// HandleNewsDelete removes an article; a failed delete leaves the list as is.
func (ac *AdminController) HandleNewsDelete(c *fiber.Ctx) error {
	return ac.deleteEntity(c, "news", func(id uint) error { return ac.repos.News.Delete(id) })
}

// HandleCategoryList shows every category, newest first.
func (ac *AdminController) HandleCategoryList(c *fiber.Ctx) error {
	categories, err := ac.repos.Category.ListNewest()
	if err != nil {
		log.Printf("Error listing categories for admin: %v", err)
		return adminListError(c)
	}

	rows := make([][]string, len(categories))
	ids := make([]uint, len(categories))
	for i, cat := range categories {
		rows[i] = []string{
			strconv.FormatUint(uint64(cat.ID), 10),
			cat.Name,
			cat.Slug,
			cat.CreatedAt.Format(timeFormat),
		}
		ids[i] = cat.ID
	}

	return adminTable(c, "Категории", "categories",
		[]string{"ID", "Название", "Слаг", "Создана"}, rows, ids, true)
}

// HandleCategoryCreate shows the category form and creates one on POST.
// The slug must stay unique; a blank slug is derived from the name.
func (ac *AdminController) HandleCategoryCreate(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return render(c, "pages/admin_category_form", "Новая категория", nil)
	}
	return ac.saveCategory(c, nil, constants.AdminRoute+"/categories/create")
}

// HandleCategoryEdit shows the pre-filled form and updates the category on POST.
func (ac *AdminController) HandleCategoryEdit(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	category, err := ac.repos.Category.GetByID(id)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusNotFound).SendString("Категория не найдена")
	}

	if c.Method() == fiber.MethodPost {
		return ac.saveCategory(c, category, constants.AdminRoute+"/categories/"+strconv.FormatUint(uint64(id), 10)+"/edit")
	}

	return render(c, "pages/admin_category_form", "Редактировать категорию", fiber.Map{
		"Category": category,
	})
}

func (ac *AdminController) saveCategory(c *fiber.Ctx, existing *models.Category, formRoute string) error {
	fm := fiber.Map{"type": "error"}

	category := &models.Category{}
	if existing != nil {
		category = existing
	}
	category.Name = strings.TrimSpace(c.FormValue("name"))
	category.Slug = strings.TrimSpace(c.FormValue("slug"))
	if category.Slug == "" {
		category.Slug = models.Slugify(category.Name)
	}

	if err := category.Validate(); err != nil {
		fm["message"] = "Название и слаг категории обязательны (от 2 символов, слаг латиницей)"
		return flash.WithError(c, fm).Redirect(formRoute)
	}

	var taken bool
	var err error
	if existing == nil {
		taken, err = ac.repos.Category.SlugExists(category.Slug)
	} else {
		taken, err = ac.repos.Category.SlugExistsExceptID(category.Slug, category.ID)
	}
	if err != nil {
		log.Printf("Error checking slug %q: %v", category.Slug, err)
		fm["message"] = "Не удалось сохранить категорию"
		return flash.WithError(c, fm).Redirect(formRoute)
	}
	if taken {
		fm["message"] = "Категория с таким слагом уже существует"
		return flash.WithError(c, fm).Redirect(formRoute)
	}

	if existing == nil {
		err = ac.repos.Category.Create(category)
	} else {
		err = ac.repos.Category.Update(category)
	}
	if err != nil {
		log.Printf("Error saving category: %v", err)
		fm["message"] = "Не удалось сохранить категорию"
		return flash.WithError(c, fm).Redirect(formRoute)
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Категория сохранена",
	}
	return flash.WithSuccess(c, fm).Redirect(constants.AdminRoute + "/categories")
}

// HandleCategoryDelete removes a category together with its article links.
func (ac *AdminController) HandleCategoryDelete(c *fiber.Ctx) error {
	return ac.deleteEntity(c, "categories", func(id uint) error { return ac.repos.Category.Delete(id) })
}

// HandleProfileList shows every registered profile.
func (ac *AdminController) HandleProfileList(c *fiber.Ctx) error {
	profiles, err := ac.repos.Profile.List()
	if err != nil {
		log.Printf("Error listing profiles for admin: %v", err)
		return adminListError(c)
	}

	rows := make([][]string, len(profiles))
	ids := make([]uint, len(profiles))
	for i, p := range profiles {
		rows[i] = []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Username,
			p.FullName,
			p.CreatedAt.Format(timeFormat),
		}
		ids[i] = p.ID
	}

	return adminTable(c, "Пользователи", "profiles",
		[]string{"ID", "Имя пользователя", "Полное имя", "Регистрация"}, rows, ids, true)
}

// HandleProfileEdit lets an admin fix another user's public profile.
func (ac *AdminController) HandleProfileEdit(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	profile, err := ac.repos.Profile.GetByID(id)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusNotFound).SendString("Профиль не найден")
	}

	if c.Method() != fiber.MethodPost {
		return render(c, "pages/admin_profile_form", "Редактировать профиль", fiber.Map{
			"Profile": profile,
		})
	}

	fm := fiber.Map{"type": "error"}
	formRoute := constants.AdminRoute + "/profiles/" + strconv.FormatUint(uint64(id), 10) + "/edit"

	username := strings.TrimSpace(c.FormValue("username"))
	taken, err := ac.repos.Profile.UsernameExistsExceptID(username, profile.ID)
	if err != nil {
		log.Printf("Error checking username %q: %v", username, err)
		fm["message"] = "Не удалось сохранить профиль"
		return flash.WithError(c, fm).Redirect(formRoute)
	}
	if taken {
		fm["message"] = "Это имя пользователя уже занято"
		return flash.WithError(c, fm).Redirect(formRoute)
	}

	profile.Username = username
	profile.FullName = strings.TrimSpace(c.FormValue("full_name"))
	profile.Website = strings.TrimSpace(c.FormValue("website"))

	if err := profile.Validate(); err != nil {
		fm["message"] = "Проверьте поля профиля"
		return flash.WithError(c, fm).Redirect(formRoute)
	}

	if err := ac.repos.Profile.Update(profile); err != nil {
		log.Printf("Error updating profile %d: %v", profile.ID, err)
		fm["message"] = "Не удалось сохранить профиль"
		return flash.WithError(c, fm).Redirect(formRoute)
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Профиль сохранён",
	}
	return flash.WithSuccess(c, fm).Redirect(constants.AdminRoute + "/profiles")
}

// HandleProfileDelete removes a profile.
func (ac *AdminController) HandleProfileDelete(c *fiber.Ctx) error {
	return ac.deleteEntity(c, "profiles", func(id uint) error { return ac.repos.Profile.Delete(id) })
}

// HandleCommentList shows every comment across all articles.
func (ac *AdminController) HandleCommentList(c *fiber.Ctx) error {
	comments, err := ac.repos.Comment.ListAll()
	if err != nil {
		log.Printf("Error listing comments for admin: %v", err)
		return adminListError(c)
	}

	rows := make([][]string, len(comments))
	ids := make([]uint, len(comments))
	for i, cm := range comments {
		rows[i] = []string{
			strconv.FormatUint(uint64(cm.ID), 10),
			strconv.FormatUint(uint64(cm.NewsID), 10),
			strconv.FormatUint(uint64(cm.AuthorID), 10),
			truncate(cm.Content, 80),
			cm.CreatedAt.Format(timeFormat),
		}
		ids[i] = cm.ID
	}

	return adminTable(c, "Комментарии", "comments",
		[]string{"ID", "Новость", "Автор", "Текст", "Создан"}, rows, ids, false)
}

// HandleCommentDelete removes a comment.
func (ac *AdminController) HandleCommentDelete(c *fiber.Ctx) error {
	return ac.deleteEntity(c, "comments", func(id uint) error { return ac.repos.Comment.Delete(id) })
}

// HandleReactionList shows every reaction.
func (ac *AdminController) HandleReactionList(c *fiber.Ctx) error {
	reactions, err := ac.repos.Reaction.ListAll()
	if err != nil {
		log.Printf("Error listing reactions for admin: %v", err)
		return adminListError(c)
	}

	rows := make([][]string, len(reactions))
	ids := make([]uint, len(reactions))
	for i, r := range reactions {
		rows[i] = []string{
			strconv.FormatUint(uint64(r.ID), 10),
			strconv.FormatUint(uint64(r.NewsID), 10),
			strconv.FormatUint(uint64(r.UserID), 10),
			r.Kind,
			r.CreatedAt.Format(timeFormat),
		}
		ids[i] = r.ID
	}

	return adminTable(c, "Реакции", "reactions",
		[]string{"ID", "Новость", "Пользователь", "Тип", "Создана"}, rows, ids, false)
}

// HandleReactionDelete removes a reaction.
func (ac *AdminController) HandleReactionDelete(c *fiber.Ctx) error {
	return ac.deleteEntity(c, "reactions", func(id uint) error { return ac.repos.Reaction.Delete(id) })
}

// deleteEntity runs one delete and redirects back to the entity list. On
// failure the row stays and the flash says why; nothing is removed from
// the rendered list optimistically.
func (ac *AdminController) deleteEntity(c *fiber.Ctx, entity string, del func(id uint) error) error {
	listRoute := constants.AdminRoute + "/" + entity
	fm := fiber.Map{"type": "error"}

	id := parseIDParam(c, "id")
	if id == 0 {
		fm["message"] = "Некорректный идентификатор"
		return flash.WithError(c, fm).Redirect(listRoute)
	}

	if err := del(id); err != nil {
		log.Printf("Error deleting %s %d: %v", entity, id, err)
		fm["message"] = "Не удалось удалить запись. Попробуйте ещё раз."
		return flash.WithError(c, fm).Redirect(listRoute)
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Запись удалена",
	}
	return flash.WithSuccess(c, fm).Redirect(listRoute)
}

func adminListError(c *fiber.Ctx) error {
	return render(c, "pages/error", "Ошибка", fiber.Map{
		"Message": "Не удалось загрузить данные. Пожалуйста, попробуйте позже.",
	})
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

var adminController *AdminController

// InitializeAdminController initializes the global admin controller
func InitializeAdminController() {
	adminController = NewAdminController(repository.GetGlobalRepositories())
}

// GetAdminController returns the global admin controller instance
func GetAdminController() *AdminController {
	if adminController == nil {
		InitializeAdminController()
	}
	return adminController
}
