package controllers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/vestniklab/Vestnik/app/repository"
	"github.com/vestniklab/Vestnik/internal/pkg/constants"
	"github.com/vestniklab/Vestnik/internal/pkg/session"
	"github.com/vestniklab/Vestnik/internal/pkg/storage"
	"github.com/vestniklab/Vestnik/internal/pkg/usercontext"
)

// ProfileController renders and updates the viewer's own profile
type ProfileController struct {
	profileRepo repository.ProfileRepository
	newsRepo    repository.NewsRepository
}

// NewProfileController creates a new profile controller
func NewProfileController(profileRepo repository.ProfileRepository, newsRepo repository.NewsRepository) *ProfileController {
	return &ProfileController{profileRepo: profileRepo, newsRepo: newsRepo}
}

// HandleProfile renders the viewer's profile page.
func (pc *ProfileController) HandleProfile(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	profile, err := pc.profileRepo.GetByID(userCtx.UserID)
	if err != nil {
		log.Printf("Error fetching profile %d: %v", userCtx.UserID, err)
		return render(c, "pages/error", "Ошибка", fiber.Map{
			"Message": "Не удалось загрузить профиль. Пожалуйста, попробуйте позже.",
		})
	}

	published, err := pc.newsRepo.List(repository.NewsFilter{PublishedOnly: true, AuthorID: userCtx.UserID})
	if err != nil {
		log.Printf("Error counting articles for profile %d: %v", userCtx.UserID, err)
	}

	return render(c, "pages/profile", "Профиль", fiber.Map{
		"Profile":        profile,
		"PublishedCount": len(published),
	})
}

// HandleProfileEdit shows the profile form and applies changes on POST.
// The new username must stay unique across every other profile.
func (pc *ProfileController) HandleProfileEdit(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	profile, err := pc.profileRepo.GetByID(userCtx.UserID)
	if err != nil {
		log.Printf("Error fetching profile %d: %v", userCtx.UserID, err)
		return render(c, "pages/error", "Ошибка", fiber.Map{
			"Message": "Не удалось загрузить профиль. Пожалуйста, попробуйте позже.",
		})
	}

	if c.Method() != fiber.MethodPost {
		return render(c, "pages/profile_edit", "Редактировать профиль", fiber.Map{
			"Profile": profile,
		})
	}

	fm := fiber.Map{"type": "error"}
	editRoute := constants.ProfileRoute + "/edit"

	username := strings.TrimSpace(c.FormValue("username"))
	taken, err := pc.profileRepo.UsernameExistsExceptID(username, profile.ID)
	if err != nil {
		log.Printf("Error checking username %q: %v", username, err)
		fm["message"] = "Не удалось сохранить профиль"
		return flash.WithError(c, fm).Redirect(editRoute)
	}
	if taken {
		fm["message"] = "Это имя пользователя уже занято"
		return flash.WithError(c, fm).Redirect(editRoute)
	}

	profile.Username = username
	profile.FullName = strings.TrimSpace(c.FormValue("full_name"))
	profile.Website = strings.TrimSpace(c.FormValue("website"))

	if err := profile.Validate(); err != nil {
		fm["message"] = "Проверьте поля профиля: имя пользователя от 3 символов, сайт должен быть ссылкой"
		return flash.WithError(c, fm).Redirect(editRoute)
	}

	if fileHeader, err := c.FormFile("avatar"); err == nil && fileHeader != nil {
		if client := storage.GetClient(); client != nil {
			url, err := client.UploadImage(fileHeader)
			if err != nil {
				log.Printf("Error uploading avatar: %v", err)
				fm["message"] = "Не удалось загрузить аватар"
				return flash.WithError(c, fm).Redirect(editRoute)
			}
			profile.AvatarURL = url
		}
	}

	if err := pc.profileRepo.Update(profile); err != nil {
		log.Printf("Error updating profile %d: %v", profile.ID, err)
		fm["message"] = "Не удалось сохранить профиль"
		return flash.WithError(c, fm).Redirect(editRoute)
	}

	// The header greets by username, so the session copy follows the change.
	if sess, err := session.GetSessionStore().Get(c); err == nil {
		sess.Set(USER_NAME, profile.Username)
		if err := sess.Save(); err != nil {
			log.Printf("Error refreshing session username: %v", err)
		}
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Профиль обновлён",
	}
	return flash.WithSuccess(c, fm).Redirect(constants.ProfileRoute)
}

var profileController *ProfileController

// InitializeProfileController initializes the global profile controller
func InitializeProfileController() {
	repos := repository.GetGlobalRepositories()
	profileController = NewProfileController(repos.Profile, repos.News)
}

// GetProfileController returns the global profile controller instance
func GetProfileController() *ProfileController {
	if profileController == nil {
		InitializeProfileController()
	}
	return profileController
}
