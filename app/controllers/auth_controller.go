package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
	"gorm.io/gorm"

	"github.com/vestniklab/Vestnik/app/models"
	"github.com/vestniklab/Vestnik/app/repository"
	"github.com/vestniklab/Vestnik/internal/pkg/database"
	"github.com/vestniklab/Vestnik/internal/pkg/session"
)

func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		var user models.User
		fm := fiber.Map{
			"type": "error",
		}

		// notice: in production you should not inform the user
		// with detailed messages about login failures
		result := database.GetDB().Where("email = ?", c.FormValue("email")).First(&user)
		if result.Error != nil {
			fm["message"] = "Неверный email или пароль"

			return flash.WithError(c, fm).Redirect("/login")
		}

		if !user.CheckPassword(c.FormValue("password")) {
			fm["message"] = "Неверный email или пароль"

			return flash.WithError(c, fm).Redirect("/login")
		}

		sess, err := session.GetSessionStore().Get(c)
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/login")
		}

		var profile models.Profile
		username := ""
		if err := database.GetDB().First(&profile, user.ID).Error; err == nil {
			username = profile.Username
		}

		sess.Set(AUTH_KEY, true)
		sess.Set(USER_ID, user.ID)
		sess.Set(USER_NAME, username)
		sess.Set(USER_IS_ADMIN, user.IsAdmin())

		err = sess.Save()
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/login")
		}

		database.GetDB().Model(&user).Update("last_login_at", time.Now())

		fm = fiber.Map{
			"type":    "success",
			"message": "Добро пожаловать!",
		}

		return flash.WithSuccess(c, fm).Redirect("/")
	}

	return render(c, "pages/login", "Вход", nil)
}

func HandleAuthLogout(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = "logged out (no sess)"

		return flash.WithError(c, fm).Redirect("/login")
	}

	err = sess.Destroy()
	if err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect("/login")
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "До встречи!",
	}

	return flash.WithSuccess(c, fm).Redirect("/login")
}

func HandleAuthRegister(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		username := c.FormValue("username")
		if msg := registrationUsernameError(repository.GetGlobalRepositories().Profile, username); msg != "" {
			fm := fiber.Map{
				"type":    "error",
				"message": msg,
			}
			return flash.WithError(c, fm).Redirect("/register")
		}

		user, err := models.CreateUser(c.FormValue("email"), c.FormValue("password"))
		if err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": fmt.Sprintf("Неверные данные регистрации: %s", err),
			}

			return flash.WithError(c, fm).Redirect("/register")
		}

		// The user row and its profile share an ID and are created together.
		err = database.GetDB().Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(user).Error; err != nil {
				return err
			}
			profile := &models.Profile{
				ID:       user.ID,
				Username: username,
				FullName: c.FormValue("full_name"),
			}
			if err := profile.Validate(); err != nil {
				return err
			}
			return tx.Create(profile).Error
		})
		if err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": "Не удалось создать аккаунт. Возможно, email или имя пользователя уже заняты.",
			}

			return flash.WithError(c, fm).Redirect("/register")
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Вы успешно зарегистрировались!",
		}

		return flash.WithSuccess(c, fm).Redirect("/login")
	}

	return render(c, "pages/register", "Регистрация", nil)
}

// registrationUsernameError checks the requested username before the account
// transaction runs, so a taken name gets a precise message instead of the
// generic constraint failure. A failed lookup falls through to the unique
// constraint inside the transaction.
func registrationUsernameError(profiles repository.ProfileRepository, username string) string {
	if username == "" {
		return "Имя пользователя обязательно"
	}
	taken, err := profiles.UsernameExists(username)
	if err != nil {
		log.Printf("Error checking username %s: %v", username, err)
		return ""
	}
	if taken {
		return "Это имя пользователя уже занято"
	}
	return ""
}
