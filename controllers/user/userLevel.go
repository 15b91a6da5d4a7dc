package userController

import (
	"errors"

	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetUserLevel returns the user's level record, creating the default one
// for accounts that have never earned EXP
func GetUserLevel(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var level models.UserLevel
	err := db.Where("user_id = ?", userID).First(&level).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		level = models.NewUserLevel(userID)
		// Concurrent first reads converge on one row through the unique
		// index; on conflict just read back whoever won.
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&level).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create level record!", nil)
		}
		if level.ID == 0 {
			if err := db.Where("user_id = ?", userID).First(&level).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch level record!", nil)
			}
		}
	} else if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch level record!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Level fetched successfully!", level)
}
