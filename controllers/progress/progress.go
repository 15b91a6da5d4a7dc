package progressController

import (
	"errors"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	errUnitNotCompleted = errors.New("unit not completed")
	errAlreadyDelivered = errors.New("unit already delivered")
	errProgressNotFound = errors.New("progress record not found")
)

// GetCourseProgress returns every progress row the user has for a course.
// A course with no recorded activity returns an empty list.
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	progressList := []models.UnitProgress{}
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).Find(&progressList).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progressList)
}

// UpdateProgress records a playback heartbeat for one unit. The reported
// position always overwrites the stored one; the percent only ratchets
// upward. Hitting 100 marks the unit completed, permanently.
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	unitID := c.Locals("unitID").(string)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*struct {
		Position int `json:"position"`
		Progress int `json:"progress"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	position := reqData.Position
	progress := reqData.Progress
	if progress > 100 {
		progress = 100
	}
	if progress < 0 {
		progress = 0
	}

	var result models.UnitProgress
	update := func() error {
		return database.Database.Db.Transaction(func(tx *gorm.DB) error {
			row, err := lockUnitProgress(tx, userID, uint(courseID), unitID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				row = models.UnitProgress{
					UserID:   userID,
					CourseID: uint(courseID),
					UnitID:   unitID,
				}
				// The unique index collapses concurrent first heartbeats
				// into a single row; losers refetch the winner's row.
				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
					return err
				}
				if row.ID == 0 {
					row, err = lockUnitProgress(tx, userID, uint(courseID), unitID)
					if err != nil {
						return err
					}
				}
			} else if err != nil {
				return err
			}

			row.LastPositionSeconds = position

			if progress > row.ProgressPercent {
				row.ProgressPercent = progress
			}

			if progress >= 100 && !row.Completed {
				row.Completed = true
				row.ProgressPercent = 100
			}

			if err := tx.Save(&row).Error; err != nil {
				return err
			}

			result = row
			return nil
		})
	}

	err := update()
	if err != nil {
		// Retry lock/serialization collisions once before giving up
		err = update()
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", result)
}

// DeliverUnit claims the EXP for a completed unit. Requires a paid order
// for the course, a completed progress row, and that the unit has not been
// delivered before. The delivered flag and the level mutation commit in one
// transaction so a unit can never pay out twice.
func DeliverUnit(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	unitID := c.Locals("unitID").(string)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Trial access never earns EXP, the course must be fully purchased
	paid, err := models.IsCoursePaid(db, userID, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check purchase state!", nil)
	}
	if !paid {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course not purchased, trial mode cannot claim EXP!", nil)
	}

	expGained := 0
	leveledUp := false
	var level models.UserLevel

	deliver := func() error {
		return db.Transaction(func(tx *gorm.DB) error {
			progress, err := lockUnitProgress(tx, userID, uint(courseID), unitID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errProgressNotFound
			} else if err != nil {
				return err
			}

			if !progress.Completed {
				return errUnitNotCompleted
			}
			if progress.Delivered {
				return errAlreadyDelivered
			}

			expGained = utils.ResolveUnitExp(course.SyllabusJSON, unitID)

			level, err = lockOrCreateUserLevel(tx, userID)
			if err != nil {
				return err
			}

			leveledUp = level.ApplyExp(expGained)

			if err := tx.Save(&level).Error; err != nil {
				return err
			}

			progress.Delivered = true
			return tx.Save(&progress).Error
		})
	}

	err = deliver()
	if err != nil && !isDeliveryStateError(err) {
		// Retry lock/serialization collisions once before giving up
		err = deliver()
	}
	if err != nil {
		switch {
		case errors.Is(err, errProgressNotFound), errors.Is(err, errUnitNotCompleted):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unit not completed yet, cannot deliver!", nil)
		case errors.Is(err, errAlreadyDelivered):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unit already delivered!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to deliver unit!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unit delivered successfully!", fiber.Map{
		"expGained":          expGained,
		"leveledUp":          leveledUp,
		"newLevel":           level.Level,
		"currentExp":         level.CurrentExp,
		"nextLevelThreshold": level.NextLevelThreshold,
	})
}

// withRowLock adds FOR UPDATE where the dialect supports it. SQLite has
// no row locks and serializes writers on its own.
func withRowLock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// lockUnitProgress fetches one progress row with a row lock held for the
// rest of the transaction
func lockUnitProgress(tx *gorm.DB, userID, courseID uint, unitID string) (models.UnitProgress, error) {
	var row models.UnitProgress
	err := withRowLock(tx).
		Where("user_id = ? AND course_id = ? AND unit_id = ?", userID, courseID, unitID).
		First(&row).Error
	return row, err
}

// lockOrCreateUserLevel loads the user's level row, creating the default
// one on first use. The unique index on user_id plus the do-nothing insert
// keeps concurrent first deliveries from creating two rows.
func lockOrCreateUserLevel(tx *gorm.DB, userID uint) (models.UserLevel, error) {
	var level models.UserLevel
	err := withRowLock(tx).
		Where("user_id = ?", userID).
		First(&level).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		level = models.NewUserLevel(userID)
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&level).Error; err != nil {
			return level, err
		}
		if level.ID == 0 {
			err = withRowLock(tx).
				Where("user_id = ?", userID).
				First(&level).Error
			return level, err
		}
		return level, nil
	}
	return level, err
}

func isDeliveryStateError(err error) bool {
	return errors.Is(err, errProgressNotFound) ||
		errors.Is(err, errUnitNotCompleted) ||
		errors.Is(err, errAlreadyDelivered)
}
