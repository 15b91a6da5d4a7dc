package courseController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists the catalog. ?recommended=true narrows it to the
// courses promoted on the landing page.
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if c.Query("recommended") == "true" {
		db = db.Where("recommended = ?", true)
	}

	courses := []models.Course{}
	if err := db.Order("created_at asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns a single course with its purchase state for the
// authenticated user
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	purchased, err := models.IsCoursePaid(database.Database.Db, userID, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check purchase state!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":       course,
		"is_purchased": purchased,
	})
}

// unitView is a syllabus unit with its access flag resolved for the caller
type unitView struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	VideoID string `json:"videoId,omitempty"`
	Exp     int    `json:"exp"`
	Locked  bool   `json:"locked"`
}

type chapterView struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Date  string     `json:"date,omitempty"`
	Units []unitView `json:"units"`
}

// GetCourseSyllabus returns the chapter/unit tree. Unpurchased users see
// everything locked except, on trial courses, the first unit of the first
// chapter.
func GetCourseSyllabus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	purchased, err := models.IsCoursePaid(database.Database.Db, userID, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check purchase state!", nil)
	}

	chapters, err := utils.ParseSyllabus(course.SyllabusJSON)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Syllabus fetched successfully!", []chapterView{})
	}

	view := make([]chapterView, 0, len(chapters))
	for ci, chapter := range chapters {
		cv := chapterView{
			ID:    chapter.ID,
			Title: chapter.Title,
			Date:  chapter.Date,
			Units: make([]unitView, 0, len(chapter.Units)),
		}
		for ui, unit := range chapter.Units {
			exp := utils.DefaultUnitExp
			if unit.Exp != nil {
				exp = *unit.Exp
			}
			trialUnit := course.HasTrial && ci == 0 && ui == 0
			uv := unitView{
				ID:     unit.ID,
				Title:  unit.Title,
				Exp:    exp,
				Locked: !purchased && !trialUnit,
			}
			if !uv.Locked {
				uv.VideoID = unit.VideoID
			}
			cv.Units = append(cv.Units, uv)
		}
		view = append(view, cv)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Syllabus fetched successfully!", view)
}
