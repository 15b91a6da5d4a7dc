package uploadController

import (
	"strings"

	"lms/config"
	"lms/middleware"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadVideo stores a course video under the configured upload directory.
// The target filename comes from the form so re-uploads replace the same
// video, which is why it gets sanitized here.
func UploadVideo(c *fiber.Ctx) error {
	fileName := strings.TrimSpace(c.FormValue("fileName"))
	if fileName == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File name is required!", nil)
	}

	// Reject anything that could escape the upload directory
	if strings.Contains(fileName, "..") || strings.ContainsAny(fileName, "/\\") {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid file name!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is required!", nil)
	}
	if file.Size == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is empty!", nil)
	}

	if !strings.HasSuffix(strings.ToLower(fileName), ".mp4") {
		fileName += ".mp4"
	}

	savedPath, err := utils.SaveUploadedFileAs(file, config.AppConfig.VideoUploadDir, fileName)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Upload successful!", fiber.Map{
		"path":     "/videos/" + fileName,
		"realPath": savedPath,
	})
}
