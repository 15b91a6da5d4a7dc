package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// SaveUploadedFileAs writes an uploaded file into destDir under the given
// name, replacing any existing file with that name
func SaveUploadedFileAs(file *multipart.FileHeader, destDir, fileName string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	filePath := filepath.Join(destDir, fileName)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}
