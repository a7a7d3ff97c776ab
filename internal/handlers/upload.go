// internal/handlers/upload.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/store-admin/internal/services"
	"github.com/javajoker/store-admin/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

// POST /api/:storeId/uploads
func (h *UploadHandler) UploadImage(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "file is required", nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.BadRequestResponse(c, "file is required", nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadImage(c.Request.Context(), userID, c.Param("storeId"), &services.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		Body:     file,
	})
	if err != nil {
		respondError(c, "[UPLOAD_POST]", "Store", err)
		return
	}

	utils.JSONResponse(c, result)
}
