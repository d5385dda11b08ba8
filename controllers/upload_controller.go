package controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 5 << 20 // 5MB

type UploadController struct {
	Dir string // root upload directory, served under /uploads
}

func NewUploadController(dir string) *UploadController {
	return &UploadController{Dir: dir}
}

// POST /api/restaurants/upload-image
func (h *UploadController) RestaurantImage(c *gin.Context) {
	h.save(c, "restaurants", "restaurant")
}

// POST /api/menu/upload-image
func (h *UploadController) MenuImage(c *gin.Context) {
	h.save(c, "menu", "menu")
}

func (h *UploadController) save(c *gin.Context, subdir, prefix string) {
	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "No file uploaded")
		return
	}
	if file.Size > maxUploadSize {
		resp.BadRequest(c, "File too large")
		return
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		resp.BadRequest(c, "Only image files are allowed")
		return
	}

	ext := filepath.Ext(file.Filename)
	name := fmt.Sprintf("%s_%d_%s%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:6], ext)

	dir := filepath.Join(h.Dir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"message":      "Image uploaded successfully",
		"imageUrl":     "/uploads/" + subdir + "/" + name,
		"fileName":     name,
		"fileSize":     file.Size,
		"originalName": file.Filename,
	})
}
