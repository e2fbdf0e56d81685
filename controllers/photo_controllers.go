package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostkeep/rental-app/services"
	"github.com/hostkeep/rental-app/utils"
)

type PhotoController struct {
	Gemini *services.GeminiService
}

func NewPhotoController(gs *services.GeminiService) *PhotoController {
	return &PhotoController{Gemini: gs}
}

// AnalyzeIssuePhoto takes an uploaded photo and returns the AI's
// suggested issue description. The text is advisory: the cleaner can
// edit or ignore it, and the gateway degrades to fixed fallback text
// instead of failing.
func (pc *PhotoController) AnalyzeIssuePhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("photo file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	encoded, err := utils.ReadFileAsEncodedBytes(file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	description := pc.Gemini.AnalyzeIssuePhoto(c.Request.Context(), encoded, mimeType)
	utils.RespondJSON(c, http.StatusOK, "Photo analyzed", gin.H{"description": description})
}
