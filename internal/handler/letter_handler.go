package handler

import (
	"net/http"

	"panelapi/internal/middleware"
	"panelapi/internal/service"
	"panelapi/pkg/pagination"
	"panelapi/pkg/response"

	"github.com/gin-gonic/gin"
)

type LetterHandler struct {
	letterService service.LetterService
}

func NewLetterHandler(letterService service.LetterService) *LetterHandler {
	return &LetterHandler{letterService: letterService}
}

func (h *LetterHandler) RegisterRoutes(router *gin.RouterGroup) {
	letters := router.Group("/api/letters")
	{
		letters.GET("", middleware.RequirePermission("letters.read"), h.ListLetters)
		letters.GET("/serial-preview", middleware.RequirePermission("letters.read"), h.PreviewSerial)
		letters.GET("/:id", middleware.RequirePermission("letters.read"), h.GetLetter)
		letters.POST("", middleware.RequirePermission("letters.write"), h.CreateLetter)
		letters.PUT("/:id", middleware.RequirePermission("letters.write"), h.UpdateLetter)
		letters.DELETE("/:id", middleware.RequirePermission("letters.write"), h.DeleteLetter)
	}
}

func (h *LetterHandler) ListLetters(c *gin.Context) {
	params := pagination.Parse(c)

	letters, total, err := h.letterService.ListLetters(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch letters"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessList(http.StatusOK, letters, total, params.Page, params.Limit))
}

func (h *LetterHandler) GetLetter(c *gin.Context) {
	letter, err := h.letterService.GetLetter(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, letter))
}

func (h *LetterHandler) CreateLetter(c *gin.Context) {
	var req service.CreateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	letter, err := h.letterService.CreateLetter(c.Request.Context(), actorID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, letter))
}

func (h *LetterHandler) UpdateLetter(c *gin.Context) {
	var req service.UpdateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	letter, err := h.letterService.UpdateLetter(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, letter))
}

func (h *LetterHandler) DeleteLetter(c *gin.Context) {
	if err := h.letterService.DeleteLetter(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Letter deleted successfully"))
}

// PreviewSerial shows the next letter serial without consuming it
func (h *LetterHandler) PreviewSerial(c *gin.Context) {
	next, err := h.letterService.PreviewSerial(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to preview serial"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]string{"serial": next}))
}
