package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"leetcode-stats-api/internal/application/usecase"
)

type UserHandler struct {
	profiles *usecase.ProfileUseCase
}

func NewUserHandler(profiles *usecase.ProfileUseCase) *UserHandler {
	return &UserHandler{profiles: profiles}
}

// GetUserData отдаёт собранный профиль как есть (байты из конвейера или кэша).
// Тело ошибок фиксированное, статусы — по виду ошибки.
func (h *UserHandler) GetUserData(c *gin.Context) {
	username := c.Param("username")

	data, err := h.profiles.GetUserProfile(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrUserNotFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred: " + err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
