package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptrelay.app/relay/internal/http/dto"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Healthy)
}
