package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fund-insight/fund_service/internal/domain/entities"
	"github.com/fund-insight/fund_service/pkg/version"
)

func VersionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, version.Get())
	}
}

// RootHandler answers the bare liveness probe on "/"
func RootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, entities.MessageResponse{Message: "API is running!"})
	}
}
