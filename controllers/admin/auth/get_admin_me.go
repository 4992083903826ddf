package admin_auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novedades-silva/toystore-backend/middleware"
	"github.com/novedades-silva/toystore-backend/models"
)

// GetAdminMe godoc
// @Summary Get current admin
// @Description Return the authenticated admin identity from the verified token claims.
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /admin/me [get]
func GetAdminMe(c *gin.Context) {
	email, ok := middleware.GetAdminEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin fetched successfully", gin.H{
		"email": email,
	}))
}
