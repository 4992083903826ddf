package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novedades-silva/toystore-backend/models"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Logout the current admin by clearing the token cookie. Tokens are stateless, so nothing is revoked server-side.
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	if email, exists := c.Get("adminEmail"); exists {
		log.Printf("[admin.logout] admin logging out: %s", email)
	}

	// ✅ CLEAR TOKEN COOKIE
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"admin_token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
