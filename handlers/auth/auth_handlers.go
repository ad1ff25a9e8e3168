package auth

import (
	"fmt"
	"net/http"

	"festival/middleware"
	"festival/storage"
	"festival/utils/response"

	"github.com/gin-gonic/gin"
)

// [POST] Login
// @Summary Admin login
// @Description Authenticate an admin by username and password, set an auth cookie and return a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
	// Step 1: Parse the request body
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	// Step 2: Reject usernames still in a failed-login cooldown
	if blocked, remaining := tracker.Blocked(req.Username); blocked {
		response.Error(c, http.StatusTooManyRequests,
			fmt.Sprintf("Too many failed attempts. Try again in %d seconds", int(remaining.Seconds())+1))
		return
	}

	// Step 3: Match the credentials against the admins collection
	admin, err := storage.Store.ValidateAdmin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrAdminLookupFailed)
		return
	}
	if admin == nil {
		tracker.RecordFailure(req.Username)
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}
	tracker.RecordSuccess(req.Username)

	// Step 4: Issue the token
	token, err := middleware.GenerateToken(admin, req.RememberMe)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}
	setCookieToken(c, token, req.RememberMe)

	c.JSON(http.StatusOK, AuthResponse{
		Token:    token,
		AdminID:  admin.ID,
		Username: admin.Username,
		Name:     admin.Name,
		Role:     admin.Role,
	})
}

// [GET] CheckAuth
// @Summary Check authentication
// @Description Return the admin profile matching the current token
// @Tags Auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
// @Security Bearer
func CheckAuth(c *gin.Context) {
	admin, err := middleware.GetAdminFromRequest(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, ErrInvalidExpiredToken)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		AdminID:  admin.ID,
		Username: admin.Username,
		Name:     admin.Name,
		Role:     admin.Role,
	})
}

// [POST] Logout
// @Summary Logout
// @Description Clear the auth cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": MsgLogoutSuccess})
}
