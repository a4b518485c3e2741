package auth

import (
	"crypto/subtle"
	"net/http"

	"fiesta/config"
	"fiesta/database"
	"fiesta/middleware"
	"fiesta/models"
	"fiesta/utils"
	"fiesta/utils/response"

	"github.com/gin-gonic/gin"
)

const cookieMaxAge = 12 * 60 * 60

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, cookieMaxAge, "/", "", false, true)
}

// AdminLogin authenticates the festival admin
// @Summary Admin login
// @Description Authenticate with the admin credentials and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "Admin credentials"
// @Success 200 {object} LoginResponse
// @Failure 400,401 {object} map[string]string
// @Router /auth/admin/login [post]
func AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(config.AdminUsername)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(config.AdminPassword)) == 1
	if !usernameOK || !passwordOK {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	token, err := middleware.CreateToken(config.AdminUsername, middleware.RoleAdmin)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrLoginFailed)
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, LoginResponse{Token: token, Role: middleware.RoleAdmin})
}

// TeamLogin authenticates a team leader against the team portal password
// @Summary Team login
// @Description Authenticate a team by name and portal password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body TeamLoginRequest true "Team credentials"
// @Success 200 {object} LoginResponse
// @Failure 400,401 {object} map[string]string
// @Router /auth/team/login [post]
func TeamLogin(c *gin.Context) {
	var req TeamLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var team models.Team
	if err := database.DB.Where("name = ?", req.TeamName).First(&team).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}
	if !utils.CheckPasswordHash(req.Password, team.PasswordHash) {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	token, err := middleware.CreateToken(team.ID, middleware.RoleTeam)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrLoginFailed)
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, LoginResponse{Token: token, Role: middleware.RoleTeam, ID: team.ID, Name: team.Name})
}

// JuryLogin authenticates a jury member
// @Summary Jury login
// @Description Authenticate a jury member by name and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body JuryLoginRequest true "Jury credentials"
// @Success 200 {object} LoginResponse
// @Failure 400,401 {object} map[string]string
// @Router /auth/jury/login [post]
func JuryLogin(c *gin.Context) {
	var req JuryLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var jury models.Jury
	if err := database.DB.Where("name = ?", req.Name).First(&jury).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}
	if !utils.CheckPasswordHash(req.Password, jury.PasswordHash) {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	token, err := middleware.CreateToken(jury.ID, middleware.RoleJury)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrLoginFailed)
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, LoginResponse{Token: token, Role: middleware.RoleJury, ID: jury.ID, Name: jury.Name})
}

// Logout clears the session cookie
// @Summary Logout
// @Description Clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// CheckAuth reports the current session's role and subject
// @Summary Check session
// @Description Report the role and subject of the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
// @Security Bearer
func CheckAuth(c *gin.Context) {
	middleware.AuthMiddleware()(c)
	if c.IsAborted() {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"role":    c.GetString("session_role"),
		"subject": c.GetString("session_subject"),
	})
}
