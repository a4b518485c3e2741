package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fiesta/config"
	"fiesta/database"
	"fiesta/models"
	"fiesta/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Actor roles carried in the session token
const (
	RoleAdmin = "admin"
	RoleJury  = "jury"
	RoleTeam  = "team"
)

// SessionCookie is the HTTP-only cookie holding the session token
const SessionCookie = "fiesta_token"

const sessionTTL = 12 * time.Hour

// Claims is the JWT payload identifying the acting team, jury or admin
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// CreateToken issues a signed session token for the given subject and role
func CreateToken(subject, role string) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

func parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// AuthMiddleware requires a valid session token for any of the given roles.
// With no roles listed, any authenticated actor passes.
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		if len(roles) > 0 && !roleAllowed(claims.Role, roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}

		c.Set("session_subject", claims.Subject)
		c.Set("session_role", claims.Role)
		c.Next()
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, candidate := range allowed {
		if candidate == role {
			return true
		}
	}
	return false
}

// GetTeamFromRequest resolves the acting team from the session, responding
// with the appropriate error itself when resolution fails
func GetTeamFromRequest(c *gin.Context) (models.Team, error) {
	role := c.GetString("session_role")
	if role != RoleTeam {
		response.Error(c, http.StatusForbidden, "Team session required")
		return models.Team{}, errors.New("team session required")
	}

	var team models.Team
	if err := database.DB.Where("id = ?", c.GetString("session_subject")).First(&team).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, "Team no longer exists")
		return models.Team{}, err
	}
	return team, nil
}

// GetJuryFromRequest resolves the acting jury member from the session,
// responding with the appropriate error itself when resolution fails
func GetJuryFromRequest(c *gin.Context) (models.Jury, error) {
	role := c.GetString("session_role")
	if role != RoleJury {
		response.Error(c, http.StatusForbidden, "Jury session required")
		return models.Jury{}, errors.New("jury session required")
	}

	var jury models.Jury
	if err := database.DB.Where("id = ?", c.GetString("session_subject")).First(&jury).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, "Jury no longer exists")
		return models.Jury{}, err
	}
	return jury, nil
}

// IsAdmin reports whether the current session belongs to the admin
func IsAdmin(c *gin.Context) bool {
	return c.GetString("session_role") == RoleAdmin
}
