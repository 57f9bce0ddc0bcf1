package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"ethograph/internal/dao"
	"ethograph/internal/version"
)

const userKey = "user"

type TokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// TrySetUserToContext resolves the request's token, if any, and puts
// the username into the context. It never rejects anonymous requests
// by itself; NeedAuth decides whether those may pass.
func TrySetUserToContext(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			tokenStr, _ = c.Cookie("token")
		}
		if tokenStr == "" {
			auth := c.GetHeader("Authorization")
			if auth != "" && len(auth) > 7 && auth[:7] == "Bearer " {
				tokenStr = auth[7:]
			}
		}
		if tokenStr != "" {
			token, tokenErr := jwt.ParseWithClaims(tokenStr, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
				return []byte(jwtSecret), nil
			})
			if tokenErr != nil || !token.Valid {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "invalid token",
				})
				return
			}

			if claims, ok := token.Claims.(*TokenClaims); ok {
				c.Set(userKey, claims.Username)
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "invalid token claims",
				})
				return
			}
		}

		c.Next()
	}
}

// NeedAuth guards the dashboard API. Deployments without a jwtSecret
// run in open mode and every request passes.
func NeedAuth(open bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if open {
			c.Next()
			return
		}
		if _, exists := c.Get(userKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
			})
			return
		}
		c.Next()
	}
}

// @Summary Log in
// @Description Exchange demo credentials for a bearer token
// @Tags user
// @Accept json
// @Produce json
// @Param request body dao.LoginRequest true "Credentials"
// @Success 200 {object} dao.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/login [post]
func (s *Server) handleLogin(c *gin.Context) {
	var req dao.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}

	if s.conf.JwtSecret == "" {
		s.writeError(c, http.StatusBadRequest, fmt.Errorf("authentication is disabled"))
		return
	}

	matched := false
	for _, u := range s.conf.Users {
		if u.Username == req.Username && u.Password == req.Password {
			matched = true
			break
		}
	}
	if !matched {
		s.writeError(c, http.StatusUnauthorized, fmt.Errorf("invalid username or password"))
		return
	}

	token, err := genJwtToken(req.Username, s.conf.JwtSecret)
	if err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}

	c.SetCookie("token", token, 7*24*60*60, "/", "", false, true)
	c.JSON(http.StatusOK, dao.LoginResponse{
		Token:    token,
		Username: req.Username,
	})
}

func genJwtToken(username, jwtSecret string) (string, error) {
	claims := TokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    version.APP,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// @Summary Log out
// @Description Clear the token cookie
// @Tags user
// @Accept json
// @Produce json
// @Success 200
// @Router /api/v1/logout [post]
func (s *Server) handleLogout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
}
