package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"payadmin-backend/internal/remote"
	"payadmin-backend/internal/services"
	"payadmin-backend/internal/utils"
)

const (
	credentialKey = "credential"
	usernameKey   = "username"
)

// CredentialSource yields the remote API credential of the current session
// and the id of the login that established it.
type CredentialSource interface {
	Current() (remote.Credential, string, bool)
}

// AuthMiddleware admits requests carrying a valid, non-revoked browser token
// issued for the remote session that is currently logged in.
func AuthMiddleware(secret string, sessions CredentialSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
			c.Abort()
			return
		}

		isDenylisted, err := services.IsDenylisted(c.Request.Context(), tokenString)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to check token status"))
			c.Abort()
			return
		}
		if isDenylisted {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Token has been revoked"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(secret, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid or expired token"))
			c.Abort()
			return
		}

		cred, sessionID, ok := sessions.Current()
		if !ok {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Session is logged out"))
			c.Abort()
			return
		}
		if sid, _ := claims["sid"].(string); sid == "" || sid != sessionID {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Token belongs to an ended session"))
			c.Abort()
			return
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set(usernameKey, sub)
		}
		c.Set(credentialKey, cred)
		c.Next()
	}
}

// Credential returns the credential stored by AuthMiddleware.
func Credential(c *gin.Context) remote.Credential {
	if v, ok := c.Get(credentialKey); ok {
		if cred, ok := v.(remote.Credential); ok {
			return cred
		}
	}
	return ""
}

func Username(c *gin.Context) string {
	return c.GetString(usernameKey)
}
