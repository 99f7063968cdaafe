package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rentster/rentster-app/store"
	"github.com/rentster/rentster-app/utils"
)

// ActorKey is the gin context key holding the authenticated caller.
const ActorKey = "actor"

// AuthMiddleware validates the bearer token and places a store.Actor in
// the request context. Handlers pass that actor into store calls; no
// session state lives outside the request.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		if claims.UserID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid user id in token"))
			c.Abort()
			return
		}

		c.Set(ActorKey, store.Actor{
			UserID:    claims.UserID,
			Role:      claims.Role,
			CompanyID: claims.CompanyID,
		})

		c.Next()
	}
}

// GetActor extracts the authenticated caller set by AuthMiddleware.
func GetActor(c *gin.Context) (store.Actor, bool) {
	v, exists := c.Get(ActorKey)
	if !exists {
		return store.Actor{}, false
	}
	actor, ok := v.(store.Actor)
	return actor, ok
}
