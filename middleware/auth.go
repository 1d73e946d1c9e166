package middleware

import (
	"net/http"
	"strings"

	"trimly/utils"

	"github.com/gin-gonic/gin"
)

// ShopIDKey is the gin context key the shop account ID is stored under.
const ShopIDKey = "shopID"

// JWTAuthShopMiddleware authenticates a shop account and places its ID in the
// request context. All schedule routes are scoped to this identity.
func JWTAuthShopMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		shopID, err := utils.ExtractShopIDFromToken(tokenString)
		if err != nil || shopID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set(ShopIDKey, shopID)
		c.Next()
	}
}

// ShopID retrieves the authenticated shop account ID from the context.
func ShopID(c *gin.Context) string {
	id, _ := c.Get(ShopIDKey)
	s, _ := id.(string)
	return s
}
