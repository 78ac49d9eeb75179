// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"
	"time"

	userRepo "fairway/database/repository/user"
	"fairway/models"
	"fairway/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set for authenticated requests.
const (
	CtxUserID   = "userID"
	CtxUserRole = "userRole"
	CtxCourseID = "userCourseID"
)

const authCacheTTL = 10 * time.Minute

// JWTAuthMiddleware validates the bearer token, resolves it to an operator
// through the auth cache (falling back to the token-hash lookup in the users
// collection), and stores the operator's identity in the request context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		operator := lookupCachedOperator(c, computedHash)
		if operator == nil {
			operator, err = users.GetByTokenHash(c.Request.Context(), computedHash)
			if err != nil || operator == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or operator not found"})
				return
			}
			cacheOperator(c, computedHash, operator)
		}

		c.Set(CtxUserID, operator.ID)
		c.Set(CtxUserRole, operator.Role)
		c.Set(CtxCourseID, operator.CourseID)
		c.Next()
	}
}

// lookupCachedOperator resolves a token hash from the auth cache. The cached
// value is "id|role|courseId".
func lookupCachedOperator(c *gin.Context, tokenHash string) *models.User {
	client := utils.GetAuthCacheClient()
	raw, err := client.Get(c.Request.Context(), "auth:"+tokenHash).Result()
	if err != nil {
		return nil
	}
	parts := strings.SplitN(raw, "|", 3)
	if len(parts) != 3 {
		return nil
	}
	return &models.User{ID: parts[0], Role: parts[1], CourseID: parts[2]}
}

func cacheOperator(c *gin.Context, tokenHash string, operator *models.User) {
	client := utils.GetAuthCacheClient()
	value := operator.ID + "|" + operator.Role + "|" + operator.CourseID
	client.Set(c.Request.Context(), "auth:"+tokenHash, value, authCacheTTL)
}
