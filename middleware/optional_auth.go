package middleware

import (
	"paperly/utils"

	"github.com/gin-gonic/gin"
)

// OptionalJwt 中间件，携带有效token时解析用户信息，否则按匿名访问放行
func OptionalJwt() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Request.Header.Get("Authorization")
		if len(tokenString) < 7 || tokenString[:7] != "Bearer " {
			c.Next()
			return
		}

		claims, err := utils.ParseToken(tokenString[7:])
		if err == nil {
			c.Set("claims", claims)
		}
		c.Next()
	}
}
