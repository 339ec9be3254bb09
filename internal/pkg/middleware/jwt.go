package middleware

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/greenbasket/greenbasket/internal/pkg/models"
)

// JWTMiddleware returns the configured JWT middleware for HTTP requests.
// On success it copies the user_id and email claims into the Echo context.
func JWTMiddleware(cfg *models.Config) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if userID, exists := claims["user_id"]; exists {
							c.Set("user_id", userID)
						}
						if email, exists := claims["email"]; exists {
							c.Set("email", email)
						}
					}
				}
			}
		},
	})
}

// UserIDFromContext extracts the authenticated user ID set by JWTMiddleware
func UserIDFromContext(c echo.Context) string {
	if uid, ok := c.Get("user_id").(string); ok {
		return uid
	}
	return ""
}
