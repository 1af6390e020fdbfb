package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sumanth2354/ITAttendance/app/config"
	"github.com/sumanth2354/ITAttendance/app/database"
	"github.com/sumanth2354/ITAttendance/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/profile", ShowProfilePage)
	auth.Post("/change-password", ChangePasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - IT Attendance",
	}, "")
}

func ShowProfilePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("auth/profile", fiber.Map{
		"Title":       "Profile - IT Attendance",
		"CurrentPage": "profile",
		"user":        user,
		"Name":        user.Name,
		"Role":        user.Role,
	})
}

// AuthMiddleware validates the JWT cookie (or bearer token), checks that the
// server-side session is still alive, and puts the authenticated user into
// the request context. Handlers read the user from c.Locals, never from any
// ambient state.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	tokenString = c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	// A logout deletes the session row; tokens carrying that session stop
	// working even before they expire.
	if _, err := database.GetSessionByID(config.GetDB(), claims.SessionID); err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Session expired"})
		}
		return c.Redirect("/auth/login")
	}

	user := &models.User{
		ID:       claims.UserID,
		Username: claims.Username,
		Name:     claims.Name,
		Role:     claims.Role,
		IsActive: true,
	}

	c.Locals("user", user)
	c.Locals("session_id", claims.SessionID)

	return c.Next()
}

// RoleMiddleware checks if the user has one of the allowed roles.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)

		for _, allowedRole := range allowedRoles {
			if user.Role == allowedRole {
				return c.Next()
			}
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(403).JSON(fiber.Map{"success": false, "error": "Insufficient permissions"})
		}

		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - IT Attendance",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
			"user":         c.Locals("user"),
		})
	}
}
