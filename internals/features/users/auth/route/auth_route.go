package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sekolahku_backend/internals/features/users/auth/controller"
	"sekolahku_backend/internals/features/users/auth/service"
	"sekolahku_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router, db *gorm.DB, jwtSecret string) {
	ctl := &authController.AuthController{
		Service: &service.AuthService{DB: db, Secret: jwtSecret},
	}
	grp := r.Group("/auth")
	grp.Post("/login", ctl.Login)
	grp.Get("/me", middlewares.AuthJWT(jwtSecret), ctl.Me)
}
