package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "sekolahku_backend/internals/features/school/classes/controller"
)

func ClassRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &classController.ClassController{DB: db}
	classes := r.Group("/classes")
	classes.Get("/", ctl.GetClasses)
	classes.Post("/", ctl.CreateClass)
	classes.Get("/:id", ctl.GetClassByID)
	classes.Put("/:id", ctl.UpdateClass)
	classes.Delete("/:id", ctl.DeleteClass)
	classes.Get("/:id/with-students", ctl.GetClassWithStudents)
}
