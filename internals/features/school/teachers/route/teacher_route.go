package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "sekolahku_backend/internals/features/school/teachers/controller"
)

func TeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &teacherController.TeacherController{DB: db}
	teachers := r.Group("/teachers")
	teachers.Get("/", ctl.GetTeachers)
	teachers.Post("/", ctl.CreateTeacher)
	teachers.Get("/:id", ctl.GetTeacherByID)
	teachers.Put("/:id", ctl.UpdateTeacher)
	teachers.Delete("/:id", ctl.DeleteTeacher)
	teachers.Post("/:id/assign-subject", ctl.AssignSubject)
	teachers.Post("/:id/assign-class", ctl.AssignClass)
}
