package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "sekolahku_backend/internals/features/school/students/controller"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &studentController.StudentController{DB: db}
	students := r.Group("/students")
	students.Get("/", ctl.GetStudents)
	students.Post("/", ctl.CreateStudent)
	// class filter must register before the :id wildcard
	students.Get("/class/:classId", ctl.GetStudentsByClass)
	students.Get("/:id", ctl.GetStudentByID)
	students.Put("/:id", ctl.UpdateStudent)
	students.Delete("/:id", ctl.DeleteStudent)
}
