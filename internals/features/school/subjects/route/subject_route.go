package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "sekolahku_backend/internals/features/school/subjects/controller"
)

func SubjectRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &subjectController.SubjectController{DB: db}
	subjects := r.Group("/subjects")
	subjects.Get("/", ctl.GetSubjects)
	subjects.Post("/", ctl.CreateSubject)
	subjects.Get("/:id", ctl.GetSubjectByID)
	subjects.Put("/:id", ctl.UpdateSubject)
	subjects.Delete("/:id", ctl.DeleteSubject)
}
