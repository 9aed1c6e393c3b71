package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	marksController "sekolahku_backend/internals/features/school/marks/controller"
)

func MarksRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &marksController.MarksController{DB: db}
	marks := r.Group("/marks")
	marks.Get("/", ctl.GetMarks)
	marks.Post("/", ctl.CreateMarksRecord)
	marks.Get("/student/:studentId", ctl.GetMarksByStudent)
	marks.Get("/student/:studentId/average", ctl.GetAverageScore)
	marks.Get("/class/:classId/performance", ctl.GetClassPerformance)
	marks.Get("/:id", ctl.GetMarksRecordByID)
	marks.Put("/:id", ctl.UpdateMarksRecord)
	marks.Delete("/:id", ctl.DeleteMarksRecord)
}
