package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	timetableController "sekolahku_backend/internals/features/school/timetable/controller"
)

func TimetableRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &timetableController.TimetableController{DB: db}
	timetable := r.Group("/timetable")
	timetable.Get("/", ctl.GetTimetableSlots)
	timetable.Post("/", ctl.CreateTimetableSlot)
	timetable.Get("/class/:classId", ctl.GetTimetableByClass)
	timetable.Get("/:id", ctl.GetTimetableSlotByID)
	timetable.Put("/:id", ctl.UpdateTimetableSlot)
	timetable.Delete("/:id", ctl.DeleteTimetableSlot)
}
