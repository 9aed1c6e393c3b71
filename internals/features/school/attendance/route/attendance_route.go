package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "sekolahku_backend/internals/features/school/attendance/controller"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &attendanceController.AttendanceController{DB: db}
	attendance := r.Group("/attendance")
	attendance.Get("/", ctl.GetAttendance)
	attendance.Post("/", ctl.CreateAttendanceRecord)
	attendance.Get("/student/:studentId", ctl.GetAttendanceByStudent)
	attendance.Get("/student/:studentId/percentage", ctl.GetAttendancePercentage)
	attendance.Get("/:id", ctl.GetAttendanceRecordByID)
	attendance.Put("/:id", ctl.UpdateAttendanceRecord)
	attendance.Delete("/:id", ctl.DeleteAttendanceRecord)
}
