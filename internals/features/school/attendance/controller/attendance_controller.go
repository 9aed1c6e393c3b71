package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceDTO "sekolahku_backend/internals/features/school/attendance/dto"
	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	helper "sekolahku_backend/internals/helpers"
)

var validate = validator.New()

var attendanceRequired = []string{"studentId", "classId", "date"}

type AttendanceController struct {
	DB *gorm.DB
}

func toResponses(records []attendanceModel.AttendanceModel) []attendanceDTO.AttendanceResponse {
	out := make([]attendanceDTO.AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, attendanceDTO.FromModel(a))
	}
	return out
}

// GET /api/attendance
func (h *AttendanceController) GetAttendance(c *fiber.Ctx) error {
	var records []attendanceModel.AttendanceModel
	if err := h.DB.WithContext(c.UserContext()).
		Preload("Student").Preload("Class").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return helper.JsonSuccess(c, toResponses(records))
}

// GET /api/attendance/:id
func (h *AttendanceController) GetAttendanceRecordByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var a attendanceModel.AttendanceModel
	if err := h.DB.WithContext(c.UserContext()).
		Preload("Student").Preload("Class").
		First(&a, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance record")
	}
	return helper.JsonSuccess(c, attendanceDTO.FromModel(a))
}

// GET /api/attendance/student/:studentId
func (h *AttendanceController) GetAttendanceByStudent(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "studentId")
	if err != nil {
		return err
	}
	var records []attendanceModel.AttendanceModel
	if err := h.DB.WithContext(c.UserContext()).Preload("Class").
		Where("attendance_student_id = ?", studentID).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student attendance")
	}
	return helper.JsonSuccess(c, toResponses(records))
}

// GET /api/attendance/student/:studentId/percentage
func (h *AttendanceController) GetAttendancePercentage(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "studentId")
	if err != nil {
		return err
	}
	var records []attendanceModel.AttendanceModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("attendance_student_id = ?", studentID).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to calculate attendance percentage")
	}
	return helper.JsonSuccess(c, attendanceDTO.Summarize(records))
}

// POST /api/attendance
func (h *AttendanceController) CreateAttendanceRecord(c *fiber.Ctx) error {
	if msg := helper.RequireJSONFields(c.Body(), attendanceRequired...); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	var req attendanceDTO.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	a := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&a).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	_ = h.DB.WithContext(c.UserContext()).
		Preload("Student").Preload("Class").
		First(&a, "attendance_id = ?", a.AttendanceID).Error
	return helper.JsonCreated(c, attendanceDTO.FromModel(a))
}

// PUT /api/attendance/:id
func (h *AttendanceController) UpdateAttendanceRecord(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var a attendanceModel.AttendanceModel
	if err := h.DB.WithContext(c.UserContext()).First(&a, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance record")
	}

	var req attendanceDTO.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Apply(&a)

	if err := h.DB.WithContext(c.UserContext()).Save(&a).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	_ = h.DB.WithContext(c.UserContext()).
		Preload("Student").Preload("Class").
		First(&a, "attendance_id = ?", a.AttendanceID).Error
	return helper.JsonSuccess(c, attendanceDTO.FromModel(a))
}

// DELETE /api/attendance/:id
func (h *AttendanceController) DeleteAttendanceRecord(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&attendanceModel.AttendanceModel{}, "attendance_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete attendance record")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
	}
	return helper.JsonDeleted(c, "Attendance record deleted")
}
