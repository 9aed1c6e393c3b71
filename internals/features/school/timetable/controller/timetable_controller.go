package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	timetableDTO "sekolahku_backend/internals/features/school/timetable/dto"
	timetableModel "sekolahku_backend/internals/features/school/timetable/model"
	helper "sekolahku_backend/internals/helpers"
)

var validate = validator.New()

var slotRequired = []string{"classId", "day", "timeSlot", "subjectId", "teacherId"}

type TimetableController struct {
	DB *gorm.DB
}

func toResponses(slots []timetableModel.TimetableSlotModel) []timetableDTO.TimetableSlotResponse {
	out := make([]timetableDTO.TimetableSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, timetableDTO.FromModel(s))
	}
	return out
}

// GET /api/timetable
func (h *TimetableController) GetTimetableSlots(c *fiber.Ctx) error {
	var slots []timetableModel.TimetableSlotModel
	if err := h.DB.WithContext(c.UserContext()).
		Preload("Class").Preload("Subject").Preload("Teacher").
		Find(&slots).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch timetable")
	}
	return helper.JsonSuccess(c, toResponses(slots))
}

// GET /api/timetable/:id
func (h *TimetableController) GetTimetableSlotByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var s timetableModel.TimetableSlotModel
	if err := h.DB.WithContext(c.UserContext()).
		Preload("Class").Preload("Subject").Preload("Teacher").
		First(&s, "timetable_slot_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Timetable slot not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch timetable slot")
	}
	return helper.JsonSuccess(c, timetableDTO.FromModel(s))
}

// GET /api/timetable/class/:classId
func (h *TimetableController) GetTimetableByClass(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "classId")
	if err != nil {
		return err
	}
	var slots []timetableModel.TimetableSlotModel
	if err := h.DB.WithContext(c.UserContext()).
		Preload("Class").Preload("Subject").Preload("Teacher").
		Where("timetable_slot_class_id = ?", classID).
		Find(&slots).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch timetable for class")
	}
	timetableDTO.SortSlots(slots)
	return helper.JsonSuccess(c, toResponses(slots))
}

// POST /api/timetable
func (h *TimetableController) CreateTimetableSlot(c *fiber.Ctx) error {
	if msg := helper.RequireJSONFields(c.Body(), slotRequired...); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	var req timetableDTO.CreateTimetableSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	s := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&s).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	_ = h.DB.WithContext(c.UserContext()).
		Preload("Class").Preload("Subject").Preload("Teacher").
		First(&s, "timetable_slot_id = ?", s.TimetableSlotID).Error
	return helper.JsonCreated(c, timetableDTO.FromModel(s))
}

// PUT /api/timetable/:id
func (h *TimetableController) UpdateTimetableSlot(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var s timetableModel.TimetableSlotModel
	if err := h.DB.WithContext(c.UserContext()).First(&s, "timetable_slot_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Timetable slot not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch timetable slot")
	}

	var req timetableDTO.UpdateTimetableSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Apply(&s)

	if err := h.DB.WithContext(c.UserContext()).Save(&s).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	_ = h.DB.WithContext(c.UserContext()).
		Preload("Class").Preload("Subject").Preload("Teacher").
		First(&s, "timetable_slot_id = ?", s.TimetableSlotID).Error
	return helper.JsonSuccess(c, timetableDTO.FromModel(s))
}

// DELETE /api/timetable/:id
func (h *TimetableController) DeleteTimetableSlot(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&timetableModel.TimetableSlotModel{}, "timetable_slot_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete timetable slot")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Timetable slot not found")
	}
	return helper.JsonDeleted(c, "Timetable slot deleted")
}
