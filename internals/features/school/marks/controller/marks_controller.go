package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	marksDTO "sekolahku_backend/internals/features/school/marks/dto"
	marksModel "sekolahku_backend/internals/features/school/marks/model"
	helper "sekolahku_backend/internals/helpers"
)

var validate = validator.New()

var marksRequired = []string{"studentId", "subjectId", "classId", "marks", "totalMarks"}

type MarksController struct {
	DB *gorm.DB
}

func toResponses(records []marksModel.MarksModel) []marksDTO.MarksResponse {
	out := make([]marksDTO.MarksResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, marksDTO.FromModel(rec))
	}
	return out
}

// GET /api/marks
func (h *MarksController) GetMarks(c *fiber.Ctx) error {
	var records []marksModel.MarksModel
	if err := h.DB.WithContext(c.UserContext()).
		Preload("Student").Preload("Subject").Preload("Class").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch marks")
	}
	return helper.JsonSuccess(c, toResponses(records))
}

// GET /api/marks/:id
func (h *MarksController) GetMarksRecordByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var rec marksModel.MarksModel
	if err := h.DB.WithContext(c.UserContext()).
		Preload("Student").Preload("Subject").Preload("Class").
		First(&rec, "marks_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Marks record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch marks record")
	}
	return helper.JsonSuccess(c, marksDTO.FromModel(rec))
}

// GET /api/marks/student/:studentId
func (h *MarksController) GetMarksByStudent(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "studentId")
	if err != nil {
		return err
	}
	var records []marksModel.MarksModel
	if err := h.DB.WithContext(c.UserContext()).
		Preload("Subject").Preload("Class").
		Where("marks_student_id = ?", studentID).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student marks")
	}
	return helper.JsonSuccess(c, toResponses(records))
}

// GET /api/marks/student/:studentId/average
func (h *MarksController) GetAverageScore(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "studentId")
	if err != nil {
		return err
	}
	var percentages []float64
	if err := h.DB.WithContext(c.UserContext()).Model(&marksModel.MarksModel{}).
		Where("marks_student_id = ?", studentID).
		Pluck("marks_percentage", &percentages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to calculate average score")
	}
	return helper.JsonSuccess(c, fiber.Map{"average": helper.MeanRound1(percentages)})
}

// GET /api/marks/class/:classId/performance
func (h *MarksController) GetClassPerformance(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "classId")
	if err != nil {
		return err
	}
	var records []marksModel.MarksModel
	if err := h.DB.WithContext(c.UserContext()).Preload("Student").
		Where("marks_class_id = ?", classID).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class performance")
	}
	return helper.JsonSuccess(c, marksDTO.GroupPerformance(records))
}

// POST /api/marks
func (h *MarksController) CreateMarksRecord(c *fiber.Ctx) error {
	if msg := helper.RequireJSONFields(c.Body(), marksRequired...); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	var req marksDTO.CreateMarksRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rec := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&rec).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	_ = h.DB.WithContext(c.UserContext()).
		Preload("Student").Preload("Subject").Preload("Class").
		First(&rec, "marks_id = ?", rec.MarksID).Error
	return helper.JsonCreated(c, marksDTO.FromModel(rec))
}

// PUT /api/marks/:id
func (h *MarksController) UpdateMarksRecord(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var rec marksModel.MarksModel
	if err := h.DB.WithContext(c.UserContext()).First(&rec, "marks_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Marks record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch marks record")
	}

	var req marksDTO.UpdateMarksRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Apply(&rec)

	if err := h.DB.WithContext(c.UserContext()).Save(&rec).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	_ = h.DB.WithContext(c.UserContext()).
		Preload("Student").Preload("Subject").Preload("Class").
		First(&rec, "marks_id = ?", rec.MarksID).Error
	return helper.JsonSuccess(c, marksDTO.FromModel(rec))
}

// DELETE /api/marks/:id
func (h *MarksController) DeleteMarksRecord(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&marksModel.MarksModel{}, "marks_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete marks record")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Marks record not found")
	}
	return helper.JsonDeleted(c, "Marks record deleted")
}
