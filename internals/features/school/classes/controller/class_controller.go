package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classDTO "sekolahku_backend/internals/features/school/classes/dto"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

var validate = validator.New()

var classRequired = []string{"name", "capacity"}

type ClassController struct {
	DB *gorm.DB
}

// GET /api/classes
func (h *ClassController) GetClasses(c *fiber.Ctx) error {
	var classes []classModel.ClassModel
	if err := h.DB.WithContext(c.UserContext()).Preload("Teacher").Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classes")
	}
	out := make([]classDTO.ClassResponse, 0, len(classes))
	for _, cl := range classes {
		out = append(out, classDTO.FromModel(cl))
	}
	return helper.JsonSuccess(c, out)
}

// GET /api/classes/:id
func (h *ClassController) GetClassByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var cl classModel.ClassModel
	if err := h.DB.WithContext(c.UserContext()).Preload("Teacher").
		First(&cl, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}
	return helper.JsonSuccess(c, classDTO.FromModel(cl))
}

// POST /api/classes
func (h *ClassController) CreateClass(c *fiber.Ctx) error {
	if msg := helper.RequireJSONFields(c.Body(), classRequired...); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	cl := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&cl).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	// reload with the homeroom teacher expanded
	_ = h.DB.WithContext(c.UserContext()).Preload("Teacher").
		First(&cl, "class_id = ?", cl.ClassID).Error
	return helper.JsonCreated(c, classDTO.FromModel(cl))
}

// PUT /api/classes/:id
func (h *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var cl classModel.ClassModel
	if err := h.DB.WithContext(c.UserContext()).First(&cl, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}

	var req classDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Apply(&cl)

	if err := h.DB.WithContext(c.UserContext()).Save(&cl).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	_ = h.DB.WithContext(c.UserContext()).Preload("Teacher").
		First(&cl, "class_id = ?", cl.ClassID).Error
	return helper.JsonSuccess(c, classDTO.FromModel(cl))
}

// DELETE /api/classes/:id
// No cascade: students, subjects and timetable slots keep their classId.
func (h *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&classModel.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonDeleted(c, "Class deleted")
}

// GET /api/classes/:id/with-students
func (h *ClassController) GetClassWithStudents(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var cl classModel.ClassModel
	if err := h.DB.WithContext(c.UserContext()).Preload("Teacher").
		First(&cl, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}

	var students []studentModel.StudentModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("student_class_id = ?", id).Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class with students")
	}
	return helper.JsonSuccess(c, classDTO.FromModelWithStudents(cl, students))
}
