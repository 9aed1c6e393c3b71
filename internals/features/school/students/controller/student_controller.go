package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	studentDTO "sekolahku_backend/internals/features/school/students/dto"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

var validate = validator.New()

var studentRequired = []string{"admissionNumber", "firstName", "rollNumber", "classId", "email", "password"}

type StudentController struct {
	DB *gorm.DB
}

// GET /api/students
func (h *StudentController) GetStudents(c *fiber.Ctx) error {
	var students []studentModel.StudentModel
	if err := h.DB.WithContext(c.UserContext()).Preload("Class").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}
	out := make([]studentDTO.StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, studentDTO.FromModel(s))
	}
	return helper.JsonSuccess(c, out)
}

// GET /api/students/class/:classId
func (h *StudentController) GetStudentsByClass(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "classId")
	if err != nil {
		return err
	}
	var students []studentModel.StudentModel
	if err := h.DB.WithContext(c.UserContext()).Preload("Class").
		Where("student_class_id = ?", classID).Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}
	out := make([]studentDTO.StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, studentDTO.FromModel(s))
	}
	return helper.JsonSuccess(c, out)
}

// GET /api/students/:id
func (h *StudentController) GetStudentByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var s studentModel.StudentModel
	if err := h.DB.WithContext(c.UserContext()).Preload("Class").
		First(&s, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return helper.JsonSuccess(c, studentDTO.FromModel(s))
}

// POST /api/students
func (h *StudentController) CreateStudent(c *fiber.Ctx) error {
	if msg := helper.RequireJSONFields(c.Body(), studentRequired...); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	s := req.ToModel(string(hashed))
	if err := h.DB.WithContext(c.UserContext()).Create(&s).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	_ = h.DB.WithContext(c.UserContext()).Preload("Class").
		First(&s, "student_id = ?", s.StudentID).Error
	return helper.JsonCreated(c, studentDTO.FromModel(s))
}

// PUT /api/students/:id
func (h *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var s studentModel.StudentModel
	if err := h.DB.WithContext(c.UserContext()).First(&s, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Apply(&s)
	if pwd, ok := req.Password.Get(); ok && pwd != nil && *pwd != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*pwd), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		s.StudentPassword = string(hashed)
	}

	if err := h.DB.WithContext(c.UserContext()).Save(&s).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	_ = h.DB.WithContext(c.UserContext()).Preload("Class").
		First(&s, "student_id = ?", s.StudentID).Error
	return helper.JsonSuccess(c, studentDTO.FromModel(s))
}

// DELETE /api/students/:id
func (h *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&studentModel.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonDeleted(c, "Student deleted")
}
