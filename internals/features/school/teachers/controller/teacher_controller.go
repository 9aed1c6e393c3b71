package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/school/classes/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	teacherDTO "sekolahku_backend/internals/features/school/teachers/dto"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	helper "sekolahku_backend/internals/helpers"
)

var validate = validator.New()

var teacherRequired = []string{"name", "email", "password"}

type TeacherController struct {
	DB *gorm.DB
}

// populate expands the uuid[] membership columns into subject/class rows.
func (h *TeacherController) populate(c *fiber.Ctx, t teacherModel.TeacherModel) (teacherDTO.TeacherResponse, error) {
	var subjects []subjectModel.SubjectModel
	if len(t.TeacherSubjects) > 0 {
		if err := h.DB.WithContext(c.UserContext()).
			Where("subject_id IN ?", []string(t.TeacherSubjects)).
			Find(&subjects).Error; err != nil {
			return teacherDTO.TeacherResponse{}, err
		}
	}
	var classes []classModel.ClassModel
	if len(t.TeacherClasses) > 0 {
		if err := h.DB.WithContext(c.UserContext()).
			Where("class_id IN ?", []string(t.TeacherClasses)).
			Find(&classes).Error; err != nil {
			return teacherDTO.TeacherResponse{}, err
		}
	}
	return teacherDTO.FromModel(t, subjects, classes), nil
}

// GET /api/teachers
func (h *TeacherController) GetTeachers(c *fiber.Ctx) error {
	var teachers []teacherModel.TeacherModel
	if err := h.DB.WithContext(c.UserContext()).Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}
	out := make([]teacherDTO.TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		resp, err := h.populate(c, t)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
		}
		out = append(out, resp)
	}
	return helper.JsonSuccess(c, out)
}

// GET /api/teachers/:id
func (h *TeacherController) GetTeacherByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var t teacherModel.TeacherModel
	if err := h.DB.WithContext(c.UserContext()).First(&t, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}
	resp, err := h.populate(c, t)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}
	return helper.JsonSuccess(c, resp)
}

// POST /api/teachers
func (h *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	if msg := helper.RequireJSONFields(c.Body(), teacherRequired...); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	var req teacherDTO.CreateTeacherRequest
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

	t := req.ToModel(string(hashed))
	if err := h.DB.WithContext(c.UserContext()).Create(&t).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	resp, err := h.populate(c, t)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}
	return helper.JsonCreated(c, resp)
}

// PUT /api/teachers/:id
func (h *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var t teacherModel.TeacherModel
	if err := h.DB.WithContext(c.UserContext()).First(&t, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	var req teacherDTO.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Apply(&t)
	if pwd, ok := req.Password.Get(); ok && pwd != nil && *pwd != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*pwd), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		t.TeacherPassword = string(hashed)
	}

	if err := h.DB.WithContext(c.UserContext()).Save(&t).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	resp, err := h.populate(c, t)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}
	return helper.JsonSuccess(c, resp)
}

// DELETE /api/teachers/:id
func (h *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&teacherModel.TeacherModel{}, "teacher_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}
	return helper.JsonDeleted(c, "Teacher deleted")
}

// POST /api/teachers/:id/assign-subject
// Set semantics: assigning the same subject twice is a no-op.
func (h *TeacherController) AssignSubject(c *fiber.Ctx) error {
	return h.assign(c, "subjectId", func(t *teacherModel.TeacherModel, id string) {
		t.TeacherSubjects = helper.AddToSet(t.TeacherSubjects, id)
	})
}

// POST /api/teachers/:id/assign-class
func (h *TeacherController) AssignClass(c *fiber.Ctx) error {
	return h.assign(c, "classId", func(t *teacherModel.TeacherModel, id string) {
		t.TeacherClasses = helper.AddToSet(t.TeacherClasses, id)
	})
}

func (h *TeacherController) assign(c *fiber.Ctx, field string, add func(*teacherModel.TeacherModel, string)) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if msg := helper.RequireJSONFields(c.Body(), field); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, field+" is required")
	}

	var body map[string]string
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	refID, err := uuid.Parse(body[field])
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+field)
	}

	var t teacherModel.TeacherModel
	if err := h.DB.WithContext(c.UserContext()).First(&t, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	add(&t, refID.String())
	if err := h.DB.WithContext(c.UserContext()).Save(&t).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	resp, err := h.populate(c, t)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}
	return helper.JsonSuccess(c, resp)
}
