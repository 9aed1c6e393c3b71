package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectDTO "sekolahku_backend/internals/features/school/subjects/dto"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	helper "sekolahku_backend/internals/helpers"
)

var validate = validator.New()

var subjectRequired = []string{"name", "code", "classId"}

type SubjectController struct {
	DB *gorm.DB
}

func (h *SubjectController) populate(c *fiber.Ctx, s subjectModel.SubjectModel) (subjectDTO.SubjectResponse, error) {
	var teachers []teacherModel.TeacherModel
	if len(s.SubjectTeacherIDs) > 0 {
		if err := h.DB.WithContext(c.UserContext()).
			Where("teacher_id IN ?", []string(s.SubjectTeacherIDs)).
			Find(&teachers).Error; err != nil {
			return subjectDTO.SubjectResponse{}, err
		}
	}
	return subjectDTO.FromModel(s, teachers), nil
}

// GET /api/subjects?classId=...
func (h *SubjectController) GetSubjects(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).Preload("Class")
	if raw := c.Query("classId"); raw != "" {
		classID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid classId")
		}
		q = q.Where("subject_class_id = ?", classID)
	}

	var subjects []subjectModel.SubjectModel
	if err := q.Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subjects")
	}
	out := make([]subjectDTO.SubjectResponse, 0, len(subjects))
	for _, s := range subjects {
		resp, err := h.populate(c, s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subjects")
		}
		out = append(out, resp)
	}
	return helper.JsonSuccess(c, out)
}

// GET /api/subjects/:id
func (h *SubjectController) GetSubjectByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var s subjectModel.SubjectModel
	if err := h.DB.WithContext(c.UserContext()).Preload("Class").
		First(&s, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}
	resp, err := h.populate(c, s)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}
	return helper.JsonSuccess(c, resp)
}

// POST /api/subjects
func (h *SubjectController) CreateSubject(c *fiber.Ctx) error {
	if msg := helper.RequireJSONFields(c.Body(), subjectRequired...); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	var req subjectDTO.CreateSubjectRequest
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
	_ = h.DB.WithContext(c.UserContext()).Preload("Class").
		First(&s, "subject_id = ?", s.SubjectID).Error
	resp, err := h.populate(c, s)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}
	return helper.JsonCreated(c, resp)
}

// PUT /api/subjects/:id
func (h *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var s subjectModel.SubjectModel
	if err := h.DB.WithContext(c.UserContext()).First(&s, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Apply(&s)

	if err := h.DB.WithContext(c.UserContext()).Save(&s).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	_ = h.DB.WithContext(c.UserContext()).Preload("Class").
		First(&s, "subject_id = ?", s.SubjectID).Error
	resp, err := h.populate(c, s)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}
	return helper.JsonSuccess(c, resp)
}

// DELETE /api/subjects/:id
func (h *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&subjectModel.SubjectModel{}, "subject_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}
	return helper.JsonDeleted(c, "Subject deleted")
}
