package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	classModel "sekolahku_backend/internals/features/school/classes/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	m "sekolahku_backend/internals/features/school/teachers/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateTeacherRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=120"`
	Email    string `json:"email" validate:"required,email,max=160"`
	Password string `json:"password" validate:"required,min=1"`

	EmployeeID    *string    `json:"employeeId" validate:"omitempty,max=40"`
	PhoneNumber   string     `json:"phoneNumber"`
	Qualification string     `json:"qualification"`
	Experience    int        `json:"experience" validate:"gte=0"`
	JoiningDate   *time.Time `json:"joiningDate"`
	DateOfBirth   *time.Time `json:"dateOfBirth"`

	Subjects []string `json:"subjects" validate:"omitempty,dive,uuid"`
	Classes  []string `json:"classes" validate:"omitempty,dive,uuid"`

	IsClassTeacher   bool   `json:"isClassTeacher"`
	Department       string `json:"department"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
	AlternatePhone   string `json:"alternatePhone"`
	Status           string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.EmployeeID != nil {
		v := strings.TrimSpace(*r.EmployeeID)
		if v == "" {
			r.EmployeeID = nil
		} else {
			r.EmployeeID = &v
		}
	}
	r.Subjects = helper.DedupeStrings(r.Subjects)
	r.Classes = helper.DedupeStrings(r.Classes)
	if r.Status == "" {
		r.Status = "active"
	}
}

// ToModel builds the persistence row; hashedPassword must already be
// bcrypt-processed by the controller.
func (r CreateTeacherRequest) ToModel(hashedPassword string) m.TeacherModel {
	return m.TeacherModel{
		TeacherName:             r.Name,
		TeacherEmail:            r.Email,
		TeacherPassword:         hashedPassword,
		TeacherEmployeeID:       r.EmployeeID,
		TeacherPhoneNumber:      r.PhoneNumber,
		TeacherQualification:    r.Qualification,
		TeacherExperience:       r.Experience,
		TeacherJoiningDate:      r.JoiningDate,
		TeacherDateOfBirth:      r.DateOfBirth,
		TeacherSubjects:         pq.StringArray(r.Subjects),
		TeacherClasses:          pq.StringArray(r.Classes),
		TeacherIsClassTeacher:   r.IsClassTeacher,
		TeacherDepartment:       r.Department,
		TeacherAddress:          r.Address,
		TeacherEmergencyContact: r.EmergencyContact,
		TeacherAlternatePhone:   r.AlternatePhone,
		TeacherStatus:           r.Status,
	}
}

/* =========================================================
   UPDATE (partial, named fields only)
   ========================================================= */

type UpdateTeacherRequest struct {
	Name     helper.PatchField[string] `json:"name"`
	Email    helper.PatchField[string] `json:"email"`
	Password helper.PatchField[string] `json:"password"`

	EmployeeID    helper.PatchField[string]    `json:"employeeId"`
	PhoneNumber   helper.PatchField[string]    `json:"phoneNumber"`
	Qualification helper.PatchField[string]    `json:"qualification"`
	Experience    helper.PatchField[int]       `json:"experience"`
	JoiningDate   helper.PatchField[time.Time] `json:"joiningDate"`
	DateOfBirth   helper.PatchField[time.Time] `json:"dateOfBirth"`

	Subjects helper.PatchField[[]string] `json:"subjects"`
	Classes  helper.PatchField[[]string] `json:"classes"`

	IsClassTeacher   helper.PatchField[bool]   `json:"isClassTeacher"`
	Department       helper.PatchField[string] `json:"department"`
	Address          helper.PatchField[string] `json:"address"`
	EmergencyContact helper.PatchField[string] `json:"emergencyContact"`
	AlternatePhone   helper.PatchField[string] `json:"alternatePhone"`
	Status           helper.PatchField[string] `json:"status"`
}

// Apply merges the supplied fields into the row. Password patches are
// passed back for hashing rather than applied here.
func (r UpdateTeacherRequest) Apply(t *m.TeacherModel) {
	r.Name.Apply(&t.TeacherName)
	if v, ok := r.Email.Get(); ok && v != nil {
		t.TeacherEmail = strings.ToLower(strings.TrimSpace(*v))
	}
	if v, ok := r.EmployeeID.Get(); ok {
		t.TeacherEmployeeID = v
	}
	r.PhoneNumber.Apply(&t.TeacherPhoneNumber)
	r.Qualification.Apply(&t.TeacherQualification)
	r.Experience.Apply(&t.TeacherExperience)
	if v, ok := r.JoiningDate.Get(); ok {
		t.TeacherJoiningDate = v
	}
	if v, ok := r.DateOfBirth.Get(); ok {
		t.TeacherDateOfBirth = v
	}
	if v, ok := r.Subjects.Get(); ok && v != nil {
		t.TeacherSubjects = pq.StringArray(helper.DedupeStrings(*v))
	}
	if v, ok := r.Classes.Get(); ok && v != nil {
		t.TeacherClasses = pq.StringArray(helper.DedupeStrings(*v))
	}
	r.IsClassTeacher.Apply(&t.TeacherIsClassTeacher)
	r.Department.Apply(&t.TeacherDepartment)
	r.Address.Apply(&t.TeacherAddress)
	r.EmergencyContact.Apply(&t.TeacherEmergencyContact)
	r.AlternatePhone.Apply(&t.TeacherAlternatePhone)
	r.Status.Apply(&t.TeacherStatus)
}

/* =========================================================
   ASSIGN
   ========================================================= */

type AssignSubjectRequest struct {
	SubjectID uuid.UUID `json:"subjectId" validate:"required"`
}

type AssignClassRequest struct {
	ClassID uuid.UUID `json:"classId" validate:"required"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type SubjectRef struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Code   string    `json:"code"`
	Status string    `json:"status"`
}

type ClassRef struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	Status   string    `json:"status"`
}

type TeacherResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	EmployeeID    *string    `json:"employeeId,omitempty"`
	PhoneNumber   string     `json:"phoneNumber"`
	Qualification string     `json:"qualification"`
	Experience    int        `json:"experience"`
	JoiningDate   *time.Time `json:"joiningDate,omitempty"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`

	Subjects []SubjectRef `json:"subjects"`
	Classes  []ClassRef   `json:"classes"`

	IsClassTeacher   bool      `json:"isClassTeacher"`
	Department       string    `json:"department"`
	Address          string    `json:"address"`
	EmergencyContact string    `json:"emergencyContact"`
	AlternatePhone   string    `json:"alternatePhone"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// FromModel composes the API view: the uuid[] membership columns are
// expanded into the referenced subject/class summaries.
func FromModel(t m.TeacherModel, subjects []subjectModel.SubjectModel, classes []classModel.ClassModel) TeacherResponse {
	subjectRefs := make([]SubjectRef, 0, len(subjects))
	for _, s := range subjects {
		subjectRefs = append(subjectRefs, SubjectRef{
			ID:     s.SubjectID,
			Name:   s.SubjectName,
			Code:   s.SubjectCode,
			Status: s.SubjectStatus,
		})
	}
	classRefs := make([]ClassRef, 0, len(classes))
	for _, cl := range classes {
		classRefs = append(classRefs, ClassRef{
			ID:       cl.ClassID,
			Name:     cl.ClassName,
			Capacity: cl.ClassCapacity,
			Status:   cl.ClassStatus,
		})
	}
	return TeacherResponse{
		ID:               t.TeacherID,
		Name:             t.TeacherName,
		Email:            t.TeacherEmail,
		EmployeeID:       t.TeacherEmployeeID,
		PhoneNumber:      t.TeacherPhoneNumber,
		Qualification:    t.TeacherQualification,
		Experience:       t.TeacherExperience,
		JoiningDate:      t.TeacherJoiningDate,
		DateOfBirth:      t.TeacherDateOfBirth,
		Subjects:         subjectRefs,
		Classes:          classRefs,
		IsClassTeacher:   t.TeacherIsClassTeacher,
		Department:       t.TeacherDepartment,
		Address:          t.TeacherAddress,
		EmergencyContact: t.TeacherEmergencyContact,
		AlternatePhone:   t.TeacherAlternatePhone,
		Status:           t.TeacherStatus,
		CreatedAt:        t.TeacherCreatedAt,
		UpdatedAt:        t.TeacherUpdatedAt,
	}
}
