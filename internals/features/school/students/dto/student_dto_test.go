package dto

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "sekolahku_backend/internals/features/school/students/model"
)

func TestCreateStudentNormalizeDefaults(t *testing.T) {
	req := CreateStudentRequest{
		AdmissionNumber: "  ADM-001 ",
		FirstName:       " Alia ",
		RollNumber:      " 12 ",
		Email:           " Alia@School.TEST ",
	}
	req.Normalize()

	assert.Equal(t, "ADM-001", req.AdmissionNumber)
	assert.Equal(t, "Alia", req.FirstName)
	assert.Equal(t, "12", req.RollNumber)
	assert.Equal(t, "alia@school.test", req.Email)
	assert.Equal(t, "male", req.Gender)
	assert.Equal(t, "2025-26", req.AcademicYear)
	assert.Equal(t, "english", req.MediumOfInstruction)
	assert.Equal(t, "regular", req.FeeCategory)
	assert.Equal(t, "active", req.Status)
}

func TestCreateStudentNormalizeKeepsExplicitValues(t *testing.T) {
	req := CreateStudentRequest{Gender: "female", Status: "inactive"}
	req.Normalize()
	assert.Equal(t, "female", req.Gender)
	assert.Equal(t, "inactive", req.Status)
}

func TestCreateStudentToModel(t *testing.T) {
	classID := uuid.New()
	req := CreateStudentRequest{
		AdmissionNumber: "ADM-001",
		FirstName:       "Alia",
		LastName:        "Putri",
		RollNumber:      "12",
		ClassID:         classID,
		Email:           "alia@school.test",
		Password:        "plain",
		Guardians: []Guardian{
			{Type: "father", Name: "Bapak Putri", Contact: "0812"},
		},
	}
	req.Normalize()

	s := req.ToModel("$2a$10$hashed")

	assert.Equal(t, "ADM-001", s.StudentAdmissionNumber)
	assert.Equal(t, classID, s.StudentClassID)
	assert.Equal(t, "$2a$10$hashed", s.StudentPassword, "stored password must be the hash")
	require.NotNil(t, s.StudentAdmissionDate)

	var guardians []Guardian
	require.NoError(t, sonic.Unmarshal(s.StudentGuardians, &guardians))
	require.Len(t, guardians, 1)
	assert.Equal(t, "Bapak Putri", guardians[0].Name)
}

func TestUpdateStudentApplyPartial(t *testing.T) {
	s := m.StudentModel{
		StudentFirstName:  "Alia",
		StudentRollNumber: "12",
		StudentCity:       "Bandung",
	}

	var req UpdateStudentRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"city":"Jakarta","rollNumber":null,"unknownKey":"ignored"}`), &req))
	req.Apply(&s)

	assert.Equal(t, "Jakarta", s.StudentCity)
	assert.Equal(t, "12", s.StudentRollNumber, "explicit null leaves the stored value")
	assert.Equal(t, "Alia", s.StudentFirstName)
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Alia Putri", FullName(m.StudentModel{StudentFirstName: "Alia", StudentLastName: "Putri"}))
	assert.Equal(t, "Alia Dewi Putri", FullName(m.StudentModel{StudentFirstName: "Alia", StudentMiddleName: "Dewi", StudentLastName: "Putri"}))
	assert.Equal(t, "Alia", FullName(m.StudentModel{StudentFirstName: "Alia "}))
}
