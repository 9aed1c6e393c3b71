package dto

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =========================================================
   Nested documents
   ========================================================= */

type Guardian struct {
	Type              string  `json:"type" validate:"required,oneof=father mother guardian"`
	Name              string  `json:"name" validate:"required"`
	Relation          string  `json:"relation"`
	Contact           string  `json:"contact" validate:"required"`
	Email             string  `json:"email"`
	Occupation        string  `json:"occupation"`
	AnnualIncome      float64 `json:"annualIncome"`
	EnableParentLogin bool    `json:"enableParentLogin"`
}

type MedicalInfo struct {
	HasConditions          bool   `json:"hasConditions"`
	Details                string `json:"details"`
	EmergencyContactName   string `json:"emergencyContactName"`
	EmergencyContactNumber string `json:"emergencyContactNumber"`
	DoctorName             string `json:"doctorName"`
	Hospital               string `json:"hospital"`
}

type TransportInfo struct {
	Required      bool   `json:"required"`
	Route         string `json:"route"`
	BusNumber     string `json:"busNumber"`
	PickupPoint   string `json:"pickupPoint"`
	DropPoint     string `json:"dropPoint"`
	DriverContact string `json:"driverContact"`
}

type Documents struct {
	BirthCertificate string `json:"birthCertificate"`
	AadharCard       string `json:"aadharCard"`
	PreviousSchoolTC string `json:"previousSchoolTC"`
	ParentIDProof    string `json:"parentIdProof"`
	CasteCertificate string `json:"casteCertificate"`
}

/* =========================================================
   CREATE
   ========================================================= */

type CreateStudentRequest struct {
	AdmissionNumber string     `json:"admissionNumber" validate:"required,max=40"`
	FirstName       string     `json:"firstName" validate:"required,max=80"`
	MiddleName      string     `json:"middleName"`
	LastName        string     `json:"lastName"`
	Gender          string     `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth     *time.Time `json:"dateOfBirth"`
	Age             int        `json:"age" validate:"gte=0"`
	BloodGroup      string     `json:"bloodGroup"`
	Nationality     string     `json:"nationality"`
	Religion        string     `json:"religion"`
	StudentPhoto    string     `json:"studentPhoto"`

	AcademicYear  string     `json:"academicYear"`
	AdmissionDate *time.Time `json:"admissionDate"`
	ClassID       uuid.UUID  `json:"classId" validate:"required"`
	Section       string     `json:"section"`
	RollNumber    string     `json:"rollNumber" validate:"required,max=40"`

	PreviousSchool            string `json:"previousSchool"`
	PreviousClass             string `json:"previousClass"`
	TransferCertificateNumber string `json:"transferCertificateNumber"`
	MediumOfInstruction       string `json:"mediumOfInstruction" validate:"omitempty,oneof=english hindi other"`

	StudentMobileNumber   string `json:"studentMobileNumber"`
	ParentMobileNumber    string `json:"parentMobileNumber"`
	AlternateMobileNumber string `json:"alternateMobileNumber"`
	Email                 string `json:"email" validate:"required,email,max=160"`
	ResidentialAddress    string `json:"residentialAddress"`
	City                  string `json:"city"`
	State                 string `json:"state"`
	PinCode               string `json:"pinCode"`
	Country               string `json:"country"`

	Guardians     []Guardian     `json:"guardians" validate:"omitempty,dive"`
	FatherName    string         `json:"fatherName"`
	FatherContact string         `json:"fatherContact"`
	MotherName    string         `json:"motherName"`
	MedicalInfo   *MedicalInfo   `json:"medicalInfo"`
	TransportInfo *TransportInfo `json:"transportInfo"`
	Documents     *Documents     `json:"documents"`

	FeeCategory           string  `json:"feeCategory" validate:"omitempty,oneof=regular rte scholarship"`
	FeeStructure          string  `json:"feeStructure"`
	DiscountPercentage    float64 `json:"discountPercentage" validate:"gte=0,lte=100"`
	ScholarshipPercentage float64 `json:"scholarshipPercentage" validate:"gte=0,lte=100"`
	PaymentModePreference string  `json:"paymentModePreference"`

	Status        string `json:"status" validate:"omitempty,oneof=active inactive"`
	LoginUsername string `json:"loginUsername"`
	Password      string `json:"password" validate:"required,min=1"`
	Remarks       string `json:"remarks"`
}

func (r *CreateStudentRequest) Normalize() {
	r.AdmissionNumber = strings.TrimSpace(r.AdmissionNumber)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.RollNumber = strings.TrimSpace(r.RollNumber)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Gender == "" {
		r.Gender = "male"
	}
	if r.AcademicYear == "" {
		r.AcademicYear = "2025-26"
	}
	if r.MediumOfInstruction == "" {
		r.MediumOfInstruction = "english"
	}
	if r.FeeCategory == "" {
		r.FeeCategory = "regular"
	}
	if r.Status == "" {
		r.Status = "active"
	}
}

func (r CreateStudentRequest) ToModel(hashedPassword string) m.StudentModel {
	admissionDate := r.AdmissionDate
	if admissionDate == nil {
		now := time.Now()
		admissionDate = &now
	}
	return m.StudentModel{
		StudentAdmissionNumber: r.AdmissionNumber,
		StudentFirstName:       r.FirstName,
		StudentMiddleName:      r.MiddleName,
		StudentLastName:        r.LastName,
		StudentGender:          r.Gender,
		StudentDateOfBirth:     r.DateOfBirth,
		StudentAge:             r.Age,
		StudentBloodGroup:      r.BloodGroup,
		StudentNationality:     r.Nationality,
		StudentReligion:        r.Religion,
		StudentPhoto:           r.StudentPhoto,

		StudentAcademicYear:  r.AcademicYear,
		StudentAdmissionDate: admissionDate,
		StudentClassID:       r.ClassID,
		StudentSection:       r.Section,
		StudentRollNumber:    r.RollNumber,

		StudentPreviousSchool:            r.PreviousSchool,
		StudentPreviousClass:             r.PreviousClass,
		StudentTransferCertificateNumber: r.TransferCertificateNumber,
		StudentMediumOfInstruction:       r.MediumOfInstruction,

		StudentMobileNumber:          r.StudentMobileNumber,
		StudentParentMobileNumber:    r.ParentMobileNumber,
		StudentAlternateMobileNumber: r.AlternateMobileNumber,
		StudentEmail:                 r.Email,
		StudentResidentialAddress:    r.ResidentialAddress,
		StudentCity:                  r.City,
		StudentState:                 r.State,
		StudentPinCode:               r.PinCode,
		StudentCountry:               r.Country,

		StudentGuardians:     toJSON(r.Guardians),
		StudentFatherName:    r.FatherName,
		StudentFatherContact: r.FatherContact,
		StudentMotherName:    r.MotherName,
		StudentMedicalInfo:   toJSON(r.MedicalInfo),
		StudentTransportInfo: toJSON(r.TransportInfo),
		StudentDocuments:     toJSON(r.Documents),

		StudentFeeCategory:           r.FeeCategory,
		StudentFeeStructure:          r.FeeStructure,
		StudentDiscountPercentage:    r.DiscountPercentage,
		StudentScholarshipPercentage: r.ScholarshipPercentage,
		StudentPaymentModePreference: r.PaymentModePreference,

		StudentStatus:        r.Status,
		StudentLoginUsername: r.LoginUsername,
		StudentPassword:      hashedPassword,
		StudentRemarks:       r.Remarks,
	}
}

func toJSON(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := sonic.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

/* =========================================================
   UPDATE (partial, named fields only)
   ========================================================= */

type UpdateStudentRequest struct {
	AdmissionNumber helper.PatchField[string]    `json:"admissionNumber"`
	FirstName       helper.PatchField[string]    `json:"firstName"`
	MiddleName      helper.PatchField[string]    `json:"middleName"`
	LastName        helper.PatchField[string]    `json:"lastName"`
	Gender          helper.PatchField[string]    `json:"gender"`
	DateOfBirth     helper.PatchField[time.Time] `json:"dateOfBirth"`
	Age             helper.PatchField[int]       `json:"age"`
	BloodGroup      helper.PatchField[string]    `json:"bloodGroup"`
	Nationality     helper.PatchField[string]    `json:"nationality"`
	Religion        helper.PatchField[string]    `json:"religion"`
	StudentPhoto    helper.PatchField[string]    `json:"studentPhoto"`

	AcademicYear  helper.PatchField[string]    `json:"academicYear"`
	AdmissionDate helper.PatchField[time.Time] `json:"admissionDate"`
	ClassID       helper.PatchField[uuid.UUID] `json:"classId"`
	Section       helper.PatchField[string]    `json:"section"`
	RollNumber    helper.PatchField[string]    `json:"rollNumber"`

	PreviousSchool            helper.PatchField[string] `json:"previousSchool"`
	PreviousClass             helper.PatchField[string] `json:"previousClass"`
	TransferCertificateNumber helper.PatchField[string] `json:"transferCertificateNumber"`
	MediumOfInstruction       helper.PatchField[string] `json:"mediumOfInstruction"`

	StudentMobileNumber   helper.PatchField[string] `json:"studentMobileNumber"`
	ParentMobileNumber    helper.PatchField[string] `json:"parentMobileNumber"`
	AlternateMobileNumber helper.PatchField[string] `json:"alternateMobileNumber"`
	Email                 helper.PatchField[string] `json:"email"`
	ResidentialAddress    helper.PatchField[string] `json:"residentialAddress"`
	City                  helper.PatchField[string] `json:"city"`
	State                 helper.PatchField[string] `json:"state"`
	PinCode               helper.PatchField[string] `json:"pinCode"`
	Country               helper.PatchField[string] `json:"country"`

	Guardians     helper.PatchField[[]Guardian]    `json:"guardians"`
	FatherName    helper.PatchField[string]        `json:"fatherName"`
	FatherContact helper.PatchField[string]        `json:"fatherContact"`
	MotherName    helper.PatchField[string]        `json:"motherName"`
	MedicalInfo   helper.PatchField[MedicalInfo]   `json:"medicalInfo"`
	TransportInfo helper.PatchField[TransportInfo] `json:"transportInfo"`
	Documents     helper.PatchField[Documents]     `json:"documents"`

	FeeCategory           helper.PatchField[string]  `json:"feeCategory"`
	FeeStructure          helper.PatchField[string]  `json:"feeStructure"`
	DiscountPercentage    helper.PatchField[float64] `json:"discountPercentage"`
	ScholarshipPercentage helper.PatchField[float64] `json:"scholarshipPercentage"`
	PaymentModePreference helper.PatchField[string]  `json:"paymentModePreference"`

	Status        helper.PatchField[string]  `json:"status"`
	LoginUsername helper.PatchField[string]  `json:"loginUsername"`
	Password      helper.PatchField[string]  `json:"password"`
	Remarks       helper.PatchField[string]  `json:"remarks"`
	Attendance    helper.PatchField[float64] `json:"attendance"`
	AverageScore  helper.PatchField[float64] `json:"averageScore"`
}

func (r UpdateStudentRequest) Apply(s *m.StudentModel) {
	r.AdmissionNumber.Apply(&s.StudentAdmissionNumber)
	r.FirstName.Apply(&s.StudentFirstName)
	r.MiddleName.Apply(&s.StudentMiddleName)
	r.LastName.Apply(&s.StudentLastName)
	r.Gender.Apply(&s.StudentGender)
	if v, ok := r.DateOfBirth.Get(); ok {
		s.StudentDateOfBirth = v
	}
	r.Age.Apply(&s.StudentAge)
	r.BloodGroup.Apply(&s.StudentBloodGroup)
	r.Nationality.Apply(&s.StudentNationality)
	r.Religion.Apply(&s.StudentReligion)
	r.StudentPhoto.Apply(&s.StudentPhoto)

	r.AcademicYear.Apply(&s.StudentAcademicYear)
	if v, ok := r.AdmissionDate.Get(); ok {
		s.StudentAdmissionDate = v
	}
	r.ClassID.Apply(&s.StudentClassID)
	r.Section.Apply(&s.StudentSection)
	r.RollNumber.Apply(&s.StudentRollNumber)

	r.PreviousSchool.Apply(&s.StudentPreviousSchool)
	r.PreviousClass.Apply(&s.StudentPreviousClass)
	r.TransferCertificateNumber.Apply(&s.StudentTransferCertificateNumber)
	r.MediumOfInstruction.Apply(&s.StudentMediumOfInstruction)

	r.StudentMobileNumber.Apply(&s.StudentMobileNumber)
	r.ParentMobileNumber.Apply(&s.StudentParentMobileNumber)
	r.AlternateMobileNumber.Apply(&s.StudentAlternateMobileNumber)
	if v, ok := r.Email.Get(); ok && v != nil {
		s.StudentEmail = strings.ToLower(strings.TrimSpace(*v))
	}
	r.ResidentialAddress.Apply(&s.StudentResidentialAddress)
	r.City.Apply(&s.StudentCity)
	r.State.Apply(&s.StudentState)
	r.PinCode.Apply(&s.StudentPinCode)
	r.Country.Apply(&s.StudentCountry)

	if v, ok := r.Guardians.Get(); ok {
		s.StudentGuardians = toJSONPtr(v)
	}
	r.FatherName.Apply(&s.StudentFatherName)
	r.FatherContact.Apply(&s.StudentFatherContact)
	r.MotherName.Apply(&s.StudentMotherName)
	if v, ok := r.MedicalInfo.Get(); ok {
		s.StudentMedicalInfo = toJSONPtr(v)
	}
	if v, ok := r.TransportInfo.Get(); ok {
		s.StudentTransportInfo = toJSONPtr(v)
	}
	if v, ok := r.Documents.Get(); ok {
		s.StudentDocuments = toJSONPtr(v)
	}

	r.FeeCategory.Apply(&s.StudentFeeCategory)
	r.FeeStructure.Apply(&s.StudentFeeStructure)
	r.DiscountPercentage.Apply(&s.StudentDiscountPercentage)
	r.ScholarshipPercentage.Apply(&s.StudentScholarshipPercentage)
	r.PaymentModePreference.Apply(&s.StudentPaymentModePreference)

	r.Status.Apply(&s.StudentStatus)
	r.LoginUsername.Apply(&s.StudentLoginUsername)
	r.Remarks.Apply(&s.StudentRemarks)
	r.Attendance.Apply(&s.StudentAttendance)
	r.AverageScore.Apply(&s.StudentAverageScore)
}

func toJSONPtr[T any](v *T) datatypes.JSON {
	if v == nil {
		return nil
	}
	return toJSON(*v)
}

/* =========================================================
   RESPONSE
   ========================================================= */

type ClassRef struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	Status   string    `json:"status"`
}

type StudentResponse struct {
	ID              uuid.UUID  `json:"id"`
	AdmissionNumber string     `json:"admissionNumber"`
	FirstName       string     `json:"firstName"`
	MiddleName      string     `json:"middleName"`
	LastName        string     `json:"lastName"`
	Gender          string     `json:"gender"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty"`
	Age             int        `json:"age"`
	BloodGroup      string     `json:"bloodGroup"`
	Nationality     string     `json:"nationality"`
	Religion        string     `json:"religion"`
	StudentPhoto    string     `json:"studentPhoto"`

	AcademicYear  string     `json:"academicYear"`
	AdmissionDate *time.Time `json:"admissionDate,omitempty"`
	ClassID       uuid.UUID  `json:"classId"`
	Class         *ClassRef  `json:"class,omitempty"`
	Section       string     `json:"section"`
	RollNumber    string     `json:"rollNumber"`

	PreviousSchool            string `json:"previousSchool"`
	PreviousClass             string `json:"previousClass"`
	TransferCertificateNumber string `json:"transferCertificateNumber"`
	MediumOfInstruction       string `json:"mediumOfInstruction"`

	StudentMobileNumber   string `json:"studentMobileNumber"`
	ParentMobileNumber    string `json:"parentMobileNumber"`
	AlternateMobileNumber string `json:"alternateMobileNumber"`
	Email                 string `json:"email"`
	ResidentialAddress    string `json:"residentialAddress"`
	City                  string `json:"city"`
	State                 string `json:"state"`
	PinCode               string `json:"pinCode"`
	Country               string `json:"country"`

	Guardians     []Guardian     `json:"guardians,omitempty"`
	FatherName    string         `json:"fatherName"`
	FatherContact string         `json:"fatherContact"`
	MotherName    string         `json:"motherName"`
	MedicalInfo   *MedicalInfo   `json:"medicalInfo,omitempty"`
	TransportInfo *TransportInfo `json:"transportInfo,omitempty"`
	Documents     *Documents     `json:"documents,omitempty"`

	FeeCategory           string  `json:"feeCategory"`
	FeeStructure          string  `json:"feeStructure"`
	DiscountPercentage    float64 `json:"discountPercentage"`
	ScholarshipPercentage float64 `json:"scholarshipPercentage"`
	PaymentModePreference string  `json:"paymentModePreference"`

	Status        string    `json:"status"`
	LoginUsername string    `json:"loginUsername"`
	Remarks       string    `json:"remarks"`
	Attendance    float64   `json:"attendance"`
	AverageScore  float64   `json:"averageScore"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromModel(s m.StudentModel) StudentResponse {
	resp := StudentResponse{
		ID:              s.StudentID,
		AdmissionNumber: s.StudentAdmissionNumber,
		FirstName:       s.StudentFirstName,
		MiddleName:      s.StudentMiddleName,
		LastName:        s.StudentLastName,
		Gender:          s.StudentGender,
		DateOfBirth:     s.StudentDateOfBirth,
		Age:             s.StudentAge,
		BloodGroup:      s.StudentBloodGroup,
		Nationality:     s.StudentNationality,
		Religion:        s.StudentReligion,
		StudentPhoto:    s.StudentPhoto,

		AcademicYear:  s.StudentAcademicYear,
		AdmissionDate: s.StudentAdmissionDate,
		ClassID:       s.StudentClassID,
		Section:       s.StudentSection,
		RollNumber:    s.StudentRollNumber,

		PreviousSchool:            s.StudentPreviousSchool,
		PreviousClass:             s.StudentPreviousClass,
		TransferCertificateNumber: s.StudentTransferCertificateNumber,
		MediumOfInstruction:       s.StudentMediumOfInstruction,

		StudentMobileNumber:   s.StudentMobileNumber,
		ParentMobileNumber:    s.StudentParentMobileNumber,
		AlternateMobileNumber: s.StudentAlternateMobileNumber,
		Email:                 s.StudentEmail,
		ResidentialAddress:    s.StudentResidentialAddress,
		City:                  s.StudentCity,
		State:                 s.StudentState,
		PinCode:               s.StudentPinCode,
		Country:               s.StudentCountry,

		FatherName:    s.StudentFatherName,
		FatherContact: s.StudentFatherContact,
		MotherName:    s.StudentMotherName,

		FeeCategory:           s.StudentFeeCategory,
		FeeStructure:          s.StudentFeeStructure,
		DiscountPercentage:    s.StudentDiscountPercentage,
		ScholarshipPercentage: s.StudentScholarshipPercentage,
		PaymentModePreference: s.StudentPaymentModePreference,

		Status:        s.StudentStatus,
		LoginUsername: s.StudentLoginUsername,
		Remarks:       s.StudentRemarks,
		Attendance:    s.StudentAttendance,
		AverageScore:  s.StudentAverageScore,
		CreatedAt:     s.StudentCreatedAt,
		UpdatedAt:     s.StudentUpdatedAt,
	}
	if len(s.StudentGuardians) > 0 {
		_ = sonic.Unmarshal(s.StudentGuardians, &resp.Guardians)
	}
	if len(s.StudentMedicalInfo) > 0 {
		resp.MedicalInfo = &MedicalInfo{}
		_ = sonic.Unmarshal(s.StudentMedicalInfo, resp.MedicalInfo)
	}
	if len(s.StudentTransportInfo) > 0 {
		resp.TransportInfo = &TransportInfo{}
		_ = sonic.Unmarshal(s.StudentTransportInfo, resp.TransportInfo)
	}
	if len(s.StudentDocuments) > 0 {
		resp.Documents = &Documents{}
		_ = sonic.Unmarshal(s.StudentDocuments, resp.Documents)
	}
	if s.Class != nil {
		resp.Class = &ClassRef{
			ID:       s.Class.ClassID,
			Name:     s.Class.ClassName,
			Capacity: s.Class.ClassCapacity,
			Status:   s.Class.ClassStatus,
		}
	}
	return resp
}

// FullName joins the name parts, skipping blanks.
func FullName(s m.StudentModel) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{s.StudentFirstName, s.StudentMiddleName, s.StudentLastName} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, " ")
}
