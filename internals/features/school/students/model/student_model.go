package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	classModel "sekolahku_backend/internals/features/school/classes/model"
)

// StudentModel is the full admission record. Guardian, medical, transport
// and document details are nested JSON documents rather than separate
// tables; nothing queries inside them.
type StudentModel struct {
	StudentID              uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentAdmissionNumber string    `gorm:"column:student_admission_number;type:varchar(40);not null;uniqueIndex" json:"student_admission_number"`

	StudentFirstName  string     `gorm:"column:student_first_name;type:varchar(80);not null" json:"student_first_name"`
	StudentMiddleName string     `gorm:"column:student_middle_name;type:varchar(80);not null;default:''" json:"student_middle_name"`
	StudentLastName   string     `gorm:"column:student_last_name;type:varchar(80);not null;default:''" json:"student_last_name"`
	StudentGender     string     `gorm:"column:student_gender;type:varchar(10);not null;default:male" json:"student_gender"`
	StudentDateOfBirth *time.Time `gorm:"column:student_date_of_birth" json:"student_date_of_birth,omitempty"`
	StudentAge        int        `gorm:"column:student_age;not null;default:0" json:"student_age"`
	StudentBloodGroup string     `gorm:"column:student_blood_group;type:varchar(10);not null;default:''" json:"student_blood_group"`
	StudentNationality string    `gorm:"column:student_nationality;type:varchar(60);not null;default:''" json:"student_nationality"`
	StudentReligion   string     `gorm:"column:student_religion;type:varchar(60);not null;default:''" json:"student_religion"`
	StudentPhoto      string     `gorm:"column:student_photo;type:text;not null;default:''" json:"student_photo"`

	StudentAcademicYear  string     `gorm:"column:student_academic_year;type:varchar(20);not null;default:'2025-26'" json:"student_academic_year"`
	StudentAdmissionDate *time.Time `gorm:"column:student_admission_date;default:now()" json:"student_admission_date,omitempty"`
	StudentClassID       uuid.UUID  `gorm:"column:student_class_id;type:uuid;not null;index" json:"student_class_id"`
	StudentSection       string     `gorm:"column:student_section;type:varchar(20);not null;default:''" json:"student_section"`
	StudentRollNumber    string     `gorm:"column:student_roll_number;type:varchar(40);not null;uniqueIndex" json:"student_roll_number"`

	StudentPreviousSchool            string `gorm:"column:student_previous_school;type:varchar(160);not null;default:''" json:"student_previous_school"`
	StudentPreviousClass             string `gorm:"column:student_previous_class;type:varchar(60);not null;default:''" json:"student_previous_class"`
	StudentTransferCertificateNumber string `gorm:"column:student_transfer_certificate_number;type:varchar(60);not null;default:''" json:"student_transfer_certificate_number"`
	StudentMediumOfInstruction       string `gorm:"column:student_medium_of_instruction;type:varchar(20);not null;default:english" json:"student_medium_of_instruction"`

	StudentMobileNumber          string `gorm:"column:student_mobile_number;type:varchar(30);not null;default:''" json:"student_mobile_number"`
	StudentParentMobileNumber    string `gorm:"column:student_parent_mobile_number;type:varchar(30);not null;default:''" json:"student_parent_mobile_number"`
	StudentAlternateMobileNumber string `gorm:"column:student_alternate_mobile_number;type:varchar(30);not null;default:''" json:"student_alternate_mobile_number"`
	StudentEmail                 string `gorm:"column:student_email;type:varchar(160);not null;uniqueIndex" json:"student_email"`
	StudentResidentialAddress    string `gorm:"column:student_residential_address;type:text;not null;default:''" json:"student_residential_address"`
	StudentCity                  string `gorm:"column:student_city;type:varchar(80);not null;default:''" json:"student_city"`
	StudentState                 string `gorm:"column:student_state;type:varchar(80);not null;default:''" json:"student_state"`
	StudentPinCode               string `gorm:"column:student_pin_code;type:varchar(20);not null;default:''" json:"student_pin_code"`
	StudentCountry               string `gorm:"column:student_country;type:varchar(80);not null;default:''" json:"student_country"`

	StudentGuardians     datatypes.JSON `gorm:"column:student_guardians;type:jsonb" json:"student_guardians,omitempty"`
	StudentFatherName    string         `gorm:"column:student_father_name;type:varchar(120);not null;default:''" json:"student_father_name"`
	StudentFatherContact string         `gorm:"column:student_father_contact;type:varchar(30);not null;default:''" json:"student_father_contact"`
	StudentMotherName    string         `gorm:"column:student_mother_name;type:varchar(120);not null;default:''" json:"student_mother_name"`

	StudentMedicalInfo   datatypes.JSON `gorm:"column:student_medical_info;type:jsonb" json:"student_medical_info,omitempty"`
	StudentTransportInfo datatypes.JSON `gorm:"column:student_transport_info;type:jsonb" json:"student_transport_info,omitempty"`
	StudentDocuments     datatypes.JSON `gorm:"column:student_documents;type:jsonb" json:"student_documents,omitempty"`

	StudentFeeCategory           string  `gorm:"column:student_fee_category;type:varchar(20);not null;default:regular" json:"student_fee_category"`
	StudentFeeStructure          string  `gorm:"column:student_fee_structure;type:varchar(120);not null;default:''" json:"student_fee_structure"`
	StudentDiscountPercentage    float64 `gorm:"column:student_discount_percentage;not null;default:0" json:"student_discount_percentage"`
	StudentScholarshipPercentage float64 `gorm:"column:student_scholarship_percentage;not null;default:0" json:"student_scholarship_percentage"`
	StudentPaymentModePreference string  `gorm:"column:student_payment_mode_preference;type:varchar(40);not null;default:''" json:"student_payment_mode_preference"`

	StudentStatus        string  `gorm:"column:student_status;type:varchar(10);not null;default:active" json:"student_status"`
	StudentLoginUsername string  `gorm:"column:student_login_username;type:varchar(80);not null;default:''" json:"student_login_username"`
	StudentPassword      string  `gorm:"column:student_password;type:text;not null" json:"-"`
	StudentRemarks       string  `gorm:"column:student_remarks;type:text;not null;default:''" json:"student_remarks"`
	StudentAttendance    float64 `gorm:"column:student_attendance;not null;default:0" json:"student_attendance"`
	StudentAverageScore  float64 `gorm:"column:student_average_score;not null;default:0" json:"student_average_score"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`

	Class *classModel.ClassModel `gorm:"foreignKey:StudentClassID;references:ClassID" json:"-"`
}

func (StudentModel) TableName() string { return "students" }
