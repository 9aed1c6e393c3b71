package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	studentModel "sekolahku_backend/internals/features/school/students/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	"sekolahku_backend/internals/features/users/auth/dto"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so responses cannot be used to probe which accounts exist.
var ErrInvalidCredentials = errors.New("Invalid credentials")

const tokenTTL = 7 * 24 * time.Hour

type AuthService struct {
	DB     *gorm.DB
	Secret string
}

// Login checks teacher accounts first, then student accounts.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	db := s.DB.WithContext(ctx)

	var (
		id, role string
		hash     string
	)

	var t teacherModel.TeacherModel
	err := db.First(&t, "teacher_email = ?", req.Email).Error
	switch {
	case err == nil:
		id, role, hash = t.TeacherID.String(), "teacher", t.TeacherPassword
	case errors.Is(err, gorm.ErrRecordNotFound):
		var st studentModel.StudentModel
		err = db.First(&st, "student_email = ?", req.Email).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		if err != nil {
			return nil, err
		}
		id, role, hash = st.StudentID.String(), "student", st.StudentPassword
	default:
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(id, req.Email, role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.AuthUser{ID: id, Email: req.Email, Role: role},
	}, nil
}

func (s *AuthService) signToken(id, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   id,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
}
