package services

import (
	"errors"
	"strings"

	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/models"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/roster"

	"gorm.io/gorm"
)

var (
	ErrUnknownIdentity = errors.New("email not found")
	ErrWrongSecret     = errors.New("wrong password")
)

// StudentService verifies student logins against the roster and lazily
// creates the durable Student record on first success.
type StudentService struct {
	db     *gorm.DB
	roster *roster.Store
}

func NewStudentService(db *gorm.DB, rosterStore *roster.Store) *StudentService {
	return &StudentService{db: db, roster: rosterStore}
}

// Authenticate checks the presented secret against the roster entry for
// the given email. The roster, not the students table, decides who may log
// in; an existing Student row without a roster entry cannot authenticate.
func (s *StudentService) Authenticate(email, secret string) (*models.Student, error) {
	entry, ok := s.roster.Lookup(email)
	if !ok {
		return nil, ErrUnknownIdentity
	}

	if entry.Secret != strings.TrimSpace(secret) {
		return nil, ErrWrongSecret
	}

	var student models.Student
	err := s.db.Where("email = ?", entry.Email).First(&student).Error
	if err == nil {
		return &student, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	student = models.Student{
		Email: entry.Email,
		Name:  entry.Name,
		Phone: entry.Secret,
	}
	if err := s.db.Create(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}
