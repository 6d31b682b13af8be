package services

import (
	"strings"

	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionInput struct {
	Text            string
	OptA            string
	OptB            string
	OptC            string
	OptD            string
	Correct         string
	PerQuestionTime int
}

// Add appends a question with the next display position. The admin UI is
// trusted: fields are stored as given, with only the correct label
// uppercased and the time defaulted to 60 seconds.
func (s *QuestionService) Add(input QuestionInput) (*models.Question, error) {
	var count int64
	if err := s.db.Model(&models.Question{}).Count(&count).Error; err != nil {
		return nil, err
	}

	perTime := input.PerQuestionTime
	if perTime == 0 {
		perTime = 60
	}

	q := models.Question{
		Text:            input.Text,
		OptA:            input.OptA,
		OptB:            input.OptB,
		OptC:            input.OptC,
		OptD:            input.OptD,
		Correct:         strings.ToUpper(input.Correct),
		OrderIndex:      int(count) + 1,
		PerQuestionTime: perTime,
	}
	if err := s.db.Create(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *QuestionService) List() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("order_index ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
