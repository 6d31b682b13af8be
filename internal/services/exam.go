package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAlreadyAttempted = errors.New("already attempted")
	ErrInvalidAttempt   = errors.New("invalid attempt")
	ErrAttemptFinished  = errors.New("attempt already submitted")
)

// ExamService owns the attempt lifecycle: one attempt per student,
// question delivery, answer capture and grading.
type ExamService struct {
	db *gorm.DB
}

func NewExamService(db *gorm.DB) *ExamService {
	return &ExamService{db: db}
}

// StartAttempt creates the student's single attempt. The lookup gives the
// common case a clean error; the unique index on attempts.student_id is
// what actually guarantees at most one insert when two starts race.
func (s *ExamService) StartAttempt(studentID uint) (*models.Attempt, error) {
	var existing models.Attempt
	if err := s.db.Where("student_id = ?", studentID).First(&existing).Error; err == nil {
		return nil, ErrAlreadyAttempted
	}

	attempt := models.Attempt{
		StudentID: studentID,
		StartedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&attempt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyAttempted
		}
		return nil, err
	}
	return &attempt, nil
}

type QuestionView struct {
	ID              uint              `json:"id"`
	Text            string            `json:"text"`
	Options         map[string]string `json:"options"`
	PerQuestionTime int               `json:"per_question_time"`
}

// Questions returns the full ordered catalog with options keyed A-D and
// the advertised total time budget. The correct labels stay server-side.
func (s *ExamService) Questions() ([]QuestionView, int, error) {
	var questions []models.Question
	if err := s.db.Order("order_index ASC").Find(&questions).Error; err != nil {
		return nil, 0, err
	}

	views := make([]QuestionView, 0, len(questions))
	totalTime := 0
	for _, q := range questions {
		views = append(views, QuestionView{
			ID:   q.ID,
			Text: q.Text,
			Options: map[string]string{
				"A": q.OptA,
				"B": q.OptB,
				"C": q.OptC,
				"D": q.OptD,
			},
			PerQuestionTime: q.PerQuestionTime,
		})
		totalTime += q.PerQuestionTime
	}
	return views, totalTime, nil
}

// Submit stores the answers, grades the attempt and finalizes it. Submit
// is single-use: once FinishedAt is set the attempt is immutable and a
// second call fails. An empty answers map is a valid submission scoring 0.
func (s *ExamService) Submit(attemptID uint, answers map[uint]string) (int, error) {
	var attempt models.Attempt
	if err := s.db.First(&attempt, attemptID).Error; err != nil {
		return 0, ErrInvalidAttempt
	}
	if attempt.FinishedAt != nil {
		return 0, ErrAttemptFinished
	}

	now := time.Now().UTC()
	score := 0

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for qid, selected := range answers {
			ans := models.Answer{
				AttemptID:  attemptID,
				QuestionID: qid,
				Selected:   selected,
				AnsweredAt: now,
			}
			if err := tx.Create(&ans).Error; err != nil {
				return err
			}
		}

		var questions []models.Question
		if err := tx.Find(&questions).Error; err != nil {
			return err
		}
		correctByID := make(map[uint]string, len(questions))
		for _, q := range questions {
			correctByID[q.ID] = q.Correct
		}

		// Grade from the stored rows, not the request payload.
		var stored []models.Answer
		if err := tx.Where("attempt_id = ?", attemptID).Find(&stored).Error; err != nil {
			return err
		}
		for _, a := range stored {
			correct, ok := correctByID[a.QuestionID]
			if ok && a.Selected != "" && strings.ToUpper(a.Selected) == correct {
				score++
			}
		}

		attempt.Score = &score
		attempt.FinishedAt = &now
		return tx.Save(&attempt).Error
	})
	if err != nil {
		return 0, err
	}

	return score, nil
}
