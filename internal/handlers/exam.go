package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/services"

	"github.com/gin-gonic/gin"
)

type ExamHandler struct {
	examService    *services.ExamService
	studentService *services.StudentService
}

func NewExamHandler(examService *services.ExamService, studentService *services.StudentService) *ExamHandler {
	return &ExamHandler{examService: examService, studentService: studentService}
}

type StudentLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type StudentLoginResponse struct {
	Status    string `json:"status" example:"ok"`
	StudentID uint   `json:"student_id" example:"7"`
	Name      string `json:"name" example:"Jane"`
}

// StudentLogin godoc
// @Summary      Login as a student
// @Description  Verifies the roster secret and returns the student id
// @Tags         exam
// @Accept       json
// @Produce      json
// @Param        request body StudentLoginRequest true "Email and secret"
// @Success      200 {object} StudentLoginResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/student/login [post]
func (h *ExamHandler) StudentLogin(c *gin.Context) {
	var req StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	student, err := h.studentService.Authenticate(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownIdentity), errors.Is(err, services.ErrWrongSecret):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, StudentLoginResponse{
		Status:    "ok",
		StudentID: student.ID,
		Name:      student.Name,
	})
}

type StartRequest struct {
	StudentID uint `json:"student_id" binding:"required"`
}

type StartResponse struct {
	AttemptID uint `json:"attempt_id" example:"3"`
}

// Start godoc
// @Summary      Start the student's single attempt
// @Tags         exam
// @Accept       json
// @Produce      json
// @Param        request body StartRequest true "Student id"
// @Success      200 {object} StartResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/start [post]
func (h *ExamHandler) Start(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	attempt, err := h.examService.StartAttempt(req.StudentID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyAttempted) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "already attempted"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, StartResponse{AttemptID: attempt.ID})
}

type QuestionsResponse struct {
	Questions []services.QuestionView `json:"questions"`
	TotalTime int                     `json:"total_time"`
}

// Questions godoc
// @Summary      Fetch the question set for an attempt
// @Description  Returns the full ordered catalog and the total time budget
// @Tags         exam
// @Produce      json
// @Param        attempt_id path int true "Attempt ID"
// @Success      200 {object} QuestionsResponse
// @Router       /api/questions_for/{attempt_id} [get]
func (h *ExamHandler) Questions(c *gin.Context) {
	// The catalog carries no per-attempt state, so the attempt id is not
	// checked against the attempts table; deployed clients rely on that.
	questions, totalTime, err := h.examService.Questions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, QuestionsResponse{Questions: questions, TotalTime: totalTime})
}

type SubmitRequest struct {
	AttemptID uint              `json:"attempt_id" binding:"required"`
	Answers   map[string]string `json:"answers"`
}

type SubmitResponse struct {
	Status string `json:"status" example:"ok"`
	Score  int    `json:"score" example:"5"`
}

// Submit godoc
// @Summary      Submit answers and grade the attempt
// @Description  Single-use; a finished attempt rejects further submissions
// @Tags         exam
// @Accept       json
// @Produce      json
// @Param        request body SubmitRequest true "Attempt id and answers"
// @Success      200 {object} SubmitResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/submit [post]
func (h *ExamHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	answers := make(map[uint]string, len(req.Answers))
	for key, selected := range req.Answers {
		qid, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
			return
		}
		answers[uint(qid)] = selected
	}

	score, err := h.examService.Submit(req.AttemptID, answers)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAttempt):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid attempt"})
		case errors.Is(err, services.ErrAttemptFinished):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{Status: "ok", Score: score})
}
