package handlers

import (
	"net/http"

	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

type AddQuestionRequest struct {
	Text            string `json:"text"`
	OptA            string `json:"opta"`
	OptB            string `json:"optb"`
	OptC            string `json:"optc"`
	OptD            string `json:"optd"`
	Correct         string `json:"correct"`
	PerQuestionTime int    `json:"per_question_time"`
}

// Add godoc
// @Summary      Append a question to the exam
// @Description  Questions are append-only and keep their authoring order
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body AddQuestionRequest true "Question data"
// @Success      200 {object} StatusResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/admin/add-question [post]
func (h *QuestionHandler) Add(c *gin.Context) {
	var req AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	_, err := h.questionService.Add(services.QuestionInput{
		Text:            req.Text,
		OptA:            req.OptA,
		OptB:            req.OptB,
		OptC:            req.OptC,
		OptD:            req.OptD,
		Correct:         req.Correct,
		PerQuestionTime: req.PerQuestionTime,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// List godoc
// @Summary      List all questions with answers
// @Tags         admin
// @Produce      json
// @Success      200 {array} Question
// @Router       /api/admin/questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, questions)
}
