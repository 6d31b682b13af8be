package handlers

import (
	"fmt"
	"net/http"

	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/services"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

type SetExamTimeRequest struct {
	Datetime string `json:"datetime" example:"2025-04-05T19:00"`
}

type SetExamTimeResponse struct {
	Status string `json:"status" example:"ok"`
	Msg    string `json:"msg" example:"Exam scheduled for 05 April 2025, 07:00 PM"`
}

type ExamTimeResponse struct {
	Scheduled bool   `json:"scheduled"`
	StartTime string `json:"start_time,omitempty"`
	TimeStr   string `json:"time_str,omitempty"`
}

// Set godoc
// @Summary      Set the advertised exam start time
// @Description  Advisory only; attempts are not gated on it
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body SetExamTimeRequest true "Start time"
// @Success      200 {object} SetExamTimeResponse
// @Router       /api/admin/set-exam-time [post]
func (h *ScheduleHandler) Set(c *gin.Context) {
	var req SetExamTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "msg": "Invalid time format"})
		return
	}

	t, err := h.scheduleService.Set(req.Datetime)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "msg": "Invalid time format"})
		return
	}

	c.JSON(http.StatusOK, SetExamTimeResponse{
		Status: "ok",
		Msg:    fmt.Sprintf("Exam scheduled for %s", t.Format("02 January 2006, 03:04 PM")),
	})
}

// Get godoc
// @Summary      Read the advertised exam start time
// @Tags         exam
// @Produce      json
// @Success      200 {object} ExamTimeResponse
// @Router       /api/exam-time [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	t, ok := h.scheduleService.Get()
	if !ok {
		c.JSON(http.StatusOK, ExamTimeResponse{Scheduled: false})
		return
	}

	c.JSON(http.StatusOK, ExamTimeResponse{
		Scheduled: true,
		StartTime: t.Format("2006-01-02T15:04:05"),
		TimeStr:   t.Format("02 January 2006, 03:04 PM"),
	})
}
