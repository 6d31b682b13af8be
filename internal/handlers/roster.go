package handlers

import (
	"net/http"
	"strings"

	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/logger"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/monitoring"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/roster"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RosterHandler administers the eligible-students spreadsheet. The file at
// rosterPath is the source of truth; the in-memory store is rebuilt from
// it wholesale on every change.
type RosterHandler struct {
	store      *roster.Store
	rosterPath string
}

func NewRosterHandler(store *roster.Store, rosterPath string) *RosterHandler {
	return &RosterHandler{store: store, rosterPath: rosterPath}
}

type UploadResponse struct {
	Status string `json:"status" example:"ok"`
	Count  int    `json:"count" example:"42"`
}

type RosterStudent struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type RosterListResponse struct {
	Status   string          `json:"status"`
	Total    int             `json:"total"`
	Students []RosterStudent `json:"students"`
}

// Upload godoc
// @Summary      Upload the student roster spreadsheet
// @Description  Replaces the roster wholesale from an .xlsx file
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Roster .xlsx"
// @Success      200 {object} UploadResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/admin/upload-students [post]
func (h *RosterHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil || !strings.HasSuffix(file.Filename, ".xlsx") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid file"})
		return
	}

	if err := c.SaveUploadedFile(file, h.rosterPath); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save file"})
		return
	}

	// A parse failure leaves the previously loaded roster live.
	rows, err := roster.ParseFile(h.rosterPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	count := h.store.Load(rows)
	monitoring.RosterEntries.Set(float64(count))
	logger.Log.Info("roster loaded", zap.Int("students", count))

	c.JSON(http.StatusOK, UploadResponse{Status: "ok", Count: count})
}

// List godoc
// @Summary      List the loaded roster
// @Tags         admin
// @Produce      json
// @Success      200 {object} RosterListResponse
// @Router       /api/admin/excel-students [get]
func (h *RosterHandler) List(c *gin.Context) {
	entries := h.store.Entries()

	students := make([]RosterStudent, 0, len(entries))
	for i, e := range entries {
		students = append(students, RosterStudent{
			ID:    i + 1,
			Name:  e.Name,
			Email: e.Email,
			Phone: e.Secret,
		})
	}

	c.JSON(http.StatusOK, RosterListResponse{
		Status:   "ok",
		Total:    len(students),
		Students: students,
	})
}

type DeleteStudentRequest struct {
	Email string `json:"email" binding:"required"`
}

type DeleteStudentResponse struct {
	Status string `json:"status" example:"ok"`
	Total  int    `json:"total" example:"41"`
}

// Delete godoc
// @Summary      Remove one student from the roster
// @Description  Rewrites the spreadsheet without the student and reloads
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body DeleteStudentRequest true "Student email"
// @Success      200 {object} DeleteStudentResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/delete-excel-student [delete]
func (h *RosterHandler) Delete(c *gin.Context) {
	var req DeleteStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "student not found"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, ok := h.store.Lookup(email); !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "student not found"})
		return
	}

	remaining := make([]roster.Entry, 0, h.store.Len())
	for _, e := range h.store.Entries() {
		if e.Email != email {
			remaining = append(remaining, e)
		}
	}

	if err := roster.WriteFile(h.rosterPath, remaining); err != nil {
		logger.Log.Error("roster rewrite failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	rows, err := roster.ParseFile(h.rosterPath)
	if err != nil {
		logger.Log.Error("roster reload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	count := h.store.Load(rows)
	monitoring.RosterEntries.Set(float64(count))
	logger.Log.Info("roster loaded", zap.Int("students", count))

	c.JSON(http.StatusOK, DeleteStudentResponse{Status: "ok", Total: count})
}
