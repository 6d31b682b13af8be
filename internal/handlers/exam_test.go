package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/middleware"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/models"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/roster"
	"github.com/Shyamantha-C/exam-tool-backend-clean/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	store  *roster.Store
	auth   *services.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "exam.db")),
		&gorm.Config{TranslateError: true},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Student{},
		&models.Question{},
		&models.Attempt{},
		&models.Answer{},
	))

	store := roster.NewStore()

	authService := services.NewAuthService(db, "test-secret")
	studentService := services.NewStudentService(db, store)
	questionService := services.NewQuestionService(db)
	examService := services.NewExamService(db)

	authHandler := NewAuthHandler(authService)
	questionHandler := NewQuestionHandler(questionService)
	examHandler := NewExamHandler(examService, studentService)

	r := gin.New()
	api := r.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/login", authHandler.AdminLogin)

			guarded := admin.Group("")
			guarded.Use(middleware.AdminAuth(authService))
			{
				guarded.POST("/add-question", questionHandler.Add)
				guarded.GET("/questions", questionHandler.List)
			}
		}

		api.POST("/student/login", examHandler.StudentLogin)
		api.POST("/start", examHandler.Start)
		api.GET("/questions_for/:attempt_id", examHandler.Questions)
		api.POST("/submit", examHandler.Submit)
	}

	return &testEnv{router: r, db: db, store: store, auth: authService}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAdminSurfaceRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/admin/questions", nil, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", decode(t, w)["error"])

	w = env.do(t, http.MethodGet, "/api/admin/questions", nil, map[string]string{
		"X-ADMIN-TOKEN": "bogus",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminLoginAndAuthoring(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.auth.CreateAdmin("admin1", "admin123"))

	w := env.do(t, http.MethodPost, "/api/admin/login", gin.H{
		"username": "admin1",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/admin/login", gin.H{
		"username": "admin1",
		"password": "admin123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)

	headers := map[string]string{"X-ADMIN-TOKEN": token}
	w = env.do(t, http.MethodPost, "/api/admin/add-question", gin.H{
		"text":    "capital of France?",
		"opta":    "Paris",
		"optb":    "Rome",
		"optc":    "Berlin",
		"optd":    "Madrid",
		"correct": "a",
	}, headers)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/admin/questions", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)

	var questions []models.Question
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
	require.Len(t, questions, 1)
	assert.Equal(t, "A", questions[0].Correct)
	assert.Equal(t, 1, questions[0].OrderIndex)
	assert.Equal(t, 60, questions[0].PerQuestionTime)
}

func TestStudentExamFlow(t *testing.T) {
	env := newTestEnv(t)
	env.store.Load([]roster.Row{
		{Name: "Jane", Email: "a@x.com", Phone: "9999999999"},
	})

	q1 := models.Question{Text: "q1", OptA: "x", OptB: "y", Correct: "A", OrderIndex: 1, PerQuestionTime: 30}
	q2 := models.Question{Text: "q2", OptC: "z", Correct: "B", OrderIndex: 2, PerQuestionTime: 45}
	require.NoError(t, env.db.Create(&q1).Error)
	require.NoError(t, env.db.Create(&q2).Error)

	// Login with unnormalized email, wrong secret first.
	w := env.do(t, http.MethodPost, "/api/student/login", gin.H{
		"email":    "a@x.com",
		"password": "1111111111",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/student/login", gin.H{
		"email":    " A@X.com ",
		"password": "9999999999",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Jane", body["name"])
	studentID := uint(body["student_id"].(float64))

	w = env.do(t, http.MethodPost, "/api/start", gin.H{"student_id": studentID}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	attemptID := uint(decode(t, w)["attempt_id"].(float64))

	w = env.do(t, http.MethodPost, "/api/start", gin.H{"student_id": studentID}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "already attempted", decode(t, w)["error"])

	// Question fetch is attempt-agnostic: any id returns the catalog.
	w = env.do(t, http.MethodGet, "/api/questions_for/424242", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.EqualValues(t, 75, body["total_time"])
	assert.Len(t, body["questions"], 2)

	w = env.do(t, http.MethodPost, "/api/submit", gin.H{
		"attempt_id": attemptID,
		"answers": map[string]string{
			fmt.Sprint(q1.ID): "a",
			fmt.Sprint(q2.ID): "C",
		},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 1, body["score"])

	// Finished attempts are closed.
	w = env.do(t, http.MethodPost, "/api/submit", gin.H{
		"attempt_id": attemptID,
		"answers":    map[string]string{fmt.Sprint(q1.ID): "a"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/submit", gin.H{
		"attempt_id": 123,
		"answers":    map[string]string{"not-a-number": "A"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid question id", decode(t, w)["error"])

	w = env.do(t, http.MethodPost, "/api/submit", gin.H{
		"attempt_id": 123,
		"answers":    map[string]string{},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid attempt", decode(t, w)["error"])
}
