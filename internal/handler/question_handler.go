package handler

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
	"github.com/yourusername/trivia-questions-api/internal/handler/dto"
	"github.com/yourusername/trivia-questions-api/internal/handler/helper"
	apperrors "github.com/yourusername/trivia-questions-api/internal/pkg/errors"
	"github.com/yourusername/trivia-questions-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestions возвращает страницу вопросов и все категории
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, err := h.questionService.ListQuestions(c.Request.Context(), helper.ParsePage(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(page))
}

// CreateQuestion создает вопрос из тела запроса без валидации полей
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	question, err := h.questionService.CreateQuestion(c.Request.Context(), req.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionCreatedResponse{
		Success:  true,
		Question: question.Format(),
	})
}

// DeleteQuestion удаляет вопрос по ID
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	if err := h.questionService.DeleteQuestion(c.Request.Context(), questionID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionDeletedResponse{
		Success: true,
		Deleted: questionID,
	})
}

// SearchQuestions ищет вопросы по подстроке search_term
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req dto.SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Wrap(apperrors.ErrUnprocessable, err))
		return
	}
	if req.SearchTerm == nil {
		writeError(c, fmt.Errorf("search_term is required: %w", apperrors.ErrUnprocessable))
		return
	}

	questions, err := h.questionService.SearchQuestions(c.Request.Context(), *req.SearchTerm)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionSearchResponse(questions))
}

// ExportQuestions выгружает все вопросы в CSV или XLSX (?format=csv|xlsx)
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		writeError(c, fmt.Errorf("unsupported export format %q: %w", format, apperrors.ErrBadRequest))
		return
	}

	questions, err := h.questionService.ExportQuestions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, filename)
	default:
		h.exportCSV(c, questions, filename)
	}
}

var exportHeaders = []string{"ID", "Question", "Answer", "Category", "Difficulty"}

func exportRow(q *entity.Question) []string {
	return []string{
		strconv.FormatUint(uint64(q.ID), 10),
		sanitizeForExcel(q.Text()),
		sanitizeForExcel(q.AnswerText()),
		formatOptionalInt(q.Category),
		formatOptionalInt(q.Difficulty),
	}
}

// exportCSV экспортирует вопросы в CSV с правильным экранированием спецсимволов
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	if err := writeCSV(c.Writer, questions); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи CSV в response: %v", err)
	}
}

// writeCSV пишет BOM (для корректного отображения UTF-8 в Excel), заголовок и строки вопросов
func writeCSV(w io.Writer, questions []entity.Question) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range questions {
		if err := writer.Write(exportRow(&questions[i])); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// exportXLSX экспортирует вопросы в Excel с использованием StreamWriter
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		writeError(c, fmt.Errorf("failed to create Excel stream writer: %w", err))
		return
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		headers[i] = h
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков: %v", err)
	}

	for i := range questions {
		q := &questions[i]
		row := []interface{}{q.ID, sanitizeForExcel(q.Text()), sanitizeForExcel(q.AnswerText()), optionalIntCell(q.Category), optionalIntCell(q.Difficulty)}
		if err := sw.SetRow(fmt.Sprintf("A%d", i+2), row); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи строки %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		writeError(c, fmt.Errorf("failed to flush Excel stream: %w", err))
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optionalIntCell(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
