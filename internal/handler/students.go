package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookshop-app/internal/service"
)

type StudentHandler struct {
	students *service.StudentService
	reports  *service.ReportService
	logger   *zap.Logger
}

func NewStudentHandler(students *service.StudentService, reports *service.ReportService, logger *zap.Logger) *StudentHandler {
	return &StudentHandler{students: students, reports: reports, logger: logger}
}

func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

type studentRequest struct {
	Name       string `json:"name" binding:"required"`
	ClassLevel string `json:"class_level" binding:"required"`
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.students.Create(req.Name, req.ClassLevel)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.students.Update(id, req.Name, req.ClassLevel)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// Summaries groups purchase history by (name, class) pair.
func (h *StudentHandler) Summaries(c *gin.Context) {
	summaries, err := h.reports.StudentSummaries()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}
