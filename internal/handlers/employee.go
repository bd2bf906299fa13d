package handlers

import (
	"net/http"

	"github.com/alimgiray/timecard/internal/domain/workinghours"
	"github.com/alimgiray/timecard/internal/services"
	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

type createEmployeeRequest struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
}

// CreateEmployee registers an employee
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, workinghours.ErrMalformedInput)
		return
	}

	employee, err := h.employeeService.Create(req.Name, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// ListEmployees returns every employee
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employeeService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

// GetEmployee returns one employee
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employee, err := h.employeeService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee removes an employee and their attendance
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := h.employeeService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
