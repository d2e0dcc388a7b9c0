package handlers

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"employee-attendance/models"
	"employee-attendance/pkg/attendance"
	"employee-attendance/pkg/export"
	util "employee-attendance/pkg/utils"
	"employee-attendance/repository"
)

type EmployeeProvisioner interface {
	ProvisionEmployee(ctx context.Context, payload models.EmployeeCreatePayload) (*models.User, error)
}

type AdminHandler struct {
	attendance  repository.AttendanceRepository
	users       repository.UserRepository
	provisioner EmployeeProvisioner
	clock       util.Clock
}

func NewAdminHandler(attendanceRepo repository.AttendanceRepository, users repository.UserRepository, provisioner EmployeeProvisioner, clock util.Clock) *AdminHandler {
	return &AdminHandler{
		attendance:  attendanceRepo,
		users:       users,
		provisioner: provisioner,
		clock:       clock,
	}
}

// GetDashboardStats godoc
// @Summary Get dashboard statistics
// @Description Today's head counts and worked hours across the organization
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DailySnapshot
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/dashboard-stats [get]
func (h *AdminHandler) GetDashboardStats(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	total, err := h.users.CountUsers(ctx)
	if err != nil {
		return respondError(c, err)
	}

	today := util.TodayDateKey(h.clock)
	records, err := h.attendance.FindByDate(ctx, today)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(attendance.DailySnapshot(today, total, records))
}

// GetAllAttendance godoc
// @Summary Attendance across employees
// @Description Records grouped by date (newest first) and employee. Filters combine with AND.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param employee_id query string false "Case-insensitive substring of the employee code"
// @Param date query string false "Exact date, YYYY-MM-DD"
// @Param month query string false "Month, YYYY-MM"
// @Success 200 {object} object{data=[]models.DateGroup}
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/attendance [get]
func (h *AdminHandler) GetAllAttendance(c *fiber.Ctx) error {
	groups, err := h.groupedAttendance(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": groups})
}

// ExportAttendance godoc
// @Summary Export attendance
// @Description Same filters as the attendance listing, rendered as an xlsx workbook
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param employee_id query string false "Case-insensitive substring of the employee code"
// @Param date query string false "Exact date, YYYY-MM-DD"
// @Param month query string false "Month, YYYY-MM"
// @Success 200 {file} binary
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/attendance/export [get]
func (h *AdminHandler) ExportAttendance(c *fiber.Ctx) error {
	groups, err := h.groupedAttendance(c)
	if err != nil {
		return respondError(c, err)
	}

	buf, err := export.AttendanceWorkbook(groups, h.clock.Loc())
	if err != nil {
		return respondError(c, err)
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", util.TodayDateKey(h.clock))
	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

func (h *AdminHandler) groupedAttendance(c *fiber.Ctx) ([]models.DateGroup, error) {
	var query models.AttendanceFilterQuery
	if err := c.QueryParser(&query); err != nil {
		return nil, &models.ValidationError{Fields: []*models.FieldError{{Field: "query", Tag: "parse", Msg: err.Error()}}}
	}

	filter := attendance.Filter{EmployeeID: query.EmployeeID, Date: query.Date, Month: query.Month}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	from, to := filter.DateRange()
	records, err := h.attendance.FindAll(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return attendance.Group(records, filter), nil
}

// GetAllEmployees godoc
// @Summary List employees
// @Description All provisioned profiles sorted by employee code
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{data=[]models.User,total=int}
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/employees [get]
func (h *AdminHandler) GetAllEmployees(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := h.users.GetAllUsers(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  users,
		"total": len(users),
	})
}

// CreateEmployee godoc
// @Summary Provision an employee
// @Description Creates the login account and the employee profile together
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee body models.EmployeeCreatePayload true "New employee"
// @Success 201 {object} object{message=string,data=models.User}
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/employees [post]
func (h *AdminHandler) CreateEmployee(c *fiber.Ctx) error {
	var payload models.EmployeeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.provisioner.ProvisionEmployee(ctx, payload)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Employee created successfully",
		"data":    user,
	})
}
