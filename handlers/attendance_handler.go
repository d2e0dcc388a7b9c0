package handlers

import (
	"github.com/gofiber/fiber/v2"

	"employee-attendance/config/middleware"
	"employee-attendance/models"
	"employee-attendance/pkg/attendance"
	util "employee-attendance/pkg/utils"
	"employee-attendance/repository"
)

const maxHistoryLimit = 100

type AttendanceHandler struct {
	repo  repository.AttendanceRepository
	users repository.UserRepository
	clock util.Clock
}

func NewAttendanceHandler(repo repository.AttendanceRepository, users repository.UserRepository, clock util.Clock) *AttendanceHandler {
	return &AttendanceHandler{repo: repo, users: users, clock: clock}
}

func (h *AttendanceHandler) view(rec *models.AttendanceRecord) *models.AttendanceView {
	if rec == nil {
		return nil
	}
	return &models.AttendanceView{
		AttendanceRecord:    *rec,
		CheckInDisplay:      util.FormatClockTime(&rec.CheckIn, h.clock.Loc()),
		CheckOutDisplay:     util.FormatClockTime(rec.CheckOut, h.clock.Loc()),
		WorkingHoursDisplay: util.FormatDuration(rec.WorkingHours),
		DateDisplay:         util.FormatDisplayDate(rec.Date),
	}
}

// GetToday godoc
// @Summary Today's attendance
// @Description Latest record dated today and whether the caller is currently checked in
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.TodayAttendanceResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance/today [get]
func (h *AttendanceHandler) GetToday(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return unauthorized(c)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rec, err := h.repo.FindOpenOrLatestToday(ctx, claims.UserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.TodayAttendanceResponse{
		Date:        util.TodayDateKey(h.clock),
		IsCheckedIn: rec != nil && rec.IsOpen(),
		Record:      h.view(rec),
	})
}

// CheckIn godoc
// @Summary Check in
// @Description Opens a new attendance session. Only one session may be open per day.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 201 {object} object{message=string,data=models.AttendanceView}
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return unauthorized(c)
	}
	return h.checkIn(c, claims)
}

func (h *AttendanceHandler) checkIn(c *fiber.Ctx, claims *models.Claims) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.users.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee profile not found"})
	}

	rec, err := h.repo.OpenSession(ctx, user.ID, user.EmployeeID, user.Name)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Checked in successfully!",
		"data":    h.view(rec),
	})
}

// CheckOut godoc
// @Summary Check out
// @Description Closes the most recent open session dated today
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,data=models.AttendanceView}
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return unauthorized(c)
	}
	return h.checkOut(c, claims)
}

func (h *AttendanceHandler) checkOut(c *fiber.Ctx, claims *models.Claims) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	rec, err := h.repo.CloseSession(ctx, claims.UserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Checked out successfully!",
		"data":    h.view(rec),
	})
}

// Toggle godoc
// @Summary Toggle check-in/check-out
// @Description Checks out when today's latest session is open, checks in otherwise
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,data=models.AttendanceView}
// @Success 201 {object} object{message=string,data=models.AttendanceView}
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /attendance/toggle [post]
func (h *AttendanceHandler) Toggle(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return unauthorized(c)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rec, err := h.repo.FindOpenOrLatestToday(ctx, claims.UserID)
	if err != nil {
		return respondError(c, err)
	}

	if rec != nil && rec.IsOpen() {
		return h.checkOut(c, claims)
	}
	return h.checkIn(c, claims)
}

// GetMyHistory godoc
// @Summary Own attendance history
// @Description Most recent records (date desc, check-in desc) with per-day totals
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of records (default 30, max 100)"
// @Success 200 {object} object{data=[]models.AttendanceView,days=[]models.DateGroup}
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance/my-history [get]
func (h *AttendanceHandler) GetMyHistory(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return unauthorized(c)
	}

	limit := c.QueryInt("limit", repository.DefaultRecentLimit)
	switch {
	case limit < 1:
		limit = repository.DefaultRecentLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	records, err := h.repo.ListRecent(ctx, claims.UserID, limit)
	if err != nil {
		return respondError(c, err)
	}

	views := make([]*models.AttendanceView, 0, len(records))
	for i := range records {
		views = append(views, h.view(&records[i]))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": views,
		"days": attendance.Group(records, attendance.Filter{}),
	})
}

// GetMySummary godoc
// @Summary Own monthly summary
// @Description Present days and inferred leave days of the current month
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MonthlySummary
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance/my-summary [get]
func (h *AttendanceHandler) GetMySummary(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return unauthorized(c)
	}

	now := h.clock.Now()
	from, to := util.MonthBounds(now, h.clock.Loc())

	ctx, cancel := requestContext(c)
	defer cancel()

	records, err := h.repo.FindByUserInRange(ctx, claims.UserID, from, to)
	if err != nil {
		return respondError(c, err)
	}

	summary, err := attendance.MonthlySummary(records, now)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(summary)
}
