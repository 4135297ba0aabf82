package handlers

import (
	"errors"

	"attendly-api/internal/adapters/http/middleware"
	"attendly-api/internal/core/domain"
	"attendly-api/internal/core/services"
	"attendly-api/internal/pkg/datetime"
	"attendly-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AttendanceHandler handles check-in/check-out and record browsing
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// RecordResponse is an attendance record enriched with derived hours
type RecordResponse struct {
	domain.AttendanceRecord
	HoursWorked string `json:"hoursWorked"`
}

// CheckIn opens today's attendance record
// @Summary Check in
// @Description Record the start of today's attendance for the caller
// @Tags Attendance
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	identity := middleware.CurrentIdentity(c)

	result, err := h.attendanceService.CheckIn(c.Context(), identity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAuthenticated):
			return response.Unauthorized(c, "User not authenticated")
		case errors.Is(err, domain.ErrAlreadyCheckedIn):
			return response.Conflict(c, "You have already checked in today")
		default:
			return response.InternalServerError(c, "Failed to check in")
		}
	}

	return response.Success(c, result.Message, result.Record)
}

// CheckOut closes today's attendance record
// @Summary Check out
// @Description Record the end of today's attendance for the caller
// @Tags Attendance
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	identity := middleware.CurrentIdentity(c)

	result, err := h.attendanceService.CheckOut(c.Context(), identity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAuthenticated):
			return response.Unauthorized(c, "User not authenticated")
		case errors.Is(err, domain.ErrAlreadyCheckedOut):
			return response.Conflict(c, "You have already checked out today")
		case errors.Is(err, domain.ErrNoActiveCheckIn):
			return response.NotFound(c, "No active check-in found for today")
		default:
			return response.InternalServerError(c, "Failed to check out")
		}
	}

	return response.Success(c, result.Message, result.Record)
}

// Status returns today's derived attendance state for the caller
// @Summary Attendance status
// @Description Whether the caller has checked in / out today
// @Tags Attendance
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /attendance/status [get]
func (h *AttendanceHandler) Status(c *fiber.Ctx) error {
	identity := middleware.CurrentIdentity(c)

	status, err := h.attendanceService.Status(c.Context(), identity)
	if err != nil {
		return response.InternalServerError(c, "Failed to load status")
	}

	return response.Success(c, "", status)
}

// ListRecords returns the filtered record history (admin only)
// @Summary List attendance records
// @Description Browse records filtered by employee name and date range
// @Tags Attendance
// @Produce json
// @Param name query string false "Case-insensitive employee name filter"
// @Param start_date query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /attendance/records [get]
func (h *AttendanceHandler) ListRecords(c *fiber.Ctx) error {
	query := services.ListQuery{
		Name:      c.Query("name"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	records, err := h.attendanceService.ListRecords(c.Context(), query)
	if err != nil {
		return response.InternalServerError(c, "Failed to load records")
	}

	out := make([]RecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, RecordResponse{
			AttendanceRecord: record,
			HoursWorked:      datetime.HoursBetween(record.CheckInTime, record.CheckOutTime),
		})
	}

	return response.Success(c, "", fiber.Map{
		"records": out,
		"total":   len(out),
	})
}
