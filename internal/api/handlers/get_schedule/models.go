package get_schedule

import (
	"strings"
	"time"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
	getSchedule "github.com/m04kA/FitStudio-BookingService/internal/usecase/get_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	From string        `json:"from"` // "2026-03-02"
	To   string        `json:"to"`   // Не включается в окно
	Days []DayResponse `json:"days"`
}

// DayResponse классы одного календарного дня
type DayResponse struct {
	Date    string          `json:"date"`
	Classes []ClassResponse `json:"classes"`
}

// ClassResponse данные класса в расписании
type ClassResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Instructor      string   `json:"instructor"`
	Difficulty      string   `json:"difficulty"`
	StartTime       string   `json:"startTime"` // ISO 8601
	DurationMinutes int      `json:"durationMinutes"`
	Capacity        int      `json:"capacity"`
	BookedCount     int      `json:"bookedCount"`
	SpotsLeft       int      `json:"spotsLeft"`
	IsFull          bool     `json:"isFull"`
	Equipment       []string `json:"equipment"`
}

// ToUseCaseRequest формирует запрос use case из query параметров
// types - список типов через запятую, например "yoga,pilates"
func ToUseCaseRequest(view, dateStr, typesStr string) (*getSchedule.Request, error) {
	req := &getSchedule.Request{
		View: getSchedule.ViewWeek,
	}

	if view != "" {
		req.View = getSchedule.ViewMode(view)
	}

	if dateStr != "" {
		anchor, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Anchor = anchor
	}

	if typesStr != "" {
		for _, raw := range strings.Split(typesStr, ",") {
			if t := strings.TrimSpace(raw); t != "" {
				req.Types = append(req.Types, domain.ClassType(t))
			}
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	days := make([]DayResponse, len(resp.Days))
	for i, day := range resp.Days {
		classes := make([]ClassResponse, len(day.Classes))
		for j, class := range day.Classes {
			classes[j] = fromDomainClass(class)
		}
		days[i] = DayResponse{
			Date:    day.Date.Format(domain.DateFormat),
			Classes: classes,
		}
	}

	return &ScheduleResponse{
		From: resp.From.Format(domain.DateFormat),
		To:   resp.To.Format(domain.DateFormat),
		Days: days,
	}
}

func fromDomainClass(c *domain.ClassSession) ClassResponse {
	equipment := c.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	return ClassResponse{
		ID:              c.ID,
		Name:            c.Name,
		Type:            string(c.Type),
		Instructor:      c.Instructor,
		Difficulty:      string(c.Difficulty),
		StartTime:       c.StartTime.Format(time.RFC3339),
		DurationMinutes: c.DurationMinutes,
		Capacity:        c.Capacity,
		BookedCount:     c.BookedCount,
		SpotsLeft:       c.SpotsLeft(),
		IsFull:          c.IsFull(),
		Equipment:       equipment,
	}
}
