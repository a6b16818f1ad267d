package book_class

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/FitStudio-BookingService/internal/api/middleware"
	bookClass "github.com/m04kA/FitStudio-BookingService/internal/usecase/book_class"
)

type MockUseCase struct{ mock.Mock }

func (m *MockUseCase) Execute(ctx context.Context, req *bookClass.Request) (*bookClass.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookClass.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, handler *Handler, userID string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}

	rec := httptest.NewRecorder()
	// Auth middleware кладет userID в контекст, как в боевом роутере
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	useCase := new(MockUseCase)
	handler := NewHandler(useCase, nopLogger{})

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	useCase.On("Execute", mock.Anything, &bookClass.Request{UserID: 7, ClassID: 42}).
		Return(&bookClass.Response{
			BookingID:  100,
			ClassID:    42,
			UserID:     7,
			Status:     "confirmed",
			Position:   5,
			BookedAt:   now,
			ClassName:  "Morning Flow Yoga",
			StartTime:  now.Add(24 * time.Hour),
			SpotsLeft:  5,
			Capacity:   10,
			Instructor: "Sarah Mitchell",
		}, nil)

	rec := doRequest(t, handler, "7", `{"classId": 42}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.BookingID)
	assert.Equal(t, 5, resp.Position)
	assert.Equal(t, "confirmed", resp.Status)
	useCase.AssertExpectations(t)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	useCase := new(MockUseCase)
	handler := NewHandler(useCase, nopLogger{})

	rec := doRequest(t, handler, "", `{"classId": 42}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_InvalidBody(t *testing.T) {
	useCase := new(MockUseCase)
	handler := NewHandler(useCase, nopLogger{})

	rec := doRequest(t, handler, "7", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_ClassFull(t *testing.T) {
	useCase := new(MockUseCase)
	handler := NewHandler(useCase, nopLogger{})

	useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, bookClass.ErrClassFull)

	rec := doRequest(t, handler, "7", `{"classId": 42}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_ClassNotFound(t *testing.T) {
	useCase := new(MockUseCase)
	handler := NewHandler(useCase, nopLogger{})

	useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, bookClass.ErrClassNotFound)

	rec := doRequest(t, handler, "7", `{"classId": 42}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
