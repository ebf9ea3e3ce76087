package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/spacebooking/internal/domain"
	"github.com/Domenick1991/spacebooking/internal/service/users"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserRouter(userSvc *MockUserUseCase, bookingSvc *MockBookingUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewUserHandler(userSvc, bookingSvc).Register(router.Group("/users"))
	return router
}

func TestUserHandler_get(t *testing.T) {
	userSvc := &MockUserUseCase{}
	bio := "Space enthusiast and adventure seeker"
	userSvc.On("GetUser", mock.Anything, int64(1)).Return(&domain.User{
		ID:             1,
		Username:       "astro_explorer",
		HashedPassword: "$2a$10$secret",
		Bio:            &bio,
		TravelerLevel:  3,
		TotalMiles:     15000000,
	}, nil).Once()
	userSvc.On("GetUser", mock.Anything, int64(404)).Return(nil, domain.NewNotFound(domain.KindUser, 404)).Once()
	router := newUserRouter(userSvc, &MockBookingUseCase{})

	w := doGet(router, "/users/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
	var got userResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "astro_explorer", got.Username)
	assert.Equal(t, int64(15000000), got.TotalMiles)
	require.NotNil(t, got.Bio)
	assert.Equal(t, bio, *got.Bio)
	assert.Nil(t, got.AvatarURL)

	w = doGet(router, "/users/404")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"User not found","kind":"user"}`, w.Body.String())
}

func TestUserHandler_create(t *testing.T) {
	userSvc := &MockUserUseCase{}
	input := users.CreateUserInput{Username: "stargazer", Email: "star@example.com", Password: "orbit", FullName: "Star Gazer"}
	userSvc.On("CreateUser", mock.Anything, input).Return(&domain.User{ID: 3, Username: "stargazer", TravelerLevel: 1}, nil).Once()
	router := newUserRouter(userSvc, &MockBookingUseCase{})

	body, _ := json.Marshal(map[string]string{
		"username": "stargazer", "email": "star@example.com", "password": "orbit", "full_name": "Star Gazer",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":3`)
	userSvc.AssertExpectations(t)
}

func TestUserHandler_createConflict(t *testing.T) {
	userSvc := &MockUserUseCase{}
	userSvc.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: user already exists (users_username_key)", domain.ErrConflict)).Once()
	router := newUserRouter(userSvc, &MockBookingUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users",
		bytes.NewBufferString(`{"username":"dup","email":"dup@example.com","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUserHandler_listBookings(t *testing.T) {
	bookingSvc := &MockBookingUseCase{}
	departure := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	bookingSvc.On("GetUserBookings", mock.Anything, int64(1)).Return([]domain.BookingDetails{
		{
			Booking: domain.Booking{
				ID: 3, UserID: 1, DestinationID: 2, SeatClassID: 5, AccommodationID: 8,
				DepartureDate: departure, ReturnDate: departure.AddDate(0, 0, 15),
				Passengers: 2, TotalPrice: 4380000, Status: domain.BookingStatusConfirmed,
			},
			Destination:   domain.Destination{ID: 2, Name: "Mars Base Alpha"},
			SeatClass:     domain.SeatClass{ID: 5, DestinationID: 2, Name: "Luxury Cabin", Features: []string{"Private cabin"}},
			Accommodation: domain.Accommodation{ID: 8, DestinationID: 2, Name: "Comfort Suite at Mars Base Alpha"},
		},
	}, nil).Once()
	bookingSvc.On("GetUserBookings", mock.Anything, int64(2)).Return([]domain.BookingDetails{}, nil).Once()
	bookingSvc.On("GetUserBookings", mock.Anything, int64(404)).Return(nil, domain.NewNotFound(domain.KindUser, 404)).Once()
	router := newUserRouter(&MockUserUseCase{}, bookingSvc)

	w := doGet(router, "/users/1/bookings")
	require.Equal(t, http.StatusOK, w.Code)
	var got []bookingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Mars Base Alpha", got[0].Destination.Name)
	assert.Equal(t, []string{"Private cabin"}, got[0].SeatClass.Features)
	assert.Equal(t, "2026-03-16T00:00:00Z", got[0].ReturnDate)

	w = doGet(router, "/users/2/bookings")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doGet(router, "/users/404/bookings")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
