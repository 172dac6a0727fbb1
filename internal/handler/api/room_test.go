//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/handler/api"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/tests/common/builder"
	"hotel-backoffice/tests/common/httptest"
	queriesmock "hotel-backoffice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockRoomQueries
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	h := api.NewRoomHandler(s.mockQueries)

	s.router.GET("/rooms/available", h.SearchAvailable)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestSearchAvailable() {
	s.Run("success: adults default to one and filters are bound", func() {
		rooms := []*queries.RoomView{
			builder.NewRoomView("101", "80.00", 2),
			builder.NewRoomView("204", "120.00", 3),
		}
		s.mockQueries.EXPECT().SearchAvailable(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p room.SearchParams) (*queries.Page[*queries.RoomView], error) {
				s.Equal(reservation.Date(2026, 6, 11), p.CheckIn)
				s.Equal(reservation.Date(2026, 6, 14), p.CheckOut)
				s.Equal(1, p.Adults)
				s.Equal(1, p.Children)
				s.Require().NotNil(p.MaxPrice)
				s.True(decimal.NewFromInt(150).Equal(*p.MaxPrice))
				s.Nil(p.MinPrice)
				s.Equal(room.SortKey("price"), p.SortBy)
				return &queries.Page[*queries.RoomView]{Items: rooms, Page: 0, Size: 20, Total: 2}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/rooms/available?checkIn=2026-06-11&checkOut=2026-06-14&children=1&maxPrice=150&sortBy=price", nil, "")

		var body resdto.PageResponse[resdto.RoomResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 2)
		s.Equal("101", body.Items[0].RoomNumber)
		s.Equal("80.00", body.Items[0].NightlyRate)
		s.Equal(1, body.TotalPages)
	})

	s.Run("error: 400 Bad Request without dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/available?checkIn=2026-06-11", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 Bad Request for a non-numeric price", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/rooms/available?checkIn=2026-06-11&checkOut=2026-06-14&minPrice=cheap", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "decimal")
	})

	s.Run("error: 400 Bad Request for an inverted date range", func() {
		s.mockQueries.EXPECT().SearchAvailable(gomock.Any(), gomock.Any()).
			Return(nil, reservation.ErrInvalidDateRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/rooms/available?checkIn=2026-06-14&checkOut=2026-06-11", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "check-out date must be after")
	})
}
