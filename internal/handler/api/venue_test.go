//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"tablebook/internal/handler/api"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"
	"tablebook/tests/common/builder"
	"tablebook/tests/common/httptest"
	"tablebook/tests/common/testutil"
	commandsmock "tablebook/tests/mock/commands"
	queriesmock "tablebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VenueHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockVenueCommands
	mockQueries   *queriesmock.MockVenueQueries
	mockWaitlist  *commandsmock.MockWaitlistCommands
	handler       *api.VenueHandler
	waitlistHandler *api.WaitlistHandler
}

func (s *VenueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVenueCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVenueQueries(s.mockCtrl)
	s.mockWaitlist = commandsmock.NewMockWaitlistCommands(s.mockCtrl)
	s.handler = api.NewVenueHandler(s.mockCommands, s.mockQueries)
	s.waitlistHandler = api.NewWaitlistHandler(s.mockWaitlist)

	// Admin auth is exercised in the middleware tests; here the routes are
	// mounted bare.
	s.router.POST("/venues", s.handler.CreateVenue)
	s.router.GET("/venues", s.handler.ListVenues)
	s.router.GET("/venues/:slug", s.handler.GetVenue)
	s.router.POST("/venues/:slug/tables", s.handler.AddTables)
	s.router.POST("/venues/:slug/waitlist", s.waitlistHandler.JoinWaitlist)
}

func (s *VenueHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVenueHandlerSuite(t *testing.T) {
	suite.Run(t, new(VenueHandlerTestSuite))
}

// ================================================================================
// TestCreateVenue
// ================================================================================

func (s *VenueHandlerTestSuite) TestCreateVenue() {
	url := "/venues"

	reqBody := builder.NewVenueBuilder().BuildCreateRequestDTO()
	returnSnap := builder.NewVenueBuilder().BuildSnapshot()

	s.Run("success: returns 201 Created with the venue", func() {
		s.mockCommands.EXPECT().CreateVenue(gomock.Any(), gomock.Any()).
			Return(returnSnap, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.VenueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("the-golden-fork", response.Slug)
		s.Equal("10:00", response.OpeningTime)
		s.Equal("22:00", response.ClosingTime)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validationCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name", mutate: testutil.Field("name", nil)},
			{name: "missing field: opening_time", mutate: testutil.Field("opening_time", nil)},
			{name: "missing field: closing_time", mutate: testutil.Field("closing_time", nil)},
			{name: "missing field: total_tables", mutate: testutil.Field("total_tables", nil)},
			{name: "total_tables below minimum", mutate: testutil.Field("total_tables", 0)},
		}

		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps command errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "inverted window",
				commandsError:  commands.ErrInvalidWindow,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Opening time must be before closing time",
			},
			{
				name:           "duplicate venue",
				commandsError:  commands.ErrVenueAlreadyExists,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Venue already exists",
			},
			{
				name:           "domain validation",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal error",
				commandsError:  errors.New("connection reset"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateVenue(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestAddTables
// ================================================================================

func (s *VenueHandlerTestSuite) TestAddTables() {
	url := "/venues/the-golden-fork/tables"
	reqBody := map[string]any{
		"tables": []map[string]any{
			{"number": 11, "capacity": 4},
			{"number": 12, "capacity": 6},
		},
	}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().AddTables(gomock.Any(), "the-golden-fork", gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for empty table list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"tables": []map[string]any{}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 Bad Request for invalid capacity", func() {
		bad := map[string]any{"tables": []map[string]any{{"number": 11, "capacity": 0}}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps command errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown venue",
				commandsError:  commands.ErrVenueNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Venue not found",
			},
			{
				name:           "over the declared total",
				commandsError:  commands.ErrTableLimitExceeded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Table limit exceeded",
			},
			{
				name:           "table number taken",
				commandsError:  commands.ErrDuplicateTableNumber,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Table number already in use",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddTables(gomock.Any(), "the-golden-fork", gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetVenue
// ================================================================================

func (s *VenueHandlerTestSuite) TestGetVenue() {
	s.Run("success: returns 200 OK without tables", func() {
		view := builder.NewVenueBuilder().BuildView()
		s.mockQueries.EXPECT().BySlug(gomock.Any(), "the-golden-fork", false).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/the-golden-fork", nil, "")

		var response resdto.VenueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("the-golden-fork", response.Slug)
		s.Empty(response.Tables)
	})

	s.Run("success: include_tables returns the table list", func() {
		view := builder.NewVenueBuilder().BuildView()
		view.Tables = []*queries.TableView{
			{ID: uuid.New(), Number: 1, Capacity: 2},
			{ID: uuid.New(), Number: 2, Capacity: 4},
		}
		s.mockQueries.EXPECT().BySlug(gomock.Any(), "the-golden-fork", true).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/the-golden-fork?include_tables=true", nil, "")

		var response resdto.VenueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Tables, 2)
	})

	s.Run("error: 404 Not Found for unknown venue", func() {
		s.mockQueries.EXPECT().BySlug(gomock.Any(), "nowhere", false).
			Return(nil, queries.ErrVenueNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/nowhere", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Venue not found")
	})
}

// ================================================================================
// TestListVenues
// ================================================================================

func (s *VenueHandlerTestSuite) TestListVenues() {
	s.Run("success: defaults to newest first with no limit", func() {
		views := []*queries.VenueView{
			builder.NewVenueBuilder().BuildView(),
			builder.NewVenueBuilder().WithName("Bistro Luna").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), "desc", 0).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues", nil, "")

		var response []resdto.VenueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: sort and limit are passed through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "asc", 5).
			Return([]*queries.VenueView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues?sort=asc&limit=5", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

// ================================================================================
// TestJoinWaitlist
// ================================================================================

func (s *VenueHandlerTestSuite) TestJoinWaitlist() {
	url := "/venues/the-golden-fork/waitlist"
	reqBody := map[string]any{
		"guest_name":     "Alice Smith",
		"phone":          "+15551234567",
		"party_size":     4,
		"preferred_time": "2026-06-02T19:00:00Z",
	}

	s.Run("success: returns 201 Created with the entry", func() {
		snap := &commands.WaitlistEntrySnapshot{
			ID:        uuid.New(),
			VenueID:   uuid.New(),
			GuestName: "Alice Smith",
			Phone:     "+15551234567",
			PartySize: 4,
			Preferred: time.Date(2026, 6, 2, 19, 0, 0, 0, time.UTC),
		}
		s.mockWaitlist.EXPECT().Join(gomock.Any(), gomock.Any()).
			Return(snap, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.WaitlistEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Alice Smith", response.GuestName)
		s.Equal(4, response.PartySize)
	})

	s.Run("error: 400 Bad Request for missing fields", func() {
		bad := map[string]any{"guest_name": "Alice Smith"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for unknown venue", func() {
		s.mockWaitlist.EXPECT().Join(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrVenueNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Venue not found")
	})
}
