//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"venue-deals/internal/domain/deal"
	"venue-deals/internal/handler/api"
	resdto "venue-deals/internal/handler/dto/response"
	"venue-deals/internal/pkg/clock"
	"venue-deals/internal/pkg/errs"
	"venue-deals/internal/usecase/commands"
	"venue-deals/internal/usecase/queries"
	"venue-deals/tests/common/builder"
	"venue-deals/tests/common/httptest"
	"venue-deals/tests/common/testutil"
	commandsmock "venue-deals/tests/mock/commands"
	queriesmock "venue-deals/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var jst = time.FixedZone("JST", 9*60*60)

type DealHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDealCommands
	mockQueries  *queriesmock.MockDealQueries
	clock        *clock.MockClock
	handler      *api.DealHandler
}

func (s *DealHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDealCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDealQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, 6, 3, 19, 0, 0, 0, jst))
	s.handler = api.NewDealHandler(s.mockCommands, s.mockQueries, s.clock)

	s.router.GET("/venues/:id/deals/active", s.handler.ActiveForVenue)
	s.router.GET("/deals/:id", s.handler.Get)
	s.router.POST("/deals", s.handler.Create)
	s.router.PATCH("/deals/:id/activation", s.handler.SetActivation)
	s.router.DELETE("/deals/:id", s.handler.Delete)
}

func (s *DealHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDealHandlerSuite(t *testing.T) {
	suite.Run(t, new(DealHandlerTestSuite))
}

type testCaseDeal struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// scheduleField mutates a key of the nested schedule object.
func scheduleField(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		sched, ok := m["schedule"].(map[string]any)
		if !ok {
			return
		}
		testutil.Field(key, value)(sched)
	}
}

// ================================================================================
// TestActiveForVenue
// ================================================================================

func (s *DealHandlerTestSuite) TestActiveForVenue() {
	venueID := uuid.New()
	url := "/venues/" + venueID.String() + "/deals/active"

	newer := builder.NewDealBuilder().WithVenueID(venueID).
		WithCreatedAt(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)).MustBuildDomain()
	older := builder.NewDealBuilder().WithVenueID(venueID).
		WithCreatedAt(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)).MustBuildDomain()

	s.Run("success: returns deals in usecase order evaluated at now", func() {
		s.mockQueries.EXPECT().ActiveDealsFor(gomock.Any(), venueID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, at *time.Time) ([]*deal.Deal, error) {
				s.Require().NotNil(at)
				s.True(at.Equal(s.clock.Now()))
				return []*deal.Deal{newer, older}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.ActiveDealsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(venueID, response.VenueID)
		s.Require().Len(response.Deals, 2)
		s.Equal(newer.ID(), response.Deals[0].ID)
		s.Equal(older.ID(), response.Deals[1].ID)
		s.Equal("one_off", response.Deals[0].Schedule.Mode)
	})

	s.Run("success: empty list is not an error", func() {
		s.mockQueries.EXPECT().ActiveDealsFor(gomock.Any(), venueID, gomock.Any()).
			Return([]*deal.Deal{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.ActiveDealsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Deals)
		s.Empty(response.Deals)
	})

	s.Run("success: at accepts venue-local wall clock", func() {
		s.mockQueries.EXPECT().ActiveDealsFor(gomock.Any(), venueID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, at *time.Time) ([]*deal.Deal, error) {
				s.True(at.Equal(time.Date(2024, 6, 4, 10, 30, 0, 0, jst)))
				return nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?at=2024-06-04T10:30", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: at accepts RFC3339", func() {
		s.mockQueries.EXPECT().ActiveDealsFor(gomock.Any(), venueID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, at *time.Time) ([]*deal.Deal, error) {
				s.True(at.Equal(time.Date(2024, 6, 4, 1, 30, 0, 0, time.UTC)))
				return nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?at=2024-06-04T01:30:00Z", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for malformed at", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?at=tomorrow", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "at must be")
	})

	s.Run("error: 400 Bad Request for invalid venue id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/not-a-uuid/deals/active", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid venue id")
	})

	s.Run("error: 503 Service Unavailable when store fails", func() {
		storeErr := errs.Mark(errors.New("connection refused"), errs.ErrStoreUnavailable)
		s.mockQueries.EXPECT().ActiveDealsFor(gomock.Any(), venueID, gomock.Any()).
			Return(nil, storeErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Failed to load active deals")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *DealHandlerTestSuite) TestGet() {
	d := builder.NewDealBuilder().AsWeekly("mon", "wed", "fri").WithWindow("17:00", "20:00").MustBuildDomain()
	url := "/deals/" + d.ID().String()

	s.Run("success: returns 200 OK with schedule and active_now", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), d.ID()).
			Return(&queries.DealDetail{Deal: d, ActiveNow: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.DealDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(d.ID(), response.ID)
		s.True(response.ActiveNow)
		s.Equal("recurring", response.Schedule.Mode)
		s.Equal([]string{"monday", "wednesday", "friday"}, response.Schedule.RecurrenceDays)
		s.Require().NotNil(response.Schedule.TimeStart)
		s.Equal("17:00", *response.Schedule.TimeStart)
		s.Nil(response.Schedule.DateStart)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deals/invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing deal", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), d.ID()).
			Return(nil, queries.ErrDealNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "deal not found")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *DealHandlerTestSuite) TestCreate() {
	url := "/deals"
	createdID := uuid.New()
	reqBody := builder.NewDealBuilder().BuildCreateRequestDTO()

	bound := []testCaseDeal{
		{name: "title length OK (200 chars)", mutate: testutil.Field("title", strings.Repeat("a", 200)), expectCode: http.StatusCreated},
		{name: "title length invalid (201 chars)", mutate: testutil.Field("title", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		{name: "description length invalid (2001 chars)", mutate: testutil.Field("description", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest},
		{name: "too many media refs", mutate: testutil.Field("media_refs", make([]string, 11)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseDeal{
		{name: "missing field: venue_id (required)", mutate: testutil.Field("venue_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: title (required)", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: schedule (required)", mutate: testutil.Field("schedule", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: schedule.mode (required)", mutate: scheduleField("mode", nil), expectCode: http.StatusBadRequest},
		{name: "optional field: is_active omitted", mutate: testutil.Field("is_active", nil), expectCode: http.StatusCreated},
	}

	format := []testCaseDeal{
		{name: "unknown mode", mutate: scheduleField("mode", "sometimes"), expectCode: http.StatusBadRequest},
		{name: "malformed date", mutate: scheduleField("date_start", "2024/01/01"), expectCode: http.StatusBadRequest},
		{name: "malformed time", mutate: scheduleField("time_start", "25:00"), expectCode: http.StatusBadRequest},
		{name: "time window OK", mutate: scheduleField("time_start", "17:00"), expectCode: http.StatusCreated},
		{name: "unknown weekday", mutate: scheduleField("recurrence_days", []string{"funday"}), expectCode: http.StatusBadRequest},
		{name: "unknown recurrence type", mutate: scheduleField("recurrence_type", "monthly"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseDeal{bound, missing, format}

	s.Run("success: returns 201 Created with id and location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateDealInput) (uuid.UUID, error) {
				s.Equal(reqBody.VenueID, in.VenueID)
				s.Equal(reqBody.Title, in.Title)
				s.True(in.IsActive)
				s.Equal("one_off", in.Schedule.Mode)
				return createdID, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(createdID.String(), body["id"])
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/deals/" + createdID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
							Return(createdID, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 400 Bad Request for malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, httptest.RawBody("{"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "mixed schedule fields",
				commandsError:  deal.ErrMixedScheduleFields,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    deal.ErrMixedScheduleFields.Error(),
			},
			{
				name:           "discount above original",
				commandsError:  deal.ErrDiscountAboveOrigin,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "discounted price",
			},
			{
				name:           "store unavailable",
				commandsError:  errs.Mark(errors.New("timeout"), errs.ErrStoreUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Create deal failed",
			},
			{
				name:           "unclassified error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Create deal failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestSetActivation
// ================================================================================

func (s *DealHandlerTestSuite) TestSetActivation() {
	dealID := uuid.New()
	url := "/deals/" + dealID.String() + "/activation"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().SetActive(gomock.Any(), dealID, false).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"is_active": false})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when is_active is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 Not Found for missing deal", func() {
		s.mockCommands.EXPECT().SetActive(gomock.Any(), dealID, true).
			Return(queries.ErrDealNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"is_active": true})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "deal not found")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *DealHandlerTestSuite) TestDelete() {
	dealID := uuid.New()
	url := "/deals/" + dealID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), dealID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/deals/invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing deal", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), dealID).Return(queries.ErrDealNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "deal not found")
	})
}
