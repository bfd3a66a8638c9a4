package routers

import (
	"bytes"
	"context"
	"meeting-scheduler-service/internal/app/config"
	"meeting-scheduler-service/internal/app/delivery/http/controllers"
	"meeting-scheduler-service/internal/app/delivery/http/middlewares"
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/dto/requests"
	"meeting-scheduler-service/internal/pkg/dto/responses"
	"meeting-scheduler-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAvailabilityUsecase struct {
	mock.Mock
}

func (m *MockAvailabilityUsecase) GenerateAvailability(ctx context.Context, request *requests.GenerateAvailability) (*responses.Availability, error) {
	args := m.Called(ctx, request)
	var response *responses.Availability
	if v := args.Get(0); v != nil {
		response = v.(*responses.Availability)
	}
	return response, args.Error(1)
}

func (m *MockAvailabilityUsecase) FilterCandidateTimeslots(ctx context.Context, request *requests.FilterCandidateTimeslots) (*responses.CandidateTimeslots, error) {
	args := m.Called(ctx, request)
	var response *responses.CandidateTimeslots
	if v := args.Get(0); v != nil {
		response = v.(*responses.CandidateTimeslots)
	}
	return response, args.Error(1)
}

type MockSchedulingUsecase struct {
	mock.Mock
}

func (m *MockSchedulingUsecase) SubmitSchedulingJob(ctx context.Context, request *requests.SubmitSchedulingJob) (*responses.SchedulingJob, error) {
	args := m.Called(ctx, request)
	var response *responses.SchedulingJob
	if v := args.Get(0); v != nil {
		response = v.(*responses.SchedulingJob)
	}
	return response, args.Error(1)
}

type MockSchedulerCallbackUsecase struct {
	mock.Mock
}

func (m *MockSchedulerCallbackUsecase) AuthenticateCallback(ctx context.Context, token string, tokenPresent bool) (int, *responses.CallbackResponse, bool) {
	args := m.Called(ctx, token, tokenPresent)
	var body *responses.CallbackResponse
	if v := args.Get(1); v != nil {
		body = v.(*responses.CallbackResponse)
	}
	return args.Int(0), body, args.Bool(2)
}

func (m *MockSchedulerCallbackUsecase) HandleCallback(ctx context.Context, token string, tokenPresent bool, body []byte) (int, *responses.CallbackResponse) {
	args := m.Called(ctx, token, tokenPresent, body)
	return args.Int(0), args.Get(1).(*responses.CallbackResponse)
}

const testAPIKey = "test-superadmin-api-key-12345"

type testServer struct {
	router       *chi.Mux
	availability *MockAvailabilityUsecase
	scheduling   *MockSchedulingUsecase
	callback     *MockSchedulerCallbackUsecase
}

func newTestServer() *testServer {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			Version:                    "v1",
			MaxRequests:                1000,
			CallbackMaxRequests:        1000,
			RequestBodyLimitInMegabyte: 1,
			SuperadminAPIKey:           testAPIKey,
		},
	}

	ts := &testServer{
		router:       chi.NewRouter(),
		availability: new(MockAvailabilityUsecase),
		scheduling:   new(MockSchedulingUsecase),
		callback:     new(MockSchedulerCallbackUsecase),
	}
	SetupRoutes(
		ts.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewAvailabilityController(logger, ts.availability),
		controllers.NewSchedulingController(logger, ts.scheduling),
		controllers.NewSchedulerCallbackController(logger, ts.callback),
	)
	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

func TestAvailabilityRouter(t *testing.T) {
	body := `{"userId":"U1","windowStart":"2024-01-08T08:00:00Z","windowEnd":"2024-01-08T12:00:00Z","timezone":"UTC"}`

	t.Run("Generate with valid API key", func(t *testing.T) {
		ts := newTestServer()
		ts.availability.On("GenerateAvailability", mock.Anything, mock.AnythingOfType("*requests.GenerateAvailability")).
			Return(&responses.Availability{Slots: []responses.AvailableSlot{{ID: "a"}}}, nil).Once()

		req := httptest.NewRequest("POST", "/api/v1/availability", strings.NewReader(body))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		req.Header.Set(middlewares.HeaderAPIKey, testAPIKey)

		rr := ts.do(req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
		var envelope responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, constvars.GetAvailabilitySuccessMessage, envelope.Message)
		ts.availability.AssertExpectations(t)
	})

	t.Run("Generate without API key", func(t *testing.T) {
		ts := newTestServer()

		req := httptest.NewRequest("POST", "/api/v1/availability", strings.NewReader(body))
		rr := ts.do(req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		ts.availability.AssertNotCalled(t, "GenerateAvailability", mock.Anything, mock.Anything)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		ts := newTestServer()

		req := httptest.NewRequest("POST", "/api/v1/availability", strings.NewReader("{"))
		req.Header.Set(middlewares.HeaderAPIKey, testAPIKey)
		rr := ts.do(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Usecase error status is propagated", func(t *testing.T) {
		ts := newTestServer()
		ts.availability.On("GenerateAvailability", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrPreferenceLookup(assert.AnError, "U1")).Once()

		req := httptest.NewRequest("POST", "/api/v1/availability", strings.NewReader(body))
		req.Header.Set(middlewares.HeaderAPIKey, testAPIKey)
		rr := ts.do(req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Candidates", func(t *testing.T) {
		ts := newTestServer()
		ts.availability.On("FilterCandidateTimeslots", mock.Anything, mock.AnythingOfType("*requests.FilterCandidateTimeslots")).
			Return(&responses.CandidateTimeslots{Timeslots: []requests.CanonicalTimeslot{}}, nil).Once()

		req := httptest.NewRequest("POST", "/api/v1/availability/candidates", strings.NewReader(`{"catalog":[]}`))
		req.Header.Set(middlewares.HeaderAPIKey, testAPIKey)
		rr := ts.do(req)

		assert.Equal(t, http.StatusOK, rr.Code)
		ts.availability.AssertExpectations(t)
	})
}

func TestSchedulingRouter_Submit(t *testing.T) {
	ts := newTestServer()
	ts.scheduling.On("SubmitSchedulingJob", mock.Anything, mock.MatchedBy(func(request *requests.SubmitSchedulingJob) bool {
		return request.HostID == "h1" && request.UserID == "U1"
	})).Return(&responses.SchedulingJob{SingletonID: "abc", FileKey: "meet_h1_abc", TimeslotCount: 3}, nil).Once()

	req := httptest.NewRequest("POST", "/api/v1/scheduling/jobs", strings.NewReader(`{"hostId":"h1","userId":"U1"}`))
	req.Header.Set(middlewares.HeaderAPIKey, testAPIKey)
	rr := ts.do(req)

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Contains(t, rr.Body.String(), "meet_h1_abc")
	ts.scheduling.AssertExpectations(t)
}

func TestSchedulerCallbackRouter(t *testing.T) {
	payload := []byte(`{"fileKey":"meet_h1_abc","hostId":"h1","eventPartList":[]}`)
	accepted := func(ts *testServer, token string) {
		ts.callback.On("AuthenticateCallback", mock.Anything, token, true).Return(http.StatusOK, nil, true).Once()
	}

	t.Run("Token header and raw body reach the usecase", func(t *testing.T) {
		ts := newTestServer()
		accepted(ts, "s3cret")
		ts.callback.On("HandleCallback", mock.Anything, "s3cret", true, payload).
			Return(http.StatusOK, &responses.CallbackResponse{Message: constvars.CallbackMsgProcessed}).Once()

		req := httptest.NewRequest("POST", "/api/v1/scheduler/callback", bytes.NewReader(payload))
		req.Header.Set(constvars.HeaderXCallbackToken, "s3cret")
		rr := ts.do(req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"`+constvars.CallbackMsgProcessed+`"}`, rr.Body.String())
		ts.callback.AssertExpectations(t)
	})

	t.Run("Missing header is reported as absent", func(t *testing.T) {
		ts := newTestServer()
		ts.callback.On("AuthenticateCallback", mock.Anything, "", false).
			Return(http.StatusUnauthorized, &responses.CallbackResponse{Error: constvars.CallbackErrMissingToken}, false).Once()

		req := httptest.NewRequest("POST", "/api/v1/scheduler/callback", bytes.NewReader(payload))
		rr := ts.do(req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"`+constvars.CallbackErrMissingToken+`"}`, rr.Body.String())
		ts.callback.AssertNotCalled(t, "HandleCallback", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Callback does not need the API key", func(t *testing.T) {
		ts := newTestServer()
		accepted(ts, "s3cret")
		ts.callback.On("HandleCallback", mock.Anything, "s3cret", true, mock.Anything).
			Return(http.StatusOK, &responses.CallbackResponse{Message: constvars.CallbackMsgNoPendingRequest}).Once()

		req := httptest.NewRequest("POST", "/api/v1/scheduler/callback", bytes.NewReader(payload))
		req.Header.Set(constvars.HeaderXCallbackToken, "s3cret")
		req.Header.Set(middlewares.HeaderAPIKey, "wrong")
		rr := ts.do(req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Oversized body with a valid token", func(t *testing.T) {
		ts := newTestServer()
		accepted(ts, "s3cret")

		req := httptest.NewRequest("POST", "/api/v1/scheduler/callback", bytes.NewReader(make([]byte, 2<<20)))
		req.Header.Set(constvars.HeaderXCallbackToken, "s3cret")
		rr := ts.do(req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
		ts.callback.AssertNotCalled(t, "HandleCallback", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Auth answers before an oversized body is read", func(t *testing.T) {
		cases := []struct {
			name       string
			token      string
			present    bool
			wantStatus int
			wantError  string
		}{
			{"missing token", "", false, http.StatusUnauthorized, constvars.CallbackErrMissingToken},
			{"wrong token", "nope", true, http.StatusForbidden, constvars.CallbackErrInvalidToken},
			{"secret not configured", "s3cret", true, http.StatusInternalServerError, constvars.CallbackErrSecurityNotConfigured},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ts := newTestServer()
				ts.callback.On("AuthenticateCallback", mock.Anything, tc.token, tc.present).
					Return(tc.wantStatus, &responses.CallbackResponse{Error: tc.wantError}, false).Once()

				req := httptest.NewRequest("POST", "/api/v1/scheduler/callback", bytes.NewReader(make([]byte, 2<<20)))
				if tc.present {
					req.Header.Set(constvars.HeaderXCallbackToken, tc.token)
				}
				rr := ts.do(req)

				assert.Equal(t, tc.wantStatus, rr.Code)
				assert.JSONEq(t, `{"error":"`+tc.wantError+`"}`, rr.Body.String())
				ts.callback.AssertNotCalled(t, "HandleCallback", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})
}
