package solver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"meeting-scheduler-service/internal/app/config"
	"meeting-scheduler-service/internal/app/contracts"
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/dto/requests"
	"meeting-scheduler-service/internal/pkg/exceptions"
	"meeting-scheduler-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type solverClient struct {
	BaseUrl  string
	Username string
	Password string
	Client   *http.Client
	Log      *zap.Logger
}

func NewSolverClient(logger *zap.Logger, internalConfig *config.InternalConfig) contracts.SolverClient {
	return &solverClient{
		BaseUrl:  strings.TrimRight(internalConfig.Scheduler.BaseUrl, "/"),
		Username: internalConfig.Scheduler.Username,
		Password: internalConfig.Scheduler.Password,
		Client: &http.Client{
			Timeout: time.Duration(internalConfig.Scheduler.HTTPTimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}
}

// SubmitJob posts a solve-day problem. Only 200 and 202 count as accepted.
func (c *solverClient) SubmitJob(ctx context.Context, body *requests.PostTableRequestBody) error {
	requestID := utils.GetRequestID(ctx)
	endpoint := c.BaseUrl + constvars.SolverSolveDayPath
	c.Log.Info("solverClient.SubmitJob called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileKeyKey, body.FileKey),
		zap.String(constvars.LoggingEndpointURLKey, endpoint),
		zap.Int(constvars.LoggingTimeslotCountKey, len(body.Timeslots)),
	)

	requestJSON, err := json.Marshal(body)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.SetBasicAuth(c.Username, c.Password)

	resp, err := c.Client.Do(req)
	if err != nil {
		c.Log.Error("solverClient.SubmitJob error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileKeyKey, body.FileKey),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusAccepted {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.Log.Error("solverClient.SubmitJob job rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileKeyKey, body.FileKey),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString(constvars.LoggingResponseKey, bodyBytes),
		)
		return exceptions.ErrSolverRejectedJob(fmt.Errorf("%s", strings.TrimSpace(string(bodyBytes))), resp.StatusCode)
	}

	c.Log.Info("solverClient.SubmitJob succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileKeyKey, body.FileKey),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return nil
}
