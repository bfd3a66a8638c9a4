package notifier

import (
	"bytes"
	"context"
	"fmt"
	"meeting-scheduler-service/internal/app/contracts"
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/exceptions"
	"meeting-scheduler-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const slackPostMessagePath = "/chat.postMessage"

type slackPostMessageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type slackPostMessageResponse struct {
	OK    bool   `json:"ok"`
	TS    string `json:"ts,omitempty"`
	Error string `json:"error,omitempty"`
}

type slackNotifier struct {
	BaseUrl string
	Token   string
	Client  *http.Client
	Limiter *rate.Limiter
	Log     *zap.Logger
}

// NewSlackNotifier delivers direct messages through chat.postMessage, using
// the userId as the DM channel. messagesPerSecond <= 0 disables throttling.
func NewSlackNotifier(logger *zap.Logger, baseUrl, token string, messagesPerSecond float64) contracts.UserNotifier {
	limit := rate.Inf
	if messagesPerSecond > 0 {
		limit = rate.Limit(messagesPerSecond)
	}
	return &slackNotifier{
		BaseUrl: strings.TrimRight(baseUrl, "/"),
		Token:   token,
		Client:  &http.Client{Timeout: 10 * time.Second},
		Limiter: rate.NewLimiter(limit, 1),
		Log:     logger,
	}
}

func (s *slackNotifier) NotifyUser(ctx context.Context, userID, message string) (*contracts.NotificationResult, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("slackNotifier.NotifyUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrServerDeadlineExceeded(err)
	}

	requestJSON, err := json.Marshal(slackPostMessageRequest{Channel: userID, Text: message})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.BaseUrl+slackPostMessagePath, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.Token)

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Log.Error("slackNotifier.NotifyUser error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrNotificationRejected(nil, fmt.Sprintf("status %d", resp.StatusCode))
	}

	var result slackPostMessageResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	if !result.OK {
		s.Log.Warn("slackNotifier.NotifyUser message rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.String(constvars.LoggingErrorMessageKey, result.Error),
		)
	} else {
		s.Log.Info("slackNotifier.NotifyUser succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationTSKey, result.TS),
		)
	}

	return &contracts.NotificationResult{OK: result.OK, TS: result.TS, Error: result.Error}, nil
}
