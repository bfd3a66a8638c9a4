package contracts

import "context"

type NotificationResult struct {
	OK    bool
	TS    string
	Error string
}

type UserNotifier interface {
	NotifyUser(ctx context.Context, userID, message string) (*NotificationResult, error)
}
