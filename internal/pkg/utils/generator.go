package utils

import (
	"fmt"
	"meeting-scheduler-service/internal/pkg/constvars"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateSingletonID returns a short url-safe id used to correlate a solver job.
func GenerateSingletonID() (string, error) {
	return gonanoid.Generate(constvars.SingletonIDAlphabet, constvars.SingletonIDLength)
}

func BuildSchedulingFileKey(hostID, singletonID string) string {
	return fmt.Sprintf(constvars.SchedulingFileKeyFormat, hostID, singletonID)
}
