package ports

import "time"

type MetricsProvider interface {
	IncrementHTTPRequests(method, route, status string)
	RecordHTTPRequestDuration(method, route, status string, duration time.Duration)

	IncrementPostOperations(operation string, success bool)
	SetPostsStored(count int)
	SetActiveConnections(count int)

	SetServiceHealth(healthy bool)
}
