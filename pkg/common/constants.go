package common

import "time"

const (
	PostCacheTTL    = 5 * time.Minute
	FeedCacheTTL    = 1 * time.Minute
	VerdictCacheTTL = 30 * time.Minute
)
