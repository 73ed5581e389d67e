package app

import "time"

type Config struct {
	APIURL string

	LogLevel string
	LogFile  string

	RequestTimeout time.Duration
	ChartWidth     int
}
