package config

const (
	MaxInterviewBodyBytes = 1 << 20 // 1MB
)
