package api

import "fmt"

// ConfigError is returned when the invocation environment is missing or has malformed values.
type ConfigError struct {
	Variable string
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %v", e.Variable, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// SecretAccessError is returned when a secret cannot be fetched or its payload is unusable.
// SecretID is empty when the store itself could not be set up.
type SecretAccessError struct {
	SecretID string
	Err      error
}

func (e *SecretAccessError) Error() string {
	if e.SecretID == "" {
		return fmt.Sprintf("secrets store is unavailable: %v", e.Err)
	}
	return fmt.Sprintf("failed to access secret %q: %v", e.SecretID, e.Err)
}

func (e *SecretAccessError) Unwrap() error { return e.Err }

// ConnectionError is returned when the database cannot be reached or rejects the credentials.
type ConnectionError struct {
	Host string
	Port int
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s:%d: %v", e.Host, e.Port, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// SQLExecutionError is returned when any statement fails.
type SQLExecutionError struct {
	Step string
	Err  error
}

func (e *SQLExecutionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *SQLExecutionError) Unwrap() error { return e.Err }
