// Package mocks provides mock implementations for testing the HRMS UI
// API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe
// mocks for the ports interfaces. Hand-written doubles for the auth
// ports live in the auth subpackage.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mock for the Backend interface from internal/ports.
// This creates MockBackend with a Call method matching ports.Backend.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=backend_mock.go github.com/hireloop/hrms-ui-api/internal/ports Backend

// Generate mock for the CacheRepository interface from internal/ports.
// This creates MockCacheRepository with Get, Set and Delete methods.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/hireloop/hrms-ui-api/internal/ports CacheRepository
