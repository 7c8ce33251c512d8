// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/backend.go -destination=backend_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/tasks.go -destination=tasks_mock.go -package=mocks
