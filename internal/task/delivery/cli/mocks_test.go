package cli_test

import (
	"context"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
