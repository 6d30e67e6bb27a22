package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/romdeps/internal/adapters/config"
	"go.trai.ch/romdeps/internal/app"
	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestApp(ctrl *gomock.Controller, logger *mocks.MockLogger) *app.App {
	return app.New(
		config.NewLoader(logger),
		logger,
		mocks.NewMockMetadataReaderFactory(ctrl),
		mocks.NewMockFileFinder(ctrl),
		mocks.NewMockCorpusWalker(ctrl),
		mocks.NewMockArtifactCopier(ctrl),
		mocks.NewMockApprovalStoreOpener(ctrl),
		mocks.NewMockDecisionProviderFactory(ctrl),
		mocks.NewMockProjector(ctrl),
		mocks.NewMockTracer(ctrl),
	)
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	application := newTestApp(ctrl, logger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: logger}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrSearchRootUnavailable.Error())
	})

	dir := t.TempDir()
	application := newTestApp(ctrl, logger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: logger}, func() {}, nil
	}

	exitCode := run(context.Background(),
		[]string{"resolve", "system/bin/app", "--root", filepath.Join(dir, "missing"), "--out", filepath.Join(dir, "out")},
		io.Discard, provider,
		func(a *app.App) { a.WithWorkingDir(dir).WithOutput(io.Discard) },
	)

	assert.Equal(t, 1, exitCode)
}

// TestRun_CleanupIsCalled verifies that the provider's cleanup runs after execution.
func TestRun_CleanupIsCalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	application := newTestApp(ctrl, logger)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: logger}, func() { cleaned = true }, nil
	}

	assert.Equal(t, 0, run(context.Background(), []string{"version"}, io.Discard, provider))
	assert.True(t, cleaned)
}
