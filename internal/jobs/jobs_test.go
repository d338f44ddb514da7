package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRefreshHandler struct{ mock.Mock }

func (m *MockRefreshHandler) Handle(ctx context.Context, cmd commands.RefreshDataCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockReportHandler struct{ mock.Mock }

func (m *MockReportHandler) Handle(ctx context.Context, cmd commands.SendReportCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockJob struct{ mock.Mock }

func (m *MockJob) Start() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockJob) Stop() { m.Called() }

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRefreshJob_RunOnce(t *testing.T) {
	handler := new(MockRefreshHandler)
	handler.On("Handle", mock.Anything, commands.NewRefreshDataCommand()).Return(errors.New("boom")).Once()
	job := jobs.NewRefreshJob(handler, "0 */5 * * * *", discard())

	err := job.RunOnce(t.Context())

	require.EqualError(t, err, "boom")
	handler.AssertExpectations(t)
}

func TestRefreshJob_Start(t *testing.T) {
	t.Run("runs on schedule", func(t *testing.T) {
		// Given
		called := make(chan struct{}, 1)
		handler := new(MockRefreshHandler)
		handler.On("Handle", mock.Anything, mock.Anything).Return(nil).Run(func(mock.Arguments) {
			select {
			case called <- struct{}{}:
			default:
			}
		})
		job := jobs.NewRefreshJob(handler, "* * * * * *", discard())

		// When
		require.NoError(t, job.Start())
		defer job.Stop()

		// Then
		select {
		case <-called:
		case <-time.After(3 * time.Second):
			t.Fatal("refresh job did not run")
		}
	})

	t.Run("invalid schedule", func(t *testing.T) {
		job := jobs.NewRefreshJob(new(MockRefreshHandler), "every now and then", discard())

		require.Error(t, job.Start())
	})
}

func TestReportJob_Start_InvalidSchedule(t *testing.T) {
	cmd, err := commands.NewSendReportCommand("Report", "")
	require.NoError(t, err)
	job := jobs.NewReportJob(new(MockReportHandler), cmd, "", discard())

	require.Error(t, job.Start())
}

func TestJobManager(t *testing.T) {
	t.Run("starts in order and stops in reverse", func(t *testing.T) {
		first, second := new(MockJob), new(MockJob)
		var order []string
		first.On("Start").Return(nil).Once()
		second.On("Start").Return(nil).Once()
		first.On("Stop").Run(func(mock.Arguments) { order = append(order, "first") }).Once()
		second.On("Stop").Run(func(mock.Arguments) { order = append(order, "second") }).Once()
		jm := jobs.NewJobManager(first, second)

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.Equal(t, []string{"second", "first"}, order)
		first.AssertExpectations(t)
		second.AssertExpectations(t)
	})

	t.Run("failed start stops the started jobs", func(t *testing.T) {
		first, second := new(MockJob), new(MockJob)
		first.On("Start").Return(nil).Once()
		first.On("Stop").Once()
		second.On("Start").Return(errors.New("bad schedule")).Once()
		jm := jobs.NewJobManager(first, second)

		err := jm.StartAll()

		require.ErrorContains(t, err, "bad schedule")
		first.AssertExpectations(t)
		second.AssertNotCalled(t, "Stop")
	})
}
