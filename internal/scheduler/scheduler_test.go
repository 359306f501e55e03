package scheduler_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Houeta/price-radar/internal/models"
	"github.com/Houeta/price-radar/internal/scheduler"
	"github.com/Houeta/price-radar/internal/services/checker"
	"github.com/Houeta/price-radar/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunOnce(t *testing.T) {
	ctx := t.Context()
	triggers := []models.Trigger{{Alert: models.Alert{ID: 1}}}

	testCases := []struct {
		name        string
		setupMocks  func(mCheck *mocks.Checker, mNotify *mocks.Notifier)
		expectedErr string
	}{
		{
			name: "Success: triggers are notified",
			setupMocks: func(mCheck *mocks.Checker, mNotify *mocks.Notifier) {
				mCheck.On("CheckAlerts", ctx).Return(triggers, nil).Once()
				mNotify.On("NotifyTriggers", ctx, triggers).Return(triggers, nil).Once()
				mCheck.On("MarkNotified", triggers).Once()
			},
		},
		{
			name: "Nothing triggered",
			setupMocks: func(mCheck *mocks.Checker, _ *mocks.Notifier) {
				mCheck.On("CheckAlerts", ctx).Return(nil, nil).Once()
			},
		},
		{
			name: "Partial triggers are still notified",
			setupMocks: func(mCheck *mocks.Checker, mNotify *mocks.Notifier) {
				mCheck.On("CheckAlerts", ctx).Return(triggers, errors.New("rate limiter wait")).Once()
				mNotify.On("NotifyTriggers", ctx, triggers).Return(triggers, nil).Once()
				mCheck.On("MarkNotified", triggers).Once()
			},
			expectedErr: "rate limiter wait",
		},
		{
			name: "Notification failure",
			setupMocks: func(mCheck *mocks.Checker, mNotify *mocks.Notifier) {
				mCheck.On("CheckAlerts", ctx).Return(triggers, nil).Once()
				mNotify.On("NotifyTriggers", ctx, triggers).Return(nil, errors.New("blocked")).Once()
			},
			expectedErr: "blocked",
		},
		{
			name: "Only delivered triggers are marked",
			setupMocks: func(mCheck *mocks.Checker, mNotify *mocks.Notifier) {
				both := append(triggers, models.Trigger{Alert: models.Alert{ID: 2}})
				mCheck.On("CheckAlerts", ctx).Return(both, nil).Once()
				mNotify.On("NotifyTriggers", ctx, both).Return(both[1:], errors.New("blocked")).Once()
				mCheck.On("MarkNotified", both[1:]).Once()
			},
			expectedErr: "blocked",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mCheck := mocks.NewChecker(t)
			mNotify := mocks.NewNotifier(t)
			tc.setupMocks(mCheck, mNotify)
			s := scheduler.New(newLogger(), mCheck, mNotify, nil)

			// Act
			err := s.RunOnce(ctx)

			// Assert
			if tc.expectedErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.expectedErr)
			require.ErrorContains(t, err, "scheduler.RunOnce")
		})
	}
}

func TestScheduler_RunOnce_RetriesUndelivered(t *testing.T) {
	ctx := t.Context()

	// Arrange
	alert := models.Alert{ID: 7, Email: "a@b.com", Product: "Phone X", TargetPrice: 1000}
	record := models.NewPriceRecord("Phone X", 900, nil, "amazon", nil, "", "")
	live := models.Live([]models.PlatformBucket{{Platform: "amazon", Records: []models.PriceRecord{record}}})
	expected := []models.Trigger{{Alert: alert, Record: record}}

	mAlerts := mocks.NewAlertLister(t)
	mAlerts.On("List").Return([]models.Alert{alert})
	mSearch := mocks.NewSearcher(t)
	mSearch.On("Search", ctx, "Phone X", mock.Anything).Return(live).Times(3)
	alertChecker := checker.NewChecker(newLogger(), mSearch, mAlerts, rate.NewLimiter(rate.Inf, 1))

	mNotify := mocks.NewNotifier(t)
	mNotify.On("NotifyTriggers", ctx, expected).Return(nil, errors.New("telegram down")).Once()
	mNotify.On("NotifyTriggers", ctx, expected).Return(expected, nil).Once()

	s := scheduler.New(newLogger(), alertChecker, mNotify, nil)

	// Act & Assert
	require.ErrorContains(t, s.RunOnce(ctx), "telegram down")
	require.NoError(t, s.RunOnce(ctx), "undelivered alert is triggered again")
	require.NoError(t, s.RunOnce(ctx), "delivered alert is not sent twice")
}

func TestScheduler_Start(t *testing.T) {
	t.Run("invalid interval", func(t *testing.T) {
		s := scheduler.New(newLogger(), mocks.NewChecker(t), mocks.NewNotifier(t), nil)

		require.ErrorIs(t, s.Start(t.Context(), 0), scheduler.ErrInvalidInterval)
	})

	t.Run("runs on schedule", func(t *testing.T) {
		// Arrange
		ran := make(chan struct{}, 1)
		mCheck := mocks.NewChecker(t)
		mCheck.On("CheckAlerts", mock.Anything).Return(nil, nil).Run(func(mock.Arguments) {
			select {
			case ran <- struct{}{}:
			default:
			}
		})
		s := scheduler.New(newLogger(), mCheck, mocks.NewNotifier(t), nil)

		// Act
		require.NoError(t, s.Start(t.Context(), time.Second))
		defer s.Stop()

		// Assert
		select {
		case <-ran:
		case <-time.After(5 * time.Second):
			assert.Fail(t, "alert check did not run")
		}
	})
}
