//go:build unit

package usecase_test

import (
	"log/slog"
	"testing"

	"hotel-registry/internal/usecase"
	"hotel-registry/internal/usecase/readmodel"
	"hotel-registry/tests/common/builder"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type registry struct {
	customers    *usecase.CustomerStore
	hotels       *usecase.HotelStore
	reservations *usecase.ReservationCoordinator
}

func newRegistry() *registry {
	logger := discardLogger()
	customers := usecase.NewCustomerStore(logger)
	hotels := usecase.NewHotelStore(logger)
	return &registry{
		customers:    customers,
		hotels:       hotels,
		reservations: usecase.NewReservationCoordinator(customers, hotels, logger),
	}
}

// seeded registers customer 1234 and hotel H1 in Tijuana with room 101
// available.
func seeded(t *testing.T) *registry {
	t.Helper()
	r := newRegistry()
	ctx := t.Context()

	_, err := r.customers.Create(ctx, builder.NewCustomerBuilder().BuildParams())
	require.NoError(t, err)
	_, report, err := r.hotels.Create(ctx, builder.NewHotelBuilder().BuildParams())
	require.NoError(t, err)
	require.False(t, report.HasFailures())
	return r
}

func requireClean(t *testing.T, report *readmodel.Report) {
	t.Helper()
	require.NotNil(t, report)
	require.Empty(t, report.Failures, "unexpected failures: %v", report.Err())
}

func failureFor(report *readmodel.Report, target string) error {
	for _, f := range report.Failures {
		if f.Target == target {
			return f.Err
		}
	}
	return nil
}
