package resale

import (
	"context"
	"errors"
	"testing"
)

func TestStoreError(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	expired, stop := context.WithTimeout(context.Background(), 0)
	defer stop()
	<-expired.Done()

	driverErr := errors.New("connection reset by peer")
	tests := []struct {
		name            string
		ctx             context.Context
		err             error
		wantCanceled    bool
		wantUnavailable bool
	}{
		{name: "no error", ctx: context.Background()},
		{name: "driver failure", ctx: context.Background(), err: driverErr, wantUnavailable: true},
		{name: "canceled request", ctx: canceled, err: driverErr, wantCanceled: true},
		{name: "canceled error", ctx: context.Background(), err: context.Canceled, wantCanceled: true},
		{name: "timeout", ctx: expired, err: context.DeadlineExceeded, wantUnavailable: true},
		{name: "canceled without error", ctx: canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StoreError(tt.ctx, tt.err)
			if tt.err == nil && got != nil {
				t.Fatalf("StoreError() = %v, want nil", got)
			}
			if errors.Is(got, context.Canceled) != tt.wantCanceled {
				t.Errorf("StoreError() = %v, canceled = %v, want %v", got, !tt.wantCanceled, tt.wantCanceled)
			}
			if errors.Is(got, ErrStoreUnavailable) != tt.wantUnavailable {
				t.Errorf("StoreError() = %v, unavailable = %v, want %v", got, !tt.wantUnavailable, tt.wantUnavailable)
			}
		})
	}
}
