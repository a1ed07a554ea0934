package obs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTimeDoesNotPanic(t *testing.T) {
	var err error
	Time(context.Background(), "ok.op")(&err)

	err = errors.New("boom")
	Time(context.Background(), "failed.op")(&err)

	Time(context.Background(), "nil.errp")(nil)
}

func TestMetricsHandlerExposesCollectors(t *testing.T) {
	PredictionsTotal.WithLabelValues("success").Inc()
	DatasetRecords.Set(3)

	rec := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"delivery_predictions_total", "delivery_dataset_records 3"} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q", want)
		}
	}
}
