package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"delivery-time-service/internal/adapters/model"
	"delivery-time-service/internal/domain"
)

type fakePreprocessor struct {
	calls int
	out   []float64
	err   error
}

func (f *fakePreprocessor) Transform(ctx context.Context, in domain.PredictionInput) ([]float64, error) {
	f.calls++
	return f.out, f.err
}

type fakeRegressor struct {
	calls int
	out   float64
	err   error
}

func (f *fakeRegressor) Predict(ctx context.Context, features []float64) (float64, error) {
	f.calls++
	return f.out, f.err
}

func validInput() domain.PredictionInput {
	return domain.PredictionInput{
		DistanceKm:           10,
		Weather:              domain.WeatherClear,
		TrafficLevel:         domain.TrafficHigh,
		TimeOfDay:            domain.TimeEvening,
		VehicleType:          domain.VehicleBike,
		PreparationTimeMin:   15,
		CourierExperienceYrs: 2,
	}
}

func TestPredictWithStubModel(t *testing.T) {
	stub := model.NewStubModel()

	p, err := Predict(context.Background(), validInput(), stub, stub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 10 + 3*10 + 5*2 - 0.5*2
	if p.EstimatedDeliveryMin != 49 {
		t.Fatalf("estimate = %v, want 49", p.EstimatedDeliveryMin)
	}
	if p.TotalOrderTimeMin != 64 {
		t.Fatalf("total = %v, want 64", p.TotalOrderTimeMin)
	}
	if p.Input != validInput() {
		t.Fatalf("input not echoed: %+v", p.Input)
	}
}

func TestPredictCallsEachCollaboratorOnce(t *testing.T) {
	pre := &fakePreprocessor{out: []float64{1, 2}}
	reg := &fakeRegressor{out: 30}

	p, err := Predict(context.Background(), validInput(), pre, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pre.calls != 1 || reg.calls != 1 {
		t.Fatalf("calls = %d/%d, want 1/1", pre.calls, reg.calls)
	}
	if p.TotalOrderTimeMin != 45 {
		t.Fatalf("total = %v, want 45", p.TotalOrderTimeMin)
	}
}

func TestPredictWrapsCollaboratorFailures(t *testing.T) {
	boom := errors.New("boom")

	pre := &fakePreprocessor{err: boom}
	reg := &fakeRegressor{}
	_, err := Predict(context.Background(), validInput(), pre, reg)
	if !errors.Is(err, ErrPrediction) || !errors.Is(err, boom) {
		t.Fatalf("transform failure: err = %v", err)
	}
	if reg.calls != 0 {
		t.Fatalf("regressor called after transform failure")
	}

	pre = &fakePreprocessor{out: []float64{1}}
	reg = &fakeRegressor{err: boom}
	_, err = Predict(context.Background(), validInput(), pre, reg)
	if !errors.Is(err, ErrPrediction) || !errors.Is(err, boom) {
		t.Fatalf("predict failure: err = %v", err)
	}
	if reg.calls != 1 {
		t.Fatalf("regressor calls = %d, want 1 (no retry)", reg.calls)
	}

	reg = &fakeRegressor{out: math.NaN()}
	if _, err := Predict(context.Background(), validInput(), pre, reg); !errors.Is(err, ErrPrediction) {
		t.Fatalf("NaN estimate: err = %v, want ErrPrediction", err)
	}
}

func TestPredictRejectsInvalidInput(t *testing.T) {
	pre := &fakePreprocessor{out: []float64{1}}
	reg := &fakeRegressor{out: 1}

	in := validInput()
	in.DistanceKm = -1
	if _, err := Predict(context.Background(), in, pre, reg); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative distance: err = %v, want ErrInvalidInput", err)
	}

	in = validInput()
	in.Weather = "Hail"
	if _, err := Predict(context.Background(), in, pre, reg); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown weather: err = %v, want ErrInvalidInput", err)
	}

	if pre.calls != 0 {
		t.Fatalf("preprocessor called for invalid input")
	}
}
