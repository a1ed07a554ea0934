package model

import (
	"bytes"
	"context"
	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// RemoteModel implements Preprocessor and Regressor against an HTTP model server
// exposing POST /transform and POST /predict.
//
// Each call is a single attempt; failures are returned to the caller unchanged.
// The model is safe for concurrent use.
type RemoteModel struct {
	session *http.Client
	baseURL string
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

type remoteRow struct {
	DistanceKm           float64 `json:"Distance_km"`
	Weather              string  `json:"Weather"`
	TrafficLevel         string  `json:"Traffic_Level"`
	TimeOfDay            string  `json:"Time_of_Day"`
	VehicleType          string  `json:"Vehicle_Type"`
	PreparationTimeMin   float64 `json:"Preparation_Time_min"`
	CourierExperienceYrs float64 `json:"Courier_Experience_yrs"`
}

type transformRequest struct {
	Row remoteRow `json:"row"`
}

type transformResponse struct {
	Features []float64 `json:"features"`
}

type predictRequest struct {
	Features []float64 `json:"features"`
}

type predictResponse struct {
	Prediction *float64 `json:"prediction"`
}

func NewRemoteModel(baseURL string, timeout time.Duration) (*RemoteModel, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("remote model: base url is empty")
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &RemoteModel{
		session: &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}, nil
}

func (m *RemoteModel) Transform(ctx context.Context, row domain.PredictionInput) (_ []float64, err error) {
	defer obs.Time(ctx, "model.remote.Transform")(&err)

	req := transformRequest{Row: remoteRow{
		DistanceKm:           row.DistanceKm,
		Weather:              string(row.Weather),
		TrafficLevel:         string(row.TrafficLevel),
		TimeOfDay:            string(row.TimeOfDay),
		VehicleType:          string(row.VehicleType),
		PreparationTimeMin:   row.PreparationTimeMin,
		CourierExperienceYrs: row.CourierExperienceYrs,
	}}

	var res transformResponse
	if err := m.postJSON(ctx, "/transform", req, &res); err != nil {
		return nil, fmt.Errorf("remote transform: %w", err)
	}
	if len(res.Features) == 0 {
		return nil, errors.New("remote transform: empty feature vector")
	}
	return res.Features, nil
}

func (m *RemoteModel) Predict(ctx context.Context, features []float64) (_ float64, err error) {
	defer obs.Time(ctx, "model.remote.Predict")(&err)

	var res predictResponse
	if err := m.postJSON(ctx, "/predict", predictRequest{Features: features}, &res); err != nil {
		return 0, fmt.Errorf("remote predict: %w", err)
	}
	if res.Prediction == nil {
		return 0, errors.New("remote predict: response has no prediction")
	}
	return *res.Prediction, nil
}

func (m *RemoteModel) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := m.newRequest(ctx, http.MethodPost, m.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}

	resp, err := m.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (m *RemoteModel) newRequest(
	ctx context.Context,
	method string,
	url string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

func (m *RemoteModel) do(req *http.Request) (*http.Response, error) {
	resp, err := m.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}
