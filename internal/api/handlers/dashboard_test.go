package handlers

import (
	"delivery-time-service/internal/api/dto"
	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/services"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testDataset() *services.Dataset {
	return services.NewDataset([]domain.DeliveryRecord{
		{DistanceKm: 2, Weather: domain.WeatherClear, TrafficLevel: domain.TrafficHigh, TimeOfDay: domain.TimeEvening, VehicleType: domain.VehicleBike, PreparationTimeMin: 10, CourierExperienceYrs: 1, DeliveryTimeMin: 30},
		{DistanceKm: 5, Weather: domain.WeatherRainy, TrafficLevel: domain.TrafficLow, TimeOfDay: domain.TimeMorning, VehicleType: domain.VehicleCar, PreparationTimeMin: 20, CourierExperienceYrs: 3, DeliveryTimeMin: 50},
		{DistanceKm: 8, Weather: domain.WeatherClear, TrafficLevel: domain.TrafficMedium, TimeOfDay: domain.TimeNight, VehicleType: domain.VehicleBike, PreparationTimeMin: 15, CourierExperienceYrs: 5, DeliveryTimeMin: 70},
	})
}

func serve(h http.HandlerFunc, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestDashboardHandler(t *testing.T) {
	h := &DashboardHandler{Dataset: testDataset()}

	rec := serve(h.Dashboard, http.MethodGet, "/dashboard?vehicle_type=bike&bins=4")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	res := decode[dto.DashboardResponse](t, rec)
	if res.DatasetRecords != 3 || res.Metrics.TotalOrders != 2 {
		t.Fatalf("records = %d, orders = %d", res.DatasetRecords, res.Metrics.TotalOrders)
	}
	if res.Metrics.AvgDeliveryTimeMin == nil || *res.Metrics.AvgDeliveryTimeMin != 50 {
		t.Fatalf("avg delivery = %v, want 50", res.Metrics.AvgDeliveryTimeMin)
	}
	if res.Filters.VehicleType == nil || *res.Filters.VehicleType != "Bike" {
		t.Fatalf("filters = %+v", res.Filters)
	}
	if len(res.DeliveryHistogram.Buckets) != 4 {
		t.Fatalf("got %d buckets, want 4", len(res.DeliveryHistogram.Buckets))
	}
}

func TestDashboardHandlerEmptySubsetUsesNulls(t *testing.T) {
	h := &DashboardHandler{Dataset: testDataset()}

	rec := serve(h.Dashboard, http.MethodGet, "/dashboard?weather=Snowy")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	res := decode[dto.DashboardResponse](t, rec)
	if res.Metrics.TotalOrders != 0 || res.Metrics.AvgDistanceKm != nil {
		t.Fatalf("metrics = %+v, want zero count and null averages", res.Metrics)
	}
	if res.DeliveryHistogram.Computable || res.DeliveryHistogram.Min != nil {
		t.Fatalf("histogram = %+v, want not computable", res.DeliveryHistogram)
	}
}

func TestDashboardHandlerBadFilters(t *testing.T) {
	h := &DashboardHandler{Dataset: testDataset()}

	for _, target := range []string{
		"/dashboard?experience_min=5&experience_max=2",
		"/dashboard?vehicle_type=Truck",
		"/dashboard?experience_min=abc",
		"/dashboard?experience_min=inf",
		"/dashboard?experience_max=-Inf",
		"/dashboard?bins=0",
	} {
		if rec := serve(h.Dashboard, http.MethodGet, target); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestGroupsHandler(t *testing.T) {
	h := &DashboardHandler{Dataset: testDataset()}

	rec := serve(h.Groups, http.MethodGet, "/dashboard/groups?factor=traffic_level")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	res := decode[dto.GroupAggregateResponse](t, rec)
	if len(res.Groups) != 3 || res.Groups[0].Category != "Low" || res.Groups[2].Category != "High" {
		t.Fatalf("groups = %+v", res.Groups)
	}

	rec = serve(h.Groups, http.MethodGet, "/dashboard/groups?factor=vehicle_type&agg=mean&field=delivery_time_min&sort=value_desc")
	res = decode[dto.GroupAggregateResponse](t, rec)
	// Bike and Car both average 50; ties fall back to label order.
	if len(res.Groups) != 2 || res.Groups[0].Category != "Bike" || res.Groups[1].Value != 50 {
		t.Fatalf("groups = %+v", res.Groups)
	}

	if rec := serve(h.Groups, http.MethodGet, "/dashboard/groups?factor=colour"); rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown factor: status = %d", rec.Code)
	}
	if rec := serve(h.Groups, http.MethodGet, "/dashboard/groups?factor=weather&agg=mean"); rec.Code != http.StatusBadRequest {
		t.Fatalf("mean without field: status = %d", rec.Code)
	}
	if rec := serve(h.Groups, http.MethodGet, "/dashboard/groups?factor=weather&sort=bogus"); rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown sort: status = %d", rec.Code)
	}

	rec = serve(h.Groups, http.MethodGet, "/dashboard/groups?factor=weather&sort=label")
	res = decode[dto.GroupAggregateResponse](t, rec)
	if len(res.Groups) != 2 || res.Groups[0].Category != "Clear" || res.Groups[1].Category != "Rainy" {
		t.Fatalf("label-sorted groups = %+v", res.Groups)
	}
}

func TestHistogramAndDeliveriesHandlers(t *testing.T) {
	h := &DashboardHandler{Dataset: testDataset()}

	rec := serve(h.Histogram, http.MethodGet, "/dashboard/histogram?field=distance_km&bins=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	hist := decode[dto.HistogramResponse](t, rec)
	if hist.Field != "distance_km" || len(hist.Buckets) != 3 {
		t.Fatalf("histogram = %+v", hist)
	}

	rec = serve(h.Deliveries, http.MethodGet, "/deliveries?traffic_level=All&limit=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	list := decode[dto.ListDeliveriesResponse](t, rec)
	if list.Total != 3 || list.Returned != 2 || list.Deliveries[0].VehicleType != "Bike" {
		t.Fatalf("deliveries = %+v", list)
	}
}

func TestOptionsHandler(t *testing.T) {
	h := &DashboardHandler{Dataset: testDataset()}

	rec := serve(h.Options, http.MethodGet, "/dashboard/options")
	res := decode[dto.FilterOptionsResponse](t, rec)
	if len(res.VehicleTypes) != 2 || res.Experience.Min != 1 || res.Experience.Max != 5 {
		t.Fatalf("options = %+v", res)
	}
}
