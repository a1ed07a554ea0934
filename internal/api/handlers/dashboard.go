package handlers

import (
	"delivery-time-service/internal/api/dto"
	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/platform/logger"
	"delivery-time-service/internal/services"
	"errors"
	"net/http"
)

const (
	maxBuckets          = 200
	defaultDeliveryPage = 100
	maxDeliveryPage     = 1000
)

// DashboardHandler serves the exploratory views over the historical dataset.
type DashboardHandler struct {
	Dataset     *services.Dataset
	DefaultBins int
}

func (h *DashboardHandler) bins() int {
	if h.DefaultBins > 0 {
		return h.DefaultBins
	}
	return services.DefaultBucketCount
}

// writeFilterError maps filter parsing failures to 400.
func writeFilterError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		writeError(w, r, http.StatusBadRequest, "experience_min must not exceed experience_max")
	default:
		writeError(w, r, http.StatusBadRequest, err.Error())
	}
}

// Dashboard computes every dashboard panel for the requested filters.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	spec, err := parseFilterSpec(q)
	if err != nil {
		writeFilterError(w, r, err)
		return
	}

	bins, err := intParam(q, "bins", h.bins(), 1, maxBuckets)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	d, err := services.BuildDashboard(r.Context(), h.Dataset.Records(), spec, bins)
	if err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("build dashboard failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.DashboardResponse{
		Filters:        filtersResponse(spec),
		DatasetRecords: d.Records,
		Metrics: dto.MetricsResponse{
			TotalOrders:        d.Metrics.Count,
			AvgDistanceKm:      nullable(d.Metrics.AvgDistanceKm),
			AvgPrepTimeMin:     nullable(d.Metrics.AvgPrepTimeMin),
			AvgExperienceYrs:   nullable(d.Metrics.AvgExperienceYrs),
			AvgDeliveryTimeMin: nullable(d.Metrics.AvgDeliveryTimeMin),
		},
		VehicleDistribution: make([]dto.ShareResponse, 0, len(d.VehicleDistribution)),
		TimeOfDayCounts:     groupsResponse(d.TimeOfDayCounts),
		TrafficCounts:       groupsResponse(d.TrafficCounts),
		WeatherCounts:       groupsResponse(d.WeatherCounts),
		AvgDeliveryByFactor: make([]dto.FactorAveragesResponse, 0, len(d.AvgDeliveryByFactor)),
		DeliveryHistogram:   histogramResponse(d.DeliveryHistogram),
		Scatters:            make([]dto.ScatterResponse, 0, len(d.Scatters)),
	}

	for _, s := range d.VehicleDistribution {
		res.VehicleDistribution = append(res.VehicleDistribution, dto.ShareResponse{
			Category:   s.Category,
			Count:      s.Count,
			Percentage: s.Percentage,
		})
	}
	for _, fa := range d.AvgDeliveryByFactor {
		res.AvgDeliveryByFactor = append(res.AvgDeliveryByFactor, dto.FactorAveragesResponse{
			Factor: string(fa.Factor),
			Groups: groupsResponse(fa.Groups),
		})
	}
	for _, sc := range d.Scatters {
		out := dto.ScatterResponse{
			X:      string(sc.X),
			Y:      string(domain.FieldDeliveryTimeMin),
			Points: make([]dto.PointResponse, 0, len(sc.Points)),
		}
		for _, p := range sc.Points {
			out.Points = append(out.Points, dto.PointResponse{X: p.X, Y: p.Y})
		}
		if sc.Trend != nil {
			out.Trend = &dto.TrendResponse{
				Slope:     sc.Trend.Slope,
				Intercept: sc.Trend.Intercept,
				From:      dto.PointResponse{X: sc.Trend.From.X, Y: sc.Trend.From.Y},
				To:        dto.PointResponse{X: sc.Trend.To.X, Y: sc.Trend.To.Y},
			}
		}
		res.Scatters = append(res.Scatters, out)
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Options lists the selectable values for each filter.
func (h *DashboardHandler) Options(w http.ResponseWriter, r *http.Request) {
	opts := services.FilterOptions(h.Dataset.Records())

	writeJSON(w, r, http.StatusOK, dto.FilterOptionsResponse{
		VehicleTypes:  opts.VehicleTypes,
		TrafficLevels: opts.TrafficLevels,
		Weathers:      opts.Weathers,
		TimesOfDay:    opts.TimesOfDay,
		Experience:    dto.RangeResponse{Min: opts.Experience.Min, Max: opts.Experience.Max},
	})
}

// Groups exposes a single grouped aggregate over the filtered subset.
// Query: factor (required), agg=count|mean (default count), field (required for mean),
// sort=value_desc|label (default: the factor's natural order).
func (h *DashboardHandler) Groups(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	spec, err := parseFilterSpec(q)
	if err != nil {
		writeFilterError(w, r, err)
		return
	}

	factor, err := domain.ParseFactor(q.Get("factor"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "factor must be one of vehicle_type, traffic_level, weather, time_of_day")
		return
	}

	aggRaw := q.Get("agg")
	if aggRaw == "" {
		aggRaw = string(services.AggCount)
	}
	agg, err := services.ParseAggFunc(aggRaw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "agg must be count or mean")
		return
	}

	var field domain.NumericField
	if agg == services.AggMean {
		if field, err = domain.ParseNumericField(q.Get("field")); err != nil {
			writeError(w, r, http.StatusBadRequest, "field must name a numeric field for agg=mean")
			return
		}
	}

	sortBy := q.Get("sort")
	switch sortBy {
	case "", "value_desc", "label":
	default:
		writeError(w, r, http.StatusBadRequest, "sort must be value_desc or label")
		return
	}

	subset := services.ApplyFilters(h.Dataset.Records(), spec)
	groups, err := services.GroupAggregate(subset, factor, field, agg)
	if err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("group aggregate failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	switch sortBy {
	case "value_desc":
		services.SortByValueDesc(groups)
	case "label":
		services.SortByLabel(groups)
	}

	writeJSON(w, r, http.StatusOK, dto.GroupAggregateResponse{
		Factor:      string(factor),
		Field:       string(field),
		Aggregation: string(agg),
		Groups:      groupsResponse(groups),
	})
}

// Histogram buckets one numeric field of the filtered subset.
// Query: field (default delivery_time_min), bins.
func (h *DashboardHandler) Histogram(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	spec, err := parseFilterSpec(q)
	if err != nil {
		writeFilterError(w, r, err)
		return
	}

	field := domain.FieldDeliveryTimeMin
	if raw := q.Get("field"); raw != "" {
		if field, err = domain.ParseNumericField(raw); err != nil {
			writeError(w, r, http.StatusBadRequest, "field must name a numeric field")
			return
		}
	}

	bins, err := intParam(q, "bins", h.bins(), 1, maxBuckets)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	subset := services.ApplyFilters(h.Dataset.Records(), spec)
	hist, err := services.HistogramBuckets(subset, field, bins)
	if err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("histogram failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, histogramResponse(hist))
}

// Deliveries returns the filtered subset, capped by limit.
func (h *DashboardHandler) Deliveries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	spec, err := parseFilterSpec(q)
	if err != nil {
		writeFilterError(w, r, err)
		return
	}

	limit, err := intParam(q, "limit", defaultDeliveryPage, 1, maxDeliveryPage)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	subset := services.ApplyFilters(h.Dataset.Records(), spec)
	page := subset
	if len(page) > limit {
		page = page[:limit]
	}

	res := dto.ListDeliveriesResponse{
		Total:      len(subset),
		Returned:   len(page),
		Deliveries: make([]dto.DeliveryResponse, 0, len(page)),
	}
	for _, d := range page {
		res.Deliveries = append(res.Deliveries, dto.DeliveryResponse{
			DistanceKm:           d.DistanceKm,
			Weather:              string(d.Weather),
			TrafficLevel:         string(d.TrafficLevel),
			TimeOfDay:            string(d.TimeOfDay),
			VehicleType:          string(d.VehicleType),
			PreparationTimeMin:   d.PreparationTimeMin,
			CourierExperienceYrs: d.CourierExperienceYrs,
			DeliveryTimeMin:      d.DeliveryTimeMin,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func groupsResponse(groups []services.GroupValue) []dto.GroupResponse {
	out := make([]dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupResponse{Category: g.Category, Count: g.Count, Value: g.Value})
	}
	return out
}

func histogramResponse(h services.Histogram) dto.HistogramResponse {
	res := dto.HistogramResponse{
		Field:      string(h.Field),
		Computable: h.Computable,
		Buckets:    make([]dto.BucketResponse, 0, len(h.Buckets)),
	}
	if h.Computable {
		res.Min = nullable(h.Min)
		res.Max = nullable(h.Max)
	}
	for _, b := range h.Buckets {
		res.Buckets = append(res.Buckets, dto.BucketResponse{Lower: b.Lower, Upper: b.Upper, Count: b.Count})
	}
	return res
}
