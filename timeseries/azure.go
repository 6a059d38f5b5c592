package timeseries

import "github.com/arloliu/jsonxl/value"

// Row keys produced by Azure, in column order.
const (
	KeyStartTime       = "startTime"
	KeyEndTime         = "endTime"
	KeyInterval        = "interval"
	KeyMetricID        = "metricId"
	KeyMetricName      = "metricName"
	KeyMetricType      = "metricType"
	KeyMetricUnit      = "metricUnit"
	KeyTimeSeriesIndex = "timeSeriesIndex"
)

const unnamedMetric = "Unnamed"

// Azure extracts rows from an Azure Monitor metrics document. It returns nil
// when doc does not have a "values" array or no data point is found.
//
// Data point fields are merged last and overwrite descriptor fields of the same
// name. Missing descriptor fields are null.
func Azure(doc value.Value) []*value.Object {
	windows, ok := field(doc, "values").AsArray()
	if !ok {
		return nil
	}

	var rows []*value.Object
	for _, window := range windows {
		startTime := field(window, "starttime")
		endTime := field(window, "endtime")
		interval := field(window, "interval")

		metrics, ok := field(window, "value").AsArray()
		if !ok {
			continue
		}

		for _, metric := range metrics {
			metricName := metricNameOf(metric)
			series, ok := field(metric, "timeseries").AsArray()
			if !ok {
				continue
			}

			for tsIndex, ts := range series {
				points, ok := field(ts, "data").AsArray()
				if !ok {
					continue
				}

				for _, point := range points {
					row := value.NewObjectSize(8)
					row.Set(KeyStartTime, startTime)
					row.Set(KeyEndTime, endTime)
					row.Set(KeyInterval, interval)
					row.Set(KeyMetricID, field(metric, "id"))
					row.Set(KeyMetricName, metricName)
					row.Set(KeyMetricType, field(metric, "type"))
					row.Set(KeyMetricUnit, field(metric, "unit"))
					row.Set(KeyTimeSeriesIndex, value.Int(int64(tsIndex)))
					if obj, ok := point.AsObject(); ok {
						row.Merge(obj)
					}
					rows = append(rows, row)
				}
			}
		}
	}

	return rows
}

// metricNameOf prefers name.value, then name.localizedValue, and falls back
// to "Unnamed" when the metric has no name.
func metricNameOf(metric value.Value) value.Value {
	name := field(metric, "name")
	if !name.Truthy() {
		return value.String(unnamedMetric)
	}
	if v := field(name, "value"); v.Truthy() {
		return v
	}

	return field(name, "localizedValue")
}

// field returns v[key], or null when v is not an object or lacks key.
func field(v value.Value, key string) value.Value {
	f, _ := v.Get(key)
	return f
}
