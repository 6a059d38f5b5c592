// Package timeseries extracts one flat row per data point from metric and
// time-series shaped JSON documents.
//
// Two strategies are tried in order and the first one producing rows wins:
//
//   - Azure reads the fixed Azure Monitor metrics shape
//     (values[].value[].timeseries[].data[]) and tags every data point with its
//     time window, metric descriptor and timeseries index.
//   - Detect searches the tree for an array whose elements carry a time field
//     (timeStamp, timestamp, time, date, datetime, createdAt, updatedAt) and
//     emits one row per element, prefixed by the scalar fields of its ancestors.
//
// Detect stops at the first qualifying array in document order by default.
// WithCollectAll makes it gather every qualifying array instead.
package timeseries
