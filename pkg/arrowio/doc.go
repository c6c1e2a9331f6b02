// Package arrowio bridges Arrow record batches and tabkit datasets.
//
// It is the engine's only external data boundary: any source that can
// produce an arrow.Record (Parquet readers, IPC streams, Flight) can
// feed the join, set-operation, and resampling engines through
// FromRecord, and materialized results flow back out through ToRecord.
//
// Arrow nulls map to the missing-value marker in both directions. Only
// INT64, FLOAT64, STRING, and BOOL columns are supported; anything else
// is rejected rather than silently coerced.
package arrowio
