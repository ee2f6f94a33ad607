package pipeline

import (
	"testing"
	"time"

	"github.com/TeamsTransport/CaseInventory/internal/model"
)

func arrivedSet(dates ...model.Value) *model.RecordSet {
	rs := &model.RecordSet{File: "test.xlsx", Columns: []string{model.ColArrived}}
	for i, v := range dates {
		rec := model.NewRecord(9 + i)
		rec.Set(model.ColArrived, v)
		rs.Records = append(rs.Records, rec)
	}
	return rs
}

func TestTemporalFilter_ArrivedBounds(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	rs := arrivedSet(
		model.DateValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)),  // exact lower bound: dropped
		model.DateValue(time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC)),  // just inside: kept
		model.DateValue(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)),  // first of current month: dropped
		model.DateValue(time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)), // just inside: kept
		model.MissingValue(), // null: kept
	)

	ApplyTemporalFilters(rs, now)

	if len(rs.Records) != 3 {
		t.Fatalf("expected 3 kept records, got %d", len(rs.Records))
	}
}

func TestTemporalFilter_StorageEndsSentinel(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	rs := &model.RecordSet{File: "test.xlsx", Columns: []string{model.ColStorageEnds}}
	add := func(v model.Value) *model.Record {
		rec := model.NewRecord(9 + len(rs.Records))
		rec.Set(model.ColStorageEnds, v)
		rs.Records = append(rs.Records, rec)
		return rec
	}
	add(model.DateValue(time.Date(2000, 1, 31, 0, 0, 0, 0, time.UTC))) // sentinel boundary: kept
	add(model.DateValue(time.Date(2000, 2, 1, 0, 0, 0, 0, time.UTC)))  // past sentinel, stale: dropped
	add(model.DateValue(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))  // first of previous month: kept
	add(model.DateValue(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC))) // older: dropped
	add(model.MissingValue())                                          // null: kept

	ApplyTemporalFilters(rs, now)

	if len(rs.Records) != 3 {
		t.Fatalf("expected 3 kept records, got %d", len(rs.Records))
	}
}

func TestLocationFilter(t *testing.T) {
	t.Parallel()

	rs := &model.RecordSet{File: "test.xlsx", Columns: []string{model.ColLocation}}
	for _, loc := range []string{"Trailer", "WAREHOUSE", "transferred", "lost", ""} {
		rec := model.NewRecord(9 + len(rs.Records))
		if loc == "" {
			rec.Set(model.ColLocation, model.MissingValue())
		} else {
			rec.Set(model.ColLocation, model.StringValue(loc))
		}
		rs.Records = append(rs.Records, rec)
	}

	ApplyLocationFilter(rs)

	if len(rs.Records) != 3 {
		t.Fatalf("expected 3 kept records, got %d", len(rs.Records))
	}
}

func TestLocationFilter_AbsentColumnIsNoOp(t *testing.T) {
	t.Parallel()

	rs := &model.RecordSet{File: "test.xlsx", Columns: []string{"Case #"}}
	rec := model.NewRecord(9)
	rec.Set("Case #", model.StringValue("C1"))
	rs.Records = append(rs.Records, rec)

	ApplyLocationFilter(rs)

	if len(rs.Records) != 1 {
		t.Fatalf("records dropped without the location column")
	}
}
