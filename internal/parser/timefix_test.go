package parser

import (
	"testing"

	"github.com/TeamsTransport/CaseInventory/internal/model"
)

func recordSetWithColumn(col string, values ...model.Value) *model.RecordSet {
	rs := &model.RecordSet{File: "test.xlsx", Columns: []string{col}}
	for i, v := range values {
		rec := model.NewRecord(DataStartRow + i)
		rec.Set(col, v)
		rs.Records = append(rs.Records, rec)
	}
	return rs
}

func TestRectifyTimeColumns_RenamesMislabeledTimeColumn(t *testing.T) {
	t.Parallel()

	rs := recordSetWithColumn("Appt time", model.StringValue("14:30"), model.StringValue("9:05 AM"))
	RectifyTimeColumns(rs)

	if !rs.HasColumn(model.ColScheduledTime) {
		t.Fatalf("column not renamed: %v", rs.Columns)
	}
	if rs.Records[0].Get(model.ColScheduledTime).Str != "14:30" {
		t.Fatalf("values not carried over")
	}
}

func TestRectifyTimeColumns_AdjacentToScheduledDate(t *testing.T) {
	t.Parallel()

	rs := &model.RecordSet{
		File:    "test.xlsx",
		Columns: []string{model.ColScheduledDate, "Unnamed_5"},
	}
	rec := model.NewRecord(DataStartRow)
	rec.Set(model.ColScheduledDate, model.StringValue("2026-07-01"))
	rec.Set("Unnamed_5", model.StringValue("10:15:00"))
	rs.Records = append(rs.Records, rec)

	RectifyTimeColumns(rs)

	if !rs.HasColumn(model.ColScheduledTime) {
		t.Fatalf("adjacent time column not recovered: %v", rs.Columns)
	}
}

func TestRectifyTimeColumns_NoMatchIsNoOp(t *testing.T) {
	t.Parallel()

	rs := recordSetWithColumn("Touch time", model.StringValue("not a time"))
	RectifyTimeColumns(rs)

	if rs.HasColumn(model.ColScheduledTime) {
		t.Fatalf("column renamed without matching values")
	}
	if !rs.HasColumn("Touch time") {
		t.Fatalf("original column lost: %v", rs.Columns)
	}
}
