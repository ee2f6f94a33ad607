package model

// Record one normalized row of extracted inventory data.
// SheetRow keeps the 1-based source row for raw-cell fallback reads.
type Record struct {
	SheetRow int
	Values   map[string]Value
}

// NewRecord creates an empty record for the given source row
func NewRecord(sheetRow int) *Record {
	return &Record{SheetRow: sheetRow, Values: map[string]Value{}}
}

// Get returns the value for col, or the missing marker when absent
func (r *Record) Get(col string) Value {
	if v, ok := r.Values[col]; ok {
		return v
	}
	return MissingValue()
}

// Set stores a value for col
func (r *Record) Set(col string, v Value) {
	r.Values[col] = v
}

// RecordSet an ordered sequence of records from one source file
type RecordSet struct {
	File    string
	Columns []string
	Records []*Record
}

// ColumnIndex returns the position of name in the column order
func (rs *RecordSet) ColumnIndex(name string) (int, bool) {
	for i, c := range rs.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// HasColumn reports whether name is part of the record set schema
func (rs *RecordSet) HasColumn(name string) bool {
	_, ok := rs.ColumnIndex(name)
	return ok
}

// RenameColumn renames a column in the schema and in every record
func (rs *RecordSet) RenameColumn(old, new string) {
	idx, ok := rs.ColumnIndex(old)
	if !ok || old == new {
		return
	}
	rs.Columns[idx] = new
	for _, rec := range rs.Records {
		if v, ok := rec.Values[old]; ok {
			delete(rec.Values, old)
			rec.Values[new] = v
		}
	}
}

// DropColumn removes a column from the schema and from every record
func (rs *RecordSet) DropColumn(name string) {
	idx, ok := rs.ColumnIndex(name)
	if !ok {
		return
	}
	rs.Columns = append(rs.Columns[:idx], rs.Columns[idx+1:]...)
	for _, rec := range rs.Records {
		delete(rec.Values, name)
	}
}

// Broadcast sets the same value for col on every record
func (rs *RecordSet) Broadcast(col string, v Value) {
	if !rs.HasColumn(col) {
		rs.Columns = append(rs.Columns, col)
	}
	for _, rec := range rs.Records {
		rec.Set(col, v)
	}
}

// Table the consolidated record table sharing one canonical schema
type Table struct {
	Columns []string
	Records []*Record
}

// HasColumn reports whether name is part of the table schema
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
