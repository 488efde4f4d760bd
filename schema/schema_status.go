package schema

// SourceStatus represents the status of an SQL archive source.
type SourceStatus struct {
	Backend    string           `json:"backend"`
	Connected  bool             `json:"connected"`
	TableSizes map[string]int64 `json:"table_sizes"`
}
