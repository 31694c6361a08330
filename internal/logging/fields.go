package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldDate       = "date"
	FieldGame       = "game_id"
	FieldTeam       = "team"
	FieldFactor     = "factor"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
