package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldCategory   = "category"
	FieldMerchant   = "merchant"
	FieldRule       = "rule"
	FieldPattern    = "pattern"
	FieldPriority   = "priority"
	FieldSource     = "source"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
)
