package models

// DefaultCategory is the terminal fallback category. It always exists with an
// empty keyword list and is only ever returned when nothing else matched.
const DefaultCategory = "Other"

// Comparison operators accepted by rule conditions. Dates do not support
// OperatorNotEqual.
const (
	OperatorEqual          = "=="
	OperatorNotEqual       = "!="
	OperatorGreater        = ">"
	OperatorGreaterOrEqual = ">="
	OperatorLess           = "<"
	OperatorLessOrEqual    = "<="
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionOutputFile = 0644
)
