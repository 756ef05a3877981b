package constants

const (
	// MaxTitleLength is the practical upper bound on tracker titles. Enforced
	// at the form/CLI boundary, not by the engines.
	MaxTitleLength = 38

	// DateFormat is the YYYY-MM-DD layout used by CLI flags and screens.
	DateFormat = "2006-01-02"
)
