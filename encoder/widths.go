package encoder

// Field width table for the fixed-format line layout. The widths are
// compile-time constants and part of the on-wire text contract:
// downstream consumers locate fields by offset, so the header region is
// always exactly HeaderLen bytes regardless of input.
const (
	// LevelWidth holds the level display name, right-justified.
	LevelWidth = 7
	// FileWidth holds the source file name, right-justified.
	FileWidth = 30
	// LineWidth holds the zero-padded decimal line number.
	LineWidth = 5
	// FuncWidth holds the function name, right-justified.
	FuncWidth = 40

	// stampLen is the trailing "[hh:mm:ss 042ms]"-shaped timestamp suffix.
	stampLen = 16

	// HeaderLen is the exact serialized length of the fixed header:
	// four bracketed fields plus the timestamp suffix.
	HeaderLen = (LevelWidth + 2) + (FileWidth + 2) + (LineWidth + 2) + (FuncWidth + 2) + stampLen

	// SubsystemWidth is the width of the subsystem identifier field in
	// extended entries. At most SubsystemWidth-1 characters of the
	// caller's identifier are copied; the remainder is padding.
	SubsystemWidth = 20
	// SubsystemFieldLen is the bracketed subsystem field length.
	SubsystemFieldLen = SubsystemWidth + 2

	// MessageWidth bounds the formatted message body. A longer
	// rendering is truncated, never overflowed.
	MessageWidth = 200

	// MaxEntryLen and MaxExtEntryLen bound a complete plain and
	// extended line respectively.
	MaxEntryLen    = HeaderLen + MessageWidth
	MaxExtEntryLen = HeaderLen + SubsystemFieldLen + MessageWidth

	// lineModulus wraps line numbers into the LineWidth-digit field.
	lineModulus = 100000
)
