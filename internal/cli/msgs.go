package cli

// Command descriptions
const (
	MsgRootShort     = "Choose which items go into each package"
	MsgPackShort     = "Pack records from a file or stdin"
	MsgGenerateShort = "Generate random valid records"
	MsgConfigShort   = "Print the effective configuration"
	MsgVersionShort  = "Print version information"
)
