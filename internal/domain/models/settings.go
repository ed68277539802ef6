package models

// Settings is everything the tool persists between runs. The file on disk
// may be missing or partial: repositories load it on top of DefaultSettings,
// so absent keys silently keep their defaults.
type Settings struct {
	DataDir       string `json:"data_dir"`       // directory holding the CSV/XLSX reference tables
	TableEncoding string `json:"table_encoding"` // IANA label, e.g. "utf-8" or "windows-1251"
	DefaultYear   string `json:"default_year"`   // prefill for the deployed-year field
	DefaultTechID string `json:"default_tech_id"`
	PrinterPort   string `json:"printer_port"` // COM port for label feed, empty = disabled
	PrinterBaud   int    `json:"printer_baud"`
	QRSize        int    `json:"qr_size"` // QR PNG side length in pixels
	LogLevel      string `json:"log_level"`
}

// DefaultSettings returns the shipped configuration. The tool must start
// and work from a bare double-click, so every default is self-contained.
func DefaultSettings() Settings {
	return Settings{
		DataDir:       ".",
		TableEncoding: "utf-8",
		DefaultYear:   "2026",
		DefaultTechID: "00A7",
		PrinterPort:   "",
		PrinterBaud:   9600,
		QRSize:        256,
		LogLevel:      "info",
	}
}
