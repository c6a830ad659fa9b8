// Package key defines the configuration keys understood by swatch.
package key

// DefinedFieldsCount is the number of registered configuration fields.
const DefinedFieldsCount = 16

// Export - where and how finished palettes are written.
const (
	ExportPath       = "export.path"
	ExportFilename   = "export.filename"
	ExportResolution = "export.resolution"
	ExportJSON       = "export.json"
	ExportStrict     = "export.strict"
	ExportOpen       = "export.open"
	ExportOpenWith   = "export.open_with"
)

// Palette - color math switches.
const (
	PalettePerChannelTint = "palette.per_channel_tint"
)

// History - bookkeeping of exported files.
const (
	HistorySaveOnExport = "history.save_on_export"
)

// TUI - the interactive wizard.
const (
	TUITickMs   = "tui.tick_ms"
	TUIShowHelp = "tui.show_help"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI.
const (
	CliColored = "cli.colored"
)
