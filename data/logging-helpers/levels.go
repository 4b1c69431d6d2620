package logginghelpers

import "log/slog"

const (
	// Level Debug -4
	// catalog loading chatter, below the default server level
	LevelCatalogIO slog.Level = -2
	// Level Info 0
	// Level Warn 4
	// Level Error 8
	// a plan store inconsistency that should never happen
	LevelBrokenStore slog.Level = 12
)
