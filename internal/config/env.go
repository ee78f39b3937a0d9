package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables recognized by applyEnv.
// The prefix convention follows QUILL_<SECTION>_<SETTING>.
const (
	EnvLogLevel             = "QUILL_LOG_LEVEL"
	EnvHistoryMaxEntries    = "QUILL_HISTORY_MAX_ENTRIES"
	EnvHistoryNoopSnapshots = "QUILL_HISTORY_NOOP_SNAPSHOTS"
	EnvScriptTimeoutSeconds = "QUILL_SCRIPT_TIMEOUT_SECONDS"
)

// applyEnv overrides cfg values from the environment.
// Unset variables leave the existing value; unparseable values are
// ignored rather than failing the load.
func applyEnv(cfg *Config) {
	if val, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Logging.Level = strings.ToLower(val)
	}

	if val, ok := os.LookupEnv(EnvHistoryMaxEntries); ok {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.History.MaxEntries = n
		}
	}

	if val, ok := os.LookupEnv(EnvHistoryNoopSnapshots); ok {
		if b, parsed := parseBool(val); parsed {
			cfg.History.NoopSnapshots = b
		}
	}

	if val, ok := os.LookupEnv(EnvScriptTimeoutSeconds); ok {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Script.TimeoutSeconds = n
		}
	}
}

// parseBool accepts the usual spellings plus yes/no and on/off.
func parseBool(s string) (value, ok bool) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	default:
		return false, false
	}
}
