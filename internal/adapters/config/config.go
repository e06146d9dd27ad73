package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arumata/solidnotify/internal/usecase"
)

// Adapter reads TOML configuration files.
type Adapter struct {
	logger *slog.Logger
}

// New creates a new config adapter.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		panic("config adapter requires logger")
	}
	return &Adapter{logger: logger}
}

// Load reads config from path. An empty path or a missing file yields defaults.
func (a *Adapter) Load(ctx context.Context, path string) (usecase.ConfigFile, error) {
	if strings.TrimSpace(path) == "" {
		return usecase.DefaultConfigFile(), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - path comes from --config
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			a.logger.DebugContext(ctx, "Config file not found, using defaults", "path", path)
			return usecase.DefaultConfigFile(), nil
		}
		return usecase.ConfigFile{}, err
	}

	cfg := usecase.DefaultConfigFile()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return usecase.ConfigFile{}, fmt.Errorf("parse config toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		a.logger.WarnContext(ctx, "Unknown config keys ignored", "path", path, "keys", fmt.Sprint(undecoded))
	}
	a.logger.DebugContext(ctx, "Config loaded", "path", path)
	return cfg, nil
}

// Render returns cfg as a TOML document with inline documentation.
func (a *Adapter) Render(cfg usecase.ConfigFile) string {
	return renderCommentedTOML(cfg)
}

func renderCommentedTOML(cfg usecase.ConfigFile) string {
	return fmt.Sprintf(`# solidnotify configuration
# Pass with: solidnotify --config <path>

# ── Notifiers ────────────────────────────────────────────────────
[notifier]

# Line prefix printed before every email message.
email_prefix = %[1]q

# Line prefix printed before every SMS message.
sms_prefix = %[2]q

# ── Notification Log ─────────────────────────────────────────────
[logger]

# Where "Notification sent to ..." entries go:
#   console - standard output (default)
#   discard - nowhere
sink = %[3]q

# Line prefix printed before every log entry.
prefix = %[4]q

# ── Diagnostics ──────────────────────────────────────────────────
[logging]

# Minimum level of stderr diagnostics: debug, info, warn, error.
level = %[5]q
`,
		cfg.Notifier.EmailPrefix,
		cfg.Notifier.SMSPrefix,
		cfg.Logger.Sink,
		cfg.Logger.Prefix,
		cfg.Logging.Level,
	)
}
