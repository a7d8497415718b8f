// Package config defines Warden's configuration model and loading.
//
// Configuration is read from a YAML file, overlaid on built-in defaults, and
// then overridden by WARDEN_* environment variables. The final result is
// validated before use. A file watcher supports applying runtime-adjustable
// settings (currently the log level) without a restart; the moderation
// pattern catalog itself is built once at startup and never reloaded.
package config
