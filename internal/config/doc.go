// Package config loads and watches the dramascope configuration file.
//
// Top-level sections:
//   - analyzer.extra_patterns — additional literal phrases per pattern
//     category, merged into the default catalog at startup
//   - alerts.rules — threshold conditions ("drama_score > 8") with severity
//     and cooldown, evaluated against every score record
//   - watch — directory and glob for watch mode
//   - telemetry — path for the Prometheus text exposition dump
//
// Load(path) reads the YAML file, applies defaults, then validates category
// names, condition shape, and severity enums.
//
// Watch(ctx, path, onChange) uses fsnotify to detect file changes and calls
// onChange with the newly parsed Config. It handles the rename→create pattern
// used by atomic-save editors by re-adding the watch after each reload.
package config
