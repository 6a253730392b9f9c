// Package config loads the fraudwatch configuration from config.yaml.
//
// Sections:
//   - server    — HTTP port, API-key auth, run-history limit/TTL, WebSocket
//     broadcast interval, completion webhooks
//   - teams     — the investigation roster (name + skill factor)
//   - generator — default random-alert distributions for generated runs
//
// Load(path) applies defaults before unmarshalling, then validates.
// Watch(ctx, path, onChange) hot-reloads the file on write; a reload that
// fails to parse or validate keeps the previous config active.
package config
