// Package resources embeds the bundled scenario definitions.
package resources

import "embed"

//go:embed scenarios/*.yaml
var ScenarioFiles embed.FS
