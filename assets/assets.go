// Package assets embeds the shaders of the space program.
package assets

import "embed"

//go:embed space.vert space.frag
var FS embed.FS
