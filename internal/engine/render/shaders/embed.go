// Package shaders embeds the GLSL sources used by the renderer.
package shaders

import _ "embed"

//go:embed instanced.vert
var InstancedVert string

//go:embed model.frag
var ModelFrag string

//go:embed flat.vert
var FlatVert string

//go:embed flat.frag
var FlatFrag string
