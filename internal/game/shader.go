package game

// backgroundShaderSrc paints a slow radial glow behind the sphere. Time is the
// sphere material clock, Boost the current compressed amplitude.
const backgroundShaderSrc = `//kage:unit pixels

package main

var Time float
var Boost float
var Resolution vec2

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	uv := (dstPos.xy - imageDstOrigin()) / Resolution
	d := distance(uv, vec2(0.5, 0.5))
	pulse := 0.08 + 0.04*sin(Time*2.0) + 0.02*clamp(Boost, 0.0, 3.0)
	v := clamp(pulse*(1.0-d*1.6), 0.0, 1.0)
	return vec4(v*0.35, v*0.12, v*0.5, 1.0)
}
`
