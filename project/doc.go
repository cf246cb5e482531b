// SPDX-License-Identifier: EPL-2.0

// Package project renders declarative mix files.
//
// A project names its sources, schedules them on a timeline and applies an
// effect chain to the mix. Files are TOML or YAML, picked by extension:
//
//	output = "out.wav"
//	sample_rate = 44100
//
//	[sources.tone]
//	kind = "sine"          # sine | file | dual
//	frequency = 440.0
//	amplitude = 0.5
//	seconds = 1.0
//
//	[sources.left]
//	kind = "dual"          # places a mono source on one side
//	of = "tone"
//	side = "left"
//
//	[[tracks]]
//	source = "left"
//	at = [0.0, 2.0, 4.0]   # seconds
//
//	[[effects]]
//	kind = "echo"          # echo | gain | downmix
//	delay = 0.25           # seconds
//	slope = 0.2
//	dry = true
//
// File sources accept start and end (seconds) to crop, and downmix to fold
// them to mono. Relative paths are resolved against the project file.
//
// Load and Build log their progress at debug level through the zerolog
// logger they are given.
package project
