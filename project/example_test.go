// SPDX-License-Identifier: EPL-2.0

package project_test

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ik5/audmix/project"
)

func ExampleBuild() {
	const doc = `
sample_rate = 8000

[sources.beep]
kind = "sine"
frequency = 1000.0
amplitude = 0.3
seconds = 0.1

[sources.left]
kind = "dual"
of = "beep"
side = "left"

[[tracks]]
source = "left"
at = [0.0, 0.5, 1.0]

[[effects]]
kind = "echo"
delay = 0.1
slope = 0.5
dry = true
`
	p, err := project.Parse([]byte(doc), project.FormatTOML, zerolog.Nop())
	if err != nil {
		fmt.Println(err)
		return
	}

	mix, err := project.Build(p, zerolog.Nop())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d channels, %d frames\n", mix.Channels(), mix.Length())
	// Output: 2 channels, 9600 frames
}
