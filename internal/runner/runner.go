// Package runner resolves how a tool server package is launched on the
// host platform.
//
// Servers are distributed as npm packages and launched through npx. On
// Windows, npx is a .cmd shim that is only located through cmd.exe's
// executable search, so the invocation is wrapped as "cmd /c npx ...".
package runner

import (
	"runtime"

	"github.com/Dave-London/pare/internal/errors"
)

// Platform identifies the host platform family for command resolution.
type Platform string

// Platform values follow runtime.GOOS naming.
const (
	PlatformWindows Platform = "windows"
	PlatformDarwin  Platform = "darwin"
	PlatformLinux   Platform = "linux"
)

// Current returns the Platform for the running process.
func Current() Platform {
	return Platform(runtime.GOOS)
}

// Command is a resolved executable invocation.
type Command struct {
	// Command is the binary to execute.
	Command string

	// Args is the ordered argument vector.
	Args []string
}

// Resolve maps a package reference and platform to the command line that
// launches the server. It is a pure function: the same inputs always
// produce the same Command.
//
// Returns ErrInvalidPackage if pkg is empty.
func Resolve(pkg string, platform Platform) (Command, error) {
	if pkg == "" {
		return Command{}, errors.Wrap(errors.ErrInvalidPackage, "resolving command")
	}

	if platform == PlatformWindows {
		return Command{
			Command: "cmd",
			Args:    []string{"/c", "npx", "-y", pkg},
		}, nil
	}

	return Command{
		Command: "npx",
		Args:    []string{"-y", pkg},
	}, nil
}
