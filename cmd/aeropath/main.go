// Command aeropath is the drone flight-time solver binary: it reads one
// problem description from stdin, runs the search, and writes one result
// record to stdout.
//
// The binary is designed to run as an isolated subprocess under an
// external orchestration layer that owns input-size caps, wall-clock
// timeouts, and concurrency limits. It takes no flags, reads no
// environment, and keeps no state: stdin in, a single write to stdout
// (the JSON record, or the line "-1" when the destination is
// unreachable), exit 0. Malformed input reports on stderr with exit 1.
package main

import (
	"fmt"
	"os"

	"github.com/hoverlab/aeropath/codec"
	"github.com/hoverlab/aeropath/flight"
)

func main() {
	g, err := codec.Decode(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "aeropath:", err)
		os.Exit(1)
	}

	res, err := flight.MinFlightTime(g)
	if err != nil {
		fmt.Fprintln(os.Stderr, "aeropath:", err)
		os.Exit(1)
	}

	if err := codec.Encode(os.Stdout, res); err != nil {
		fmt.Fprintln(os.Stderr, "aeropath:", err)
		os.Exit(1)
	}
}
