package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hoverlab/aeropath/flight"
)

// Encode writes the result grammar to w in a single write:
//
//   - an unreachable destination encodes as the single sentinel line "-1";
//   - a reachable one encodes as one JSON record
//     {"time":T,"path":[{"row":..,"col":..,"battery":..,"altitude":..,"time":..},...]}.
//
// The record is marshaled fully before writing, so w never observes
// partial output. Complexity: O(L), L = route length.
func Encode(w io.Writer, res flight.Result) error {
	if !res.Reachable() {
		if _, err := io.WriteString(w, "-1\n"); err != nil {
			return fmt.Errorf("codec: write sentinel: %w", err)
		}

		return nil
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("codec: encode result: %w", err)
	}
	data = append(data, '\n')
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("codec: write result: %w", err)
	}

	return nil
}
