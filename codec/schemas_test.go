package codec_test

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/hoverlab/aeropath/codec"
	"github.com/hoverlab/aeropath/flight"
)

// TestEncode_MatchesSchema validates real encoder output against the
// published result schema, so the wire record and its documentation cannot
// drift apart.
func TestEncode_MatchesSchema(t *testing.T) {
	schema, err := jsonschema.Compile(filepath.Join("..", "schemas", "result.schema.json"))
	if err != nil {
		t.Fatalf("compile result.schema.json: %v", err)
	}

	// Drive the full pipeline on a scenario with a climb and a recharge,
	// so the record carries non-trivial battery and altitude values.
	const input = `2 2 9 2
0 3
1 3
1
2 1
`
	g, err := codec.Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	res, err := flight.MinFlightTime(g)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !res.Reachable() {
		t.Fatal("scenario should be reachable")
	}

	var sb strings.Builder
	if err := codec.Encode(&sb, res); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var v any
	if err := json.Unmarshal([]byte(sb.String()), &v); err != nil {
		t.Fatalf("encoder output is not valid JSON: %v", err)
	}
	if err := schema.Validate(v); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
