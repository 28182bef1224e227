package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// parseArg reads a command-line argument as a JSON literal so that typed
// checks can be exercised: 42 is a number, "42" (quoted) and SAVE10 are
// strings, true is a bool. Anything that is not valid JSON is taken verbatim.
func parseArg(raw string) any {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return raw
	}
	if v == nil {
		return raw
	}
	return v
}

func parseInt(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ExitError{Code: ExitCommandError, Message: fmt.Sprintf("%s must be an integer, got %q", name, raw)}
	}
	return n, nil
}

func parseFloat(name, raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ExitError{Code: ExitCommandError, Message: fmt.Sprintf("%s must be a number, got %q", name, raw)}
	}
	return f, nil
}
