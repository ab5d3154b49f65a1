package api

import (
	"encoding/json"
	"fmt"
	"io"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// The remote API wraps every response in an envelope carrying a status
// string plus a resource field whose name varies per endpoint ("payload",
// "bookings", "payload.employees", counters on prune). The envelope is
// decoded generically and resources are pulled out with per-call
// JMESPath expressions.
type envelope struct {
	raw map[string]any
}

func decodeEnvelope(r io.Reader) (envelope, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return envelope{}, fmt.Errorf("decode response body: %w", err)
	}
	return envelope{raw: raw}, nil
}

func (e envelope) status() string {
	s, _ := e.raw["status"].(string)
	return s
}

func (e envelope) message() string {
	m, _ := e.raw["message"].(string)
	return m
}

// extract evaluates a JMESPath expression against the envelope and
// unmarshals the result into out. A nil result leaves out untouched.
func (e envelope) extract(expr string, out any) error {
	res, err := jmespath.Search(expr, e.raw)
	if err != nil {
		return fmt.Errorf("evaluate %q: %w", expr, err)
	}
	if res == nil {
		return nil
	}
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal extracted %q: %w", expr, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("unmarshal extracted %q: %w", expr, err)
	}
	return nil
}

// extractInt pulls a numeric counter out of the envelope.
func (e envelope) extractInt(expr string) (int, error) {
	res, err := jmespath.Search(expr, e.raw)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %w", expr, err)
	}
	f, ok := res.(float64)
	if !ok {
		return 0, nil
	}
	return int(f), nil
}
