package macrocss

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ContentOptions are structured directives extracted from raw content before
// pattern matching: per-content variable overrides, component declarations
// and pregenerate token lists.
type ContentOptions struct {
	Variables   map[string]string
	Components  map[string][]string
	Pregenerate []string
}

// ContentOptionProcessor extracts directives from raw content. Processors
// are pluggable; a processor returning an error has its output dropped with
// a warning and compilation continues (directives are user-authored content,
// not configuration).
type ContentOptionProcessor func(content string) (ContentOptions, error)

func (o *ContentOptions) merge(other ContentOptions) {
	for name, value := range other.Variables {
		if o.Variables == nil {
			o.Variables = make(map[string]string)
		}
		o.Variables[name] = value
	}
	for alias, chains := range other.Components {
		if o.Components == nil {
			o.Components = make(map[string][]string)
		}
		o.Components[alias] = append(o.Components[alias], chains...)
	}
	o.Pregenerate = append(o.Pregenerate, other.Pregenerate...)
}

// Directive blocks: "macrocss-<name> <body> /macrocss-<name>" anywhere in
// content, typically inside template or markup comments. Variable and
// component bodies are JSON; pregenerate bodies are whitespace-separated
// tokens.
var (
	variablesDirective   = regexp.MustCompile(`(?s)macrocss-variables\b(.*?)/macrocss-variables`)
	componentsDirective  = regexp.MustCompile(`(?s)macrocss-components\b(.*?)/macrocss-components`)
	pregenerateDirective = regexp.MustCompile(`(?s)macrocss-pregenerate\b(.*?)/macrocss-pregenerate`)
	anyDirective         = regexp.MustCompile(`(?s)macrocss-(variables|components|pregenerate)\b.*?/macrocss-(?:variables|components|pregenerate)`)
	directiveMarker      = regexp.MustCompile(`/?macrocss-(?:variables|components|pregenerate)\b`)
)

// wellFormedDirective reports whether a block stripped by anyDirective closes
// with the tag matching its opener, i.e. one of the per-name parsers can
// consume it.
func wellFormedDirective(block string) bool {
	return variablesDirective.MatchString(block) ||
		componentsDirective.MatchString(block) ||
		pregenerateDirective.MatchString(block)
}

// processDirectives runs the built-in directive syntax over content.
// Malformed bodies are dropped, never fatal.
func processDirectives(content string) (ContentOptions, []string) {
	var opts ContentOptions
	var warnings []string

	for _, m := range variablesDirective.FindAllStringSubmatch(content, -1) {
		vars := make(map[string]string)
		if err := json.Unmarshal([]byte(m[1]), &vars); err != nil {
			warnings = append(warnings, fmt.Sprintf("malformed macrocss-variables directive dropped: %v", err))
			continue
		}
		opts.merge(ContentOptions{Variables: vars})
	}

	for _, m := range componentsDirective.FindAllStringSubmatch(content, -1) {
		comps, err := parseComponentsBody([]byte(m[1]))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("malformed macrocss-components directive dropped: %v", err))
			continue
		}
		opts.merge(ContentOptions{Components: comps})
	}

	for _, m := range pregenerateDirective.FindAllStringSubmatch(content, -1) {
		opts.merge(ContentOptions{Pregenerate: strings.Fields(m[1])})
	}

	// A block whose closing tag names a different directive parses as nothing
	// above yet is still stripped from scanning; surface its loss.
	for _, block := range anyDirective.FindAllString(content, -1) {
		if !wellFormedDirective(block) {
			warnings = append(warnings, fmt.Sprintf("mismatched macrocss directive block dropped: %s", firstLine(block)))
		}
	}

	// Markers outside any open/close pairing: an opener that never closes, or
	// a stray closing tag.
	for _, marker := range directiveMarker.FindAllString(anyDirective.ReplaceAllString(content, " "), -1) {
		warnings = append(warnings, fmt.Sprintf("dangling directive marker %q ignored", marker))
	}

	return opts, warnings
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// parseComponentsBody accepts either {"alias": "chain"} or
// {"alias": ["chain", "chain"]}.
func parseComponentsBody(body []byte) (map[string][]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	comps := make(map[string][]string, len(raw))
	for alias, val := range raw {
		var single string
		if err := json.Unmarshal(val, &single); err == nil {
			comps[alias] = []string{single}
			continue
		}
		var many []string
		if err := json.Unmarshal(val, &many); err != nil {
			return nil, fmt.Errorf("component %q: expected string or string list", alias)
		}
		comps[alias] = many
	}
	return comps, nil
}

// stripDirectives removes directive blocks so their bodies are not scanned
// as utility tokens.
func stripDirectives(content string) string {
	return anyDirective.ReplaceAllString(content, " ")
}
