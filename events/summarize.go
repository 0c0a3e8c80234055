package events

import (
	"strings"

	"github.com/thec00n/osmosis-cli-wrapper/types"
)

const attributeSeparator = ", "

// NameResolver maps a raw address to a human readable contract name.
type NameResolver interface {
	ResolveName(address string) (string, bool)
}

// Summarize renders events as one `--> type( key: value, ... )` line each.
// With decode set, attribute keys and values are base64-decoded first.
// Values that resolve to a contract name are annotated as `value (name)`.
// Sentinel "tx" events are skipped.
func Summarize(evts []types.Event, decode bool, names NameResolver) string {
	var sb strings.Builder
	for _, event := range evts {
		if event.IsSentinel() {
			continue
		}
		writeEvent(&sb, event, decode, names)
	}
	return sb.String()
}

func writeEvent(sb *strings.Builder, event types.Event, decode bool, names NameResolver) {
	sb.WriteString("--> ")
	sb.WriteString(event.Type)
	sb.WriteString("( ")

	attrs := make([]string, 0, len(event.Attributes))
	for _, attr := range event.Attributes {
		key, value := attr.Key, attr.Value
		if decode {
			key = DisplayString(Decode(key))
			value = DisplayString(Decode(value))
		}
		attrs = append(attrs, key+": "+annotate(value, names))
	}
	// joining leaves no trailing separator, and nothing at all for
	// an event without attributes
	sb.WriteString(strings.Join(attrs, attributeSeparator))

	sb.WriteString(" )\n")
}

func annotate(value string, names NameResolver) string {
	if names == nil {
		return value
	}
	if name, ok := names.ResolveName(value); ok && name != "" {
		return value + " (" + name + ")"
	}
	return value
}
