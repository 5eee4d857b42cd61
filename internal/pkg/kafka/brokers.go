package kafka

import "strings"

// SplitBrokers turns a comma separated KAFKA_BROKERS value into addresses,
// dropping empty entries.
func SplitBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
