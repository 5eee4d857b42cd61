package production

import "strings"

func isValidOrderRef(orderRef string) bool {
	orderRef = strings.TrimSpace(orderRef)
	return orderRef != "" && len(orderRef) <= 128
}

func isValidProductionStatus(status string) bool {
	switch status {
	case "pending", "in_production", "quality_check", "completed":
		return true
	default:
		return false
	}
}
