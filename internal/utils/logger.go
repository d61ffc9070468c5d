package utils

import (
	"log"
	"strings"
)

// LogEvent prints one standardized line per domain event. Keep message a
// short summary; never log card details or tokens.
func LogEvent(requestID, module, action, message string) {
	if module == "" {
		module = "app"
	}
	log.Printf("[%s] action=%s request_id=%s msg=%s",
		strings.ToUpper(module), action, strings.TrimSpace(requestID), message)
}
