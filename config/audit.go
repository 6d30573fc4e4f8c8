package config

import (
	"fmt"
	"os"
	"strconv"
)

const defaultAuditTTLMinutes = 10080 // one week

type AuditConfig struct {
	TableName  string
	TTLMinutes int
}

// GetAuditConfig returns nil when AUDIT_TABLE_NAME is unset; the audit trail
// is an optional deployment feature.
func GetAuditConfig() (*AuditConfig, error) {
	tableName := os.Getenv("AUDIT_TABLE_NAME")
	if tableName == "" {
		return nil, nil
	}

	ttlMinutes := defaultAuditTTLMinutes
	if raw := os.Getenv("AUDIT_TTL_MINUTES"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse AUDIT_TTL_MINUTES: %w", err)
		}
		ttlMinutes = parsed
	}

	return &AuditConfig{
		TableName:  tableName,
		TTLMinutes: ttlMinutes,
	}, nil
}
