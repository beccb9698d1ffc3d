// Package database declares built-in patterns for database connection
// credentials.
package database

import (
	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/domain/values"
)

func ep(v float64) *float64 { return &v }

// Specs returns the database provider's built-in patterns.
func Specs() []pattern.Spec {
	return []pattern.Spec{
		{
			ID:             "database/connection-string-with-credentials",
			Group:          values.GroupDatabase,
			Name:           "Database Connection String with Embedded Credentials",
			Description:    "A connection URI carrying a plaintext username and password.",
			Severity:       values.SeverityHigh,
			Regex:          `(?i)\b(?:postgres(?:ql)?|mysql|mongodb(?:\+srv)?|redis|amqp)://[^\s:/@'"` + "`" + `]+:[^\s:/@'"` + "`" + `]+@[^\s'"` + "`" + `]+`,
			Keywords:       []string{"postgres://", "mysql://", "mongodb://", "mongodb+srv://", "redis://", "amqp://"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.0),
			Strategy:       values.StrategyRegex,
		},
		{
			ID:             "database/mongodb-srv-uri",
			Group:          values.GroupDatabase,
			Name:           "MongoDB Atlas SRV URI",
			Description:    "A MongoDB Atlas connection string, typically carrying a username/password pair.",
			Severity:       values.SeverityHigh,
			Regex:          `mongodb\+srv://[^\s'"` + "`" + `]+`,
			Keywords:       []string{"mongodb+srv://"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.0),
			Strategy:       values.StrategyRegex,
		},
	}
}
