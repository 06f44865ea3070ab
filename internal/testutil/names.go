// Package testutil holds helpers shared by the integration suites: a MongoDB
// test container and per-test database names.
package testutil

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// maxDBNameLength keeps generated names under MongoDB's 64 byte limit with
// room for the suffix.
const maxDBNameLength = 48

var dbNameSeq atomic.Int64

// SanitizeDBName turns a test name into a database name unique within the
// process. Characters MongoDB rejects in database names become underscores.
func SanitizeDBName(testName string) string {
	var b strings.Builder
	b.WriteString("cargo_")
	for _, r := range testName {
		if b.Len() >= maxDBNameLength {
			break
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	b.WriteByte('_')
	b.WriteString(strconv.FormatInt(dbNameSeq.Add(1), 10))
	return b.String()
}
