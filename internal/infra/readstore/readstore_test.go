//go:build unit

package readstore_test

import (
	"strings"

	"go.uber.org/mock/gomock"
)

// sqlMatcher matches a statement that contains every fragment.
type sqlMatcher []string

func sqlWith(fragments ...string) gomock.Matcher {
	return sqlMatcher(fragments)
}

func (m sqlMatcher) Matches(x any) bool {
	sql, ok := x.(string)
	if !ok {
		return false
	}
	for _, f := range m {
		if !strings.Contains(sql, f) {
			return false
		}
	}
	return true
}

func (m sqlMatcher) String() string {
	return "SQL containing " + strings.Join(m, ", ")
}
