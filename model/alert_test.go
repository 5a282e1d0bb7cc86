package model

import (
	"testing"

	"github.com/tj/assert"
)

func TestParseSeverity(t *testing.T) {
	cases := []struct {
		in   string
		want Severity
	}{
		{"warning", SeverityWarning},
		{"Warning", SeverityWarning},
		{"  WATCH ", SeverityWatch},
		{"advisory", SeverityAdvisory},
		{"", SeverityUnknown},
		{"extreme", SeverityUnknown},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseSeverity(c.in))
	}
}

func TestAlertSeverity(t *testing.T) {
	a := Alert{Title: "Flood Watch", SeverityRaw: "watch"}
	assert.Equal(t, SeverityWatch, a.Severity())
	assert.Equal(t, "watch", a.Severity().String())

	assert.Equal(t, SeverityUnknown, Alert{}.Severity())
	assert.Equal(t, "unknown", SeverityUnknown.String())
}
