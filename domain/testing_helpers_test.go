package domain_test

import (
	"testing"

	"making-change/domain"
	"making-change/shared"
)

// denom finds a denomination of the default catalog by name.
func denom(t *testing.T, name string) shared.Denomination {
	t.Helper()
	d, err := domain.DefaultCatalog().Lookup(name)
	if err != nil {
		t.Fatalf("lookup %q: %v", name, err)
	}
	return d
}

func counts(p *domain.Purse) map[string]int64 {
	out := make(map[string]int64)
	for d, c := range p.Snapshot() {
		out[d.Name] = c
	}
	return out
}
