package validators

import (
	"testing"

	"github.com/BruksfildServices01/salon-console/internal/httperr"
)

func TestIsEmailValid(t *testing.T) {
	for _, ok := range []string{"ana@salao.com", "bia.souza@studio.com.br"} {
		if !IsEmailValid(ok) {
			t.Fatalf("%q should be valid", ok)
		}
	}
	for _, bad := range []string{"", "ana", "ana@", "@salao.com", "ana@localhost", "Ana <ana@salao.com>"} {
		if IsEmailValid(bad) {
			t.Fatalf("%q should be invalid", bad)
		}
	}
}

func TestRequired(t *testing.T) {
	if err := Required("Ana", "1199999"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Required("Ana", "  "); !httperr.IsBusiness(err, "missing_fields") {
		t.Fatalf("expected missing_fields, got %v", err)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ana@Salao.COM "); got != "ana@salao.com" {
		t.Fatalf("unexpected %q", got)
	}
}
