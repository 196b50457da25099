package registry

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name           string
		wantOk         bool
		wantDeprecated bool
		wantReplacedBy string
	}{
		{name: Block, wantOk: true},
		{name: BroadcastTxCommit, wantOk: true, wantDeprecated: true, wantReplacedBy: SendTx},
		{name: ExperimentalChangesInBlock, wantOk: true, wantDeprecated: true, wantReplacedBy: BlockEffects},
		{name: "eth_blockNumber", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Lookup(tt.name)
			if ok != tt.wantOk {
				t.Fatalf("Lookup() ok = %v, want %v", ok, tt.wantOk)
			}
			if !ok {
				return
			}
			if m.Name != tt.name {
				t.Errorf("Name = %s, want %s", m.Name, tt.name)
			}
			if m.Deprecated() != tt.wantDeprecated {
				t.Errorf("Deprecated() = %v, want %v", m.Deprecated(), tt.wantDeprecated)
			}
			if m.ReplacedBy != tt.wantReplacedBy {
				t.Errorf("ReplacedBy = %s, want %s", m.ReplacedBy, tt.wantReplacedBy)
			}
		})
	}
}

func TestReplacementsAreKnown(t *testing.T) {
	for name, m := range Methods {
		if !m.Deprecated() {
			continue
		}
		replacement, ok := Methods[m.ReplacedBy]
		if !ok {
			t.Errorf("%s is replaced by unknown method %s", name, m.ReplacedBy)
			continue
		}
		if replacement.Deprecated() {
			t.Errorf("%s is replaced by deprecated %s", name, m.ReplacedBy)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 31 {
		t.Errorf("len(Names()) = %d, want 31", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted at %d: %s >= %s", i, names[i-1], names[i])
		}
	}
}
