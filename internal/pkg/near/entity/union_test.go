package entity

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestUnion_Decode(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantVariant string
		wantErr     bool
	}{
		{name: "unit case as string", input: `"FullAccess"`, wantVariant: "FullAccess"},
		{
			name:        "payload case",
			input:       `{"FunctionCall":{"receiver_id":"contract.near","method_names":["a"]}}`,
			wantVariant: "FunctionCall",
		},
		{name: "unknown case", input: `"Owner"`, wantErr: true},
		{name: "two keys", input: `{"FullAccess":{},"FunctionCall":{}}`, wantErr: true},
		{name: "payload missing", input: `"FunctionCall"`, wantErr: true},
		{name: "not an object", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p AccessKeyPermissionView
			err := json.Unmarshal([]byte(tt.input), &p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := p.Variant(); got != tt.wantVariant {
				t.Errorf("Variant() = %s, want %s", got, tt.wantVariant)
			}
		})
	}
}

func TestUnion_UnknownVariantError(t *testing.T) {
	var p AccessKeyPermissionView
	err := json.Unmarshal([]byte(`"Owner"`), &p)

	var unknown *UnknownVariantError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *UnknownVariantError", err)
	}
	if unknown.Type != "AccessKeyPermissionView" || unknown.Variant != "Owner" {
		t.Errorf("got %+v", unknown)
	}
}

func TestUnion_EncodeEmpty(t *testing.T) {
	_, err := json.Marshal(AccessKeyPermissionView{})
	if !errors.Is(err, ErrEmptyUnion) {
		t.Errorf("Marshal() error = %v, want ErrEmptyUnion", err)
	}
}

func TestUnion_DecodeResetsPreviousCase(t *testing.T) {
	var p AccessKeyPermissionView
	if err := json.Unmarshal([]byte(`{"FunctionCall":{"receiver_id":"a.near","method_names":["m"]}}`), &p); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`"FullAccess"`), &p); err != nil {
		t.Fatal(err)
	}
	if p.FunctionCall != nil {
		t.Errorf("FunctionCall survived a second decode")
	}
	if p.Variant() != "FullAccess" {
		t.Errorf("Variant() = %s", p.Variant())
	}
}

func TestUnionVariants(t *testing.T) {
	got := UnionVariants(AccessKeyPermissionView{})
	want := []string{"FullAccess", "FunctionCall"}
	if len(got) != len(want) {
		t.Fatalf("UnionVariants() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UnionVariants()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestBlockId(t *testing.T) {
	tests := []struct {
		input       string
		wantVariant string
		wantString  string
	}{
		{input: `137500000`, wantVariant: "BlockHeight", wantString: "137500000"},
		{
			input:       `"7Q1pL2eKWucpzrfBkeXVoPmn1r7WrWeFYGiRk4CuRwbk"`,
			wantVariant: "CryptoHash",
			wantString:  "7Q1pL2eKWucpzrfBkeXVoPmn1r7WrWeFYGiRk4CuRwbk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.wantVariant, func(t *testing.T) {
			var id BlockId
			if err := json.Unmarshal([]byte(tt.input), &id); err != nil {
				t.Fatal(err)
			}
			if id.Variant() != tt.wantVariant {
				t.Errorf("Variant() = %s, want %s", id.Variant(), tt.wantVariant)
			}
			if id.String() != tt.wantString {
				t.Errorf("String() = %s, want %s", id.String(), tt.wantString)
			}

			out, err := json.Marshal(id)
			if err != nil {
				t.Fatal(err)
			}
			if string(out) != tt.input {
				t.Errorf("Marshal() = %s, want %s", out, tt.input)
			}
		})
	}
}

func TestEpochReference(t *testing.T) {
	tests := []struct {
		input       string
		wantVariant string
		wantOut     string
	}{
		{input: `"latest"`, wantVariant: "latest", wantOut: `"latest"`},
		{input: `null`, wantVariant: "latest", wantOut: `"latest"`},
		{input: `{"block_id":17}`, wantVariant: "block_id", wantOut: `{"block_id":17}`},
		{
			input:       `{"epoch_id":"7Q1pL2eKWucpzrfBkeXVoPmn1r7WrWeFYGiRk4CuRwbk"}`,
			wantVariant: "epoch_id",
			wantOut:     `{"epoch_id":"7Q1pL2eKWucpzrfBkeXVoPmn1r7WrWeFYGiRk4CuRwbk"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var r RpcValidatorRequest
			if err := json.Unmarshal([]byte(tt.input), &r); err != nil {
				t.Fatal(err)
			}
			if r.Variant() != tt.wantVariant {
				t.Errorf("Variant() = %s, want %s", r.Variant(), tt.wantVariant)
			}

			out, err := json.Marshal(r)
			if err != nil {
				t.Fatal(err)
			}
			if string(out) != tt.wantOut {
				t.Errorf("Marshal() = %s, want %s", out, tt.wantOut)
			}
		})
	}
}
