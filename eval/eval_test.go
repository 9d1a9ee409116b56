package eval

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/go-rtti/encode"
	"github.com/signadot/tony-format/go-rtti/internal/sample"
	"github.com/signadot/tony-format/go-rtti/ir"
	"github.com/signadot/tony-format/go-rtti/meta"
)

func john(t *testing.T) (*sample.Person, meta.Any) {
	t.Helper()
	r, err := sample.NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	p := sample.NewPerson("John", 1.7, sample.SexFemale)
	p.SetPhoneNumber(sample.NewPhoneNumber("+86", "13888888888"))
	a, err := meta.Wrap(r, p)
	if err != nil {
		t.Fatal(err)
	}
	return p, a
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want any
	}{
		{"field", `name`, "John"},
		{"predicate", `height > 1.5 && sex == "Female"`, true},
		{"nested", `phoneNumber.areaCode + " " + phoneNumber.number`, "+86 13888888888"},
		{"method", `GetName() + "!"`, "John!"},
		{"bool method", `IsFemale() && !IsMale()`, true},
		{"static", `GetTotalNumber() > 0`, true},
		{"struct result", `GetPhoneNumber().number`, "13888888888"},
		{"enum result", `GetSex()`, "Female"},
		{"pointer result", `Name()`, "John"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, a := john(t)
			got, err := Eval(tc.expr, a)
			if err != nil {
				t.Fatalf("Eval(%q) error = %v", tc.expr, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Eval(%q) mismatch (-want +got):\n%s", tc.expr, diff)
			}
		})
	}
}

func TestEvalMutates(t *testing.T) {
	p, a := john(t)
	if _, err := Eval(`SetName("Jane")`, a); err != nil {
		t.Fatal(err)
	}
	if p.GetName() != "Jane" {
		t.Errorf("GetName() = %q, want Jane", p.GetName())
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"unknown name", `age > 3`},
		{"syntax", `name ==`},
		{"argument type", `SetName(3)`},
		{"argument count", `SetName()`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, a := john(t)
			if _, err := Eval(tc.expr, a); err == nil {
				t.Errorf("Eval(%q) expected error", tc.expr)
			}
		})
	}
}

type counter struct {
	hits uint64
}

func TestEvalLargeUnsigned(t *testing.T) {
	r := meta.NewRegistry()
	err := r.Register(meta.Struct[counter]("counter").Fields(
		meta.FieldOf("hits", func(c *counter) *uint64 { return &c.hits }),
	))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Freeze(); err != nil {
		t.Fatal(err)
	}
	a, err := meta.Wrap(r, &counter{hits: math.MaxUint64})
	if err != nil {
		t.Fatal(err)
	}
	got, err := Eval(`hits`, a)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(any(uint64(math.MaxUint64)), got); diff != "" {
		t.Errorf("Eval(hits) mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvOfNonStruct(t *testing.T) {
	a, err := meta.Wrap(nil, 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := EnvOf(a); !errors.Is(err, ErrEval) {
		t.Errorf("EnvOf(int) error = %v, want ErrEval", err)
	}
}

func TestToNode(t *testing.T) {
	_, a := john(t)
	env, err := EnvOf(a)
	if err != nil {
		t.Fatal(err)
	}
	node, err := ToNode(env)
	if err != nil {
		t.Fatal(err)
	}
	got := render(t, node)
	want := mustNode(t, map[string]any{
		"height":      float64(float32(1.7)),
		"name":        "John",
		"phoneNumber": map[string]any{"areaCode": "+86", "number": "13888888888"},
		"sex":         "Female",
	})
	if got != want {
		t.Errorf("ToNode(env) = %s, want %s", got, want)
	}
}

func mustNode(t *testing.T, v any) string {
	t.Helper()
	n, err := ToNode(v)
	if err != nil {
		t.Fatal(err)
	}
	return render(t, n)
}

func render(t *testing.T, n *ir.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := encode.Encode(n, &buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}
