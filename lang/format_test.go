package lang

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatJSON(t *testing.T) {
	t.Parallel()

	e, err := ParseAST("2 days before next friday")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := FormatJSON(t.Context(), &buf, e, 0); err != nil {
		t.Fatalf("FormatJSON() error: %v", err)
	}

	want := `{"duration":[{"count":2,"unit":"day"}],"from":{"date":` +
		`{"specifier":"next","type":"RelativeWeekday","weekday":"friday"},"type":"Date"},` +
		`"type":"Ago"}` + "\n"
	if buf.String() != want {
		t.Errorf("FormatJSON()\n got: %s\nwant: %s", buf.String(), want)
	}
}

func TestFormatJSON_Indent(t *testing.T) {
	t.Parallel()

	v, err := Parse("tomorrow at 9:30", monday)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := FormatJSON(t.Context(), &buf, v, 2); err != nil {
		t.Fatalf("FormatJSON() error: %v", err)
	}

	want := "{\n  \"type\": \"datetime\",\n  \"value\": \"2024-01-16 09:30:00\"\n}\n"
	if buf.String() != want {
		t.Errorf("FormatJSON()\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestFormatJSON_Tree(t *testing.T) {
	t.Parallel()

	root, err := ParseTree("now")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := FormatJSON(t.Context(), &buf, root, 0); err != nil {
		t.Fatalf("FormatJSON() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	if got["rule"] != "HumanTime" || got["alternate"] != float64(5) {
		t.Errorf("root = %v, want HumanTime alternate 5", got)
	}

	children, _ := got["children"].([]any)
	if len(children) != 1 {
		t.Fatalf("children = %v, want one leaf", got["children"])
	}

	leaf, _ := children[0].(map[string]any)
	if leaf["rule"] != "now" || leaf["text"] != "now" || leaf["column"] != float64(1) {
		t.Errorf("leaf = %v", leaf)
	}
}

func TestFormatYAML(t *testing.T) {
	t.Parallel()

	e, err := ParseAST("first day of march 2025")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := FormatYAML(t.Context(), &buf, e, 2); err != nil {
		t.Fatalf("FormatYAML() error: %v", err)
	}

	for _, want := range []string{
		"type: Date\n",
		"type: OrdinalUnitOf\n",
		"ordinal: first\n",
		"unit: day\n",
		"type: MonthYear\n",
		"month: march\n",
		"year: 2025\n",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("FormatYAML() output does not contain %q:\n%s", want, buf.String())
		}
	}
}

func TestFormatYAML_Flow(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := FormatYAML(t.Context(), &buf, Now{}, 0); err != nil {
		t.Fatalf("FormatYAML() error: %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "{type: Now}" {
		t.Errorf("FormatYAML() = %q, want %q", got, "{type: Now}")
	}
}
