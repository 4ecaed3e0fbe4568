package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/alecthomas/kong"

	"github.com/ardnew/humandate/lang"
)

type testCLI struct {
	Ref Reference `embed:""`

	Parse Parse `cmd:"" default:"withargs"`
	AST   AST   `cmd:"" name:"ast"`
	Eval  Eval  `cmd:""`
	Init  Init  `cmd:""`
}

const testNow = "2024-01-15T12:00:00"

// run parses args and runs the selected command with stdin in and a
// configuration file at confPath.
func run(t *testing.T, confPath, in string, args ...string) (string, error) {
	t.Helper()

	var (
		cli testCLI
		out bytes.Buffer
	)

	ctx := WithStreams(context.Background(), strings.NewReader(in), &out)

	parser, err := kong.New(&cli,
		kong.Exit(func(code int) { t.Fatalf("exit %d", code) }),
		kong.BindSingletonProvider(func() context.Context { return ctx }),
		kong.Bind(&cli.Ref),
		kong.Vars{
			ConfigIdentifier: confPath,
			CacheIdentifier:  t.TempDir(),
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("parse %q: %v", args, err)
	}

	ctx = WithContext(ctx, ktx)

	err = ktx.Run()

	return out.String(), err
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default command", []string{"next", "friday"}, "2024-01-19\n"},
		{"explicit", []string{"parse", "tomorrow at 9:30"}, "2024-01-16 09:30:00\n"},
		{"time", []string{"17:30"}, "17:30:00\n"},
		{"monday week", []string{"-w", "monday", "1st day of last week"}, "2024-01-08\n"},
		{"sunday week", []string{"1st day of last week"}, "2024-01-07\n"},
		{"json", []string{"parse", "-o", "json", "today"},
			"{\n  \"type\": \"date\",\n  \"value\": \"2024-01-15\"\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"--now", testNow}, tt.args...)

			got, err := run(t, "", "", args...)
			if err != nil {
				t.Fatal(err)
			}

			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_YAML(t *testing.T) {
	t.Parallel()

	got, err := run(t, "", "", "--now", testNow, "parse", "-o", "yaml", "today")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"type: date\n", "2024-01-15"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q does not contain %q", got, want)
		}
	}
}

func TestParse_Stdin(t *testing.T) {
	t.Parallel()

	got, err := run(t, "", "today\n\nyesterday\nin 2 days\n", "--now", testNow, "parse", "-")
	if err != nil {
		t.Fatal(err)
	}

	if want := "2024-01-15\n2024-01-14\n2024-01-17 12:00:00\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	got, err = run(t, "", "today\nsomeday\n", "--now", testNow, "parse")
	if !errors.Is(err, ErrResolve) {
		t.Errorf("error = %v, want %v", err, ErrResolve)
	}

	if got != "2024-01-15\n" {
		t.Errorf("output = %q", got)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want error
	}{
		{[]string{"--now", testNow, "someday"}, lang.ErrUnparseable},
		{[]string{"--now", testNow, "31 april"}, lang.ErrProcessing},
		{[]string{"--now", "whenever", "today"}, ErrInvalidNow},
	}

	for _, tt := range tests {
		_, err := run(t, "", "", tt.args...)
		if !errors.Is(err, tt.want) {
			t.Errorf("%q: error = %v, want %v", tt.args, err, tt.want)
		}
	}
}

func TestAST(t *testing.T) {
	t.Parallel()

	got, err := run(t, "", "", "ast", "10:00", "on", "friday")
	if err != nil {
		t.Fatal(err)
	}

	if got != "friday at 10:00\n" {
		t.Errorf("output = %q", got)
	}

	got, err = run(t, "", "", "ast", "-o", "tree", "today")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(got, "today") {
		t.Errorf("tree output = %q", got)
	}

	if _, err := run(t, "", "", "ast", "-"); !errors.Is(err, ErrNoInput) {
		t.Errorf("error = %v, want %v", err, ErrNoInput)
	}
}

func TestEval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want string
	}{
		{`days("today", "next friday")`, "4\n"},
		{`weekday("tomorrow")`, "tuesday\n"},
		{`when("tomorrow")`, "2024-01-16T00:00:00Z\n"},
		{`kind("17:30") == "time"`, "true\n"},
	}

	for _, tt := range tests {
		got, err := run(t, "", "", "--now", testNow, "eval", tt.expr)
		if err != nil {
			t.Fatalf("%s: %v", tt.expr, err)
		}

		if got != tt.want {
			t.Errorf("%s = %q, want %q", tt.expr, got, tt.want)
		}
	}

	if _, err := run(t, "", "", "eval", "when("); !errors.Is(err, ErrEvaluate) {
		t.Errorf("error = %v, want %v", err, ErrEvaluate)
	}
}

func TestInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")

	if _, err := run(t, path, "", "--week-start", "monday", "init"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(data), "week-start: monday") {
		t.Errorf("config =\n%s", data)
	}

	if strings.Contains(string(data), "help") || strings.Contains(string(data), "now:") {
		t.Errorf("config has unset or ignored flags:\n%s", data)
	}

	if _, err := run(t, path, "", "init"); !errors.Is(err, ErrFileExists) {
		t.Errorf("error = %v, want %v", err, ErrFileExists)
	}

	if _, err := run(t, path, "", "init", "--force"); err != nil {
		t.Errorf("forced init: %v", err)
	}
}

func TestReference_Instant(t *testing.T) {
	t.Parallel()

	wall := time.Date(2024, 1, 15, 12, 30, 45, 999, time.Local)

	tests := []struct {
		now  string
		want string
	}{
		{"", "2024-01-15T12:30:45"},
		{"2024-03-01", "2024-03-01T00:00:00"},
		{"9:00", "2024-01-15T09:00:00"},
		{"2024-03-01 08:15:00", "2024-03-01T08:15:00"},
		{"yesterday at 12:00", "2024-01-14T12:00:00"},
	}

	for _, tt := range tests {
		ref := Reference{Now: tt.now}

		got, err := ref.Instant(context.Background(), wall)
		if err != nil {
			t.Errorf("%q: %v", tt.now, err)

			continue
		}

		want, _ := civil.ParseDateTime(tt.want)
		if got != want {
			t.Errorf("%q = %v, want %v", tt.now, got, want)
		}
	}
}

func TestPhrase(t *testing.T) {
	t.Parallel()

	for words, want := range map[string]string{
		"":              "",
		"-":             "",
		" next friday ": "next friday",
	} {
		if got := phrase(strings.Fields(words)); got != want {
			t.Errorf("phrase(%q) = %q, want %q", words, got, want)
		}
	}
}
