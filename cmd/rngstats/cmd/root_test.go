package cmd

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grafana/rngstats/errors"
	"github.com/grafana/rngstats/report"
	"github.com/grafana/rngstats/rng"
	homedir "github.com/mitchellh/go-homedir"
	. "github.com/smartystreets/goconvey/convey"
)

func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "rngstats.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootDefaults(t *testing.T) {
	Convey("Without flags the reference table is printed", t, func() {
		cfg := writeConfig(t, "")
		out, _, err := execute("--config", cfg)
		So(err, ShouldBeNil)
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		So(lines, ShouldHaveLength, 14)
		So(lines[0], ShouldStartWith, "Generator")
		So(lines[1]+"\n", ShouldEqual, report.Separator)
		So(lines[2], ShouldStartWith, "math/rand.Rand             10 ")
		So(lines[12], ShouldStartWith, "math/rand/v2           100000 ")
	})
}

func TestRootIgnoresAmbientSettings(t *testing.T) {
	home := t.TempDir()
	dot := "variants: [gonum]\nsizes: [3]\n"
	if err := os.WriteFile(filepath.Join(home, ".rngstats.yaml"), []byte(dot), 0o644); err != nil {
		t.Fatal(err)
	}
	tilde := "variants: [exp]\nsizes: [2]\nformat: template\ntemplate: '{{.Generator}} {{.Count}};'\n"
	if err := os.WriteFile(filepath.Join(home, "tilde.yaml"), []byte(tilde), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", home)
	t.Setenv("RNGSTATS_VARIANTS", "gonum")
	t.Setenv("RNGSTATS_SIZES", "3")
	t.Setenv("RNGSTATS_FORMAT", "dump")
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()

	Convey("A plain run ignores the environment and files in the home directory", t, func() {
		out, _, err := execute()
		So(err, ShouldBeNil)
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		So(lines, ShouldHaveLength, 14)
		So(lines[0], ShouldStartWith, "Generator")
		names := []string{"math/rand.Rand", "math/rand", "math/rand/v2"}
		sizes := []string{"10", "1000", "100000"}
		for g, name := range names {
			for i, size := range sizes {
				fields := strings.Fields(lines[2+g*4+i])
				So(fields, ShouldHaveLength, 6)
				So(fields[0], ShouldEqual, name)
				So(fields[1], ShouldEqual, size)
			}
		}
	})

	Convey("An explicit config path may start with ~", t, func() {
		out, _, err := execute("--config", "~/tilde.yaml")
		So(err, ShouldBeNil)
		So(out, ShouldEqual, "x/exp/rand 2;")
	})
}

func TestRootFlags(t *testing.T) {
	cfg := writeConfig(t, "")

	Convey("Flags select variants, sizes and format", t, func() {
		out, _, err := execute("--config", cfg, "--variants", "gonum,exp", "--sizes", "3,0", "--format", "template", "--template", `{{.Generator}} {{.Count}}\n`)
		So(err, ShouldBeNil)
		So(out, ShouldEqual, "gonum/distuv 3\ngonum/distuv 0\nx/exp/rand 3\nx/exp/rand 0\n")
	})

	Convey("An unknown variant is a configuration error", t, func() {
		out, _, err := execute("--config", cfg, "--variants", "engine,mersenne")
		So(out, ShouldBeEmpty)
		So(stderrors.Is(err, rng.ErrUnsupportedVariant), ShouldBeTrue)
		var c errors.Coder
		So(stderrors.As(err, &c), ShouldBeTrue)
		So(c.Code(), ShouldEqual, 2)
	})

	Convey("Bad sizes are a configuration error", t, func() {
		_, _, err := execute("--config", cfg, "--sizes", "10,ten")
		So(stderrors.Is(err, errBadSizes), ShouldBeTrue)
	})

	Convey("Unknown formats are a configuration error", t, func() {
		_, _, err := execute("--config", cfg, "--format", "xml")
		So(stderrors.Is(err, report.ErrUnknownFormat), ShouldBeTrue)
	})

	Convey("Debug logging reports the run's instrumentation on stderr", t, func() {
		_, errOut, err := execute("--config", cfg, "--sizes", "5", "--variants", "runtime", "--log-level", "debug")
		So(err, ShouldBeNil)
		So(errOut, ShouldContainSubstring, "unit done")
		So(errOut, ShouldContainSubstring, "metric=experiment.unit")
		So(errOut, ShouldContainSubstring, "metric=rng.runtime.values")
	})
}

func TestRootConfigFile(t *testing.T) {
	Convey("Settings can come from a config file", t, func() {
		cfg := writeConfig(t, "variants: [engine]\nsizes: [1, 2]\nformat: template\ntemplate: '{{.Count}};'\n")
		out, _, err := execute("--config", cfg)
		So(err, ShouldBeNil)
		So(out, ShouldEqual, "1;2;")
	})

	Convey("Flags override the config file", t, func() {
		cfg := writeConfig(t, "variants: engine\nsizes: 1,2\nformat: template\ntemplate: '{{.Count}};'\n")
		out, _, err := execute("--config", cfg, "--sizes", "4")
		So(err, ShouldBeNil)
		So(out, ShouldEqual, "4;")
	})

	Convey("A missing explicit config file is an error", t, func() {
		_, _, err := execute("--config", filepath.Join(t.TempDir(), "nope.yaml"))
		So(err, ShouldNotBeNil)
		var c errors.Coder
		So(stderrors.As(err, &c), ShouldBeTrue)
		So(c.Code(), ShouldEqual, 2)
	})
}

func TestSubcommands(t *testing.T) {
	cfg := writeConfig(t, "")

	Convey("variants lists every variant and marks the defaults", t, func() {
		out, _, err := execute("variants", "--config", cfg)
		So(err, ShouldBeNil)
		So(out, ShouldEqual, ""+
			"engine   math/rand.Rand (default)\n"+
			"global   math/rand (default)\n"+
			"runtime  math/rand/v2 (default)\n"+
			"exp      x/exp/rand\n"+
			"gonum    gonum/distuv\n")
	})

	Convey("version prints the version", t, func() {
		out, _, err := execute("version", "--config", cfg)
		So(err, ShouldBeNil)
		So(out, ShouldStartWith, "rngstats unknown (built with go")
	})
}
