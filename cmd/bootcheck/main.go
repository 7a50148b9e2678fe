// bootcheck runs the boot-time diagnostic self-tests and reports a pass/fail
// tally.
//
// Usage:
//
//	bootcheck              # run every registered unit
//	bootcheck -run math    # run units whose name contains "math"
//	bootcheck -list        # list registered units
//	bootcheck -format json # machine-readable summary
//
// Exit status: 0 when every assertion passed, 1 when any failed, 2 on a
// usage error.
//
// Output modes (auto-detected):
//
//	terminal  — styled Unicode output (default when TTY)
//	plain     — bare diagnostic stream (default when piped)
//	json      — structured JSON for automation
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/bootcheck/internal/config"
	"github.com/dkoosis/bootcheck/internal/render"
	"github.com/dkoosis/bootcheck/internal/selftest"
	"github.com/dkoosis/bootcheck/internal/version"

	// Self-test units register themselves at init; registry order is the
	// deterministic package initialization order.
	_ "github.com/dkoosis/bootcheck/internal/keymap"
	_ "github.com/dkoosis/bootcheck/internal/mathtest"
	_ "github.com/dkoosis/bootcheck/internal/pcicfg"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("bootcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	formatFlag := fs.String("format", cfg.Format, "Output format: auto, terminal, plain, json")
	themeFlag := fs.String("theme", cfg.Theme, "Theme: default, mono")
	runFlag := fs.String("run", cfg.Run, "Run only units whose name contains this substring")
	listFlag := fs.Bool("list", false, "List registered units and exit")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "bootcheck %s (%s, %s)\n",
			version.Version, version.CommitHash, version.BuildDate)
		return 0
	}

	if *listFlag {
		for _, u := range selftest.Units() {
			fmt.Fprintln(stdout, u.Name)
		}
		return 0
	}

	mode := resolveFormat(*formatFlag, stdout)
	validFormats := map[string]bool{"terminal": true, "plain": true, "json": true}
	if !validFormats[mode] {
		fmt.Fprintf(stderr, "bootcheck: unknown format %q (expected auto, terminal, plain, json)\n", *formatFlag)
		return 2
	}

	sum := selftest.RunMatching(*runFlag)
	if len(sum.Units) == 0 {
		fmt.Fprintf(stderr, "bootcheck: no units match %q\n", *runFlag)
		return 2
	}

	fmt.Fprint(stdout, selectRenderer(mode, *themeFlag, cfg.NoColor).Render(sum))

	if sum.OK() {
		return 0
	}
	return 1
}

func selectRenderer(mode, themeName string, noColor bool) render.Renderer {
	switch mode {
	case "json":
		return render.NewJSON()
	case "plain":
		return render.NewPlain()
	default:
		theme := render.ThemeByName(themeName)
		// Honor NO_COLOR
		if noColor || os.Getenv("NO_COLOR") != "" {
			theme = render.MonoTheme()
		}
		return render.NewTerminal(theme)
	}
}

func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = plain
	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) {
			return "terminal"
		}
	}
	return "plain"
}
