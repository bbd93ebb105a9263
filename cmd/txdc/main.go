// Command txdc cleans text from its arguments or, line by line, from stdin
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"txdc/internal/core/normalize"
	"txdc/internal/core/pipeline"
	"txdc/internal/core/rewrite"
	"txdc/internal/core/textbuf"
	"txdc/internal/core/typography"
	"txdc/internal/core/version"
	"txdc/internal/core/whitespace"
	"txdc/internal/platform/config"
	"txdc/internal/platform/logger"

	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

const maxLine = 1 << 20

// isTerminal is a seam for tests
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	logger.Init(logger.Options{Level: "warn", Format: "console", Service: "txdc", Writer: os.Stderr})
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cc := config.New().Prefix("TXDC_CLEAN_")

	fs := flag.NewFlagSet("txdc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		locale     = fs.String("locale", cc.MayString("LOCALE", "fr"), "typography profile name or BCP 47 tag")
		form       = fs.String("form", cc.MayString("FORM", "nfkc"), "unicode form: none, nfc, nfd, nfkc or nfkd")
		foldWidth  = fs.Bool("fold-width", cc.MayBool("FOLD_WIDTH", false), "fold fullwidth and halfwidth forms")
		typo       = fs.Bool("typography", true, "apply the locale punctuation spacing")
		keepCtl    = fs.Bool("keep-control", false, "keep control characters")
		keepWSCtl  = fs.Bool("keep-ws-control", cc.MayBool("KEEP_WS_CONTROLS", false), "keep tab and newline controls when stripping")
		profileArg = fs.String("profile", "", "extra profile file (yaml or json) to register first")
		trimOnly   = fs.Bool("trim-only", false, "only trim leading and trailing whitespace")
		count      = fs.Bool("count", false, "print the grapheme count after each result")
		showVer    = fs.Bool("version", false, "print the build and exit")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: txdc [flags] [text...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *showVer {
		fmt.Fprintln(stdout, version.Info())
		return 0
	}

	log := logger.Named("cli")

	t, err := build(*locale, *form, *profileArg, *foldWidth, *typo, !*keepCtl, *keepWSCtl, *trimOnly)
	if err != nil {
		log.Error().Err(err).Msg("invalid options")
		fmt.Fprintln(stderr, "txdc:", err)
		return 2
	}

	emit := func(s string) {
		out := rewrite.String(t, s)
		if *count {
			fmt.Fprintf(stdout, "%s\t%d\n", out, uniseg.GraphemeClusterCount(out))
			return
		}
		fmt.Fprintln(stdout, out)
	}

	if fs.NArg() > 0 {
		emit(strings.Join(fs.Args(), " "))
		return 0
	}
	if isTerminal(stdin) {
		fs.Usage()
		return 2
	}

	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	lines := 0
	for sc.Scan() {
		emit(sc.Text())
		lines++
	}
	if err := sc.Err(); err != nil {
		log.Error().Err(err).Int("lines", lines).Msg("reading stdin failed")
		fmt.Fprintln(stderr, "txdc:", err)
		return 1
	}
	log.Debug().Int("lines", lines).Msg("done")
	return 0
}

// build resolves the flags into a single transformer
func build(locale, form, profilePath string, foldWidth, typo, stripControl, keepWSCtl, trimOnly bool) (rewrite.Transformer[textbuf.Buffer], error) {
	if trimOnly {
		return whitespace.Trimmer{}, nil
	}
	f, err := normalize.ParseForm(form)
	if err != nil {
		return nil, err
	}

	reg := typography.Builtin()
	if profilePath != "" {
		p, err := typography.LoadFile(profilePath)
		if err != nil {
			return nil, err
		}
		reg.Register(p)
		locale = p.Name()
	}
	profile, err := reg.Lookup(locale)
	if err != nil {
		return nil, err
	}

	return pipeline.New(pipeline.Options{
		Form:                   f,
		FoldWidth:              foldWidth,
		Profile:                profile,
		StripControl:           stripControl,
		KeepWhitespaceControls: keepWSCtl,
		Typography:             typo,
		Whitespace:             true,
	}), nil
}
