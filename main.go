package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"

	"dungeonlab/pkg/engine/input"
	"dungeonlab/pkg/engine/terminal"
	"dungeonlab/pkg/game/devtools"
	"dungeonlab/pkg/game/generator"
	"dungeonlab/pkg/game/renderer"
	"dungeonlab/pkg/game/renderer/tui"
	"dungeonlab/pkg/game/state"
)

// dynamicGet translates keys that are not string constants
var dynamicGet = gotext.Get

// options are the parsed command-line flags
type options struct {
	algorithm   string
	width       int
	height      int
	seed        int64
	all         bool
	dump        string
	html        string
	noColor     bool
	list        bool
	version     bool
	interactive bool
	locales     string
	lang        string

	// algorithmSet is true when -algorithm was given explicitly
	algorithmSet bool
}

func parseFlags(args []string, out io.Writer) (*options, error) {
	fs := flag.NewFlagSet("dungeonlab", flag.ContinueOnError)
	fs.SetOutput(out)

	o := &options{}
	fs.StringVar(&o.algorithm, "algorithm", generator.BSPTree.String(), "generation algorithm: a name from -list or its number")
	fs.IntVar(&o.width, "width", 0, "map width (0 fits the terminal)")
	fs.IntVar(&o.height, "height", 0, "map height (0 fits the terminal)")
	fs.Int64Var(&o.seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.BoolVar(&o.all, "all", false, "generate one map with every algorithm; -algorithm, when set, filters by name")
	fs.StringVar(&o.dump, "dump", "", "write a debug dump of the map to this file")
	fs.StringVar(&o.html, "html", "", "save the map as an HTML page")
	fs.BoolVar(&o.noColor, "no-color", false, "plain ASCII output without escape codes")
	fs.BoolVar(&o.list, "list", false, "list the available algorithms and exit")
	fs.BoolVar(&o.version, "version", false, "print the version and exit")
	fs.BoolVar(&o.interactive, "interactive", false, "browse maps from the keyboard")
	fs.StringVar(&o.locales, "locales", "", "directory holding gettext translations")
	fs.StringVar(&o.lang, "lang", "en_GB", "translation language")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// An explicit -algorithm together with -all is a filter
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "algorithm" {
			o.algorithmSet = true
		}
	})
	return o, nil
}

func initGettext(localeDir, lang string) {
	if localeDir == "" {
		return
	}
	gotext.Configure(localeDir, lang, "default")
}

// logMessage adds a formatted message to the session's message log
func logMessage(s *state.Session, msg string, a ...any) {
	s.AddMessage(renderer.FormatText(msg, a...))
}

// mapSize resolves the requested dimensions, filling zeros from the terminal
func mapSize(o *options) (int, int) {
	w, h := terminal.MapSize()
	if o.width > 0 {
		w = o.width
	}
	if o.height > 0 {
		h = o.height
	}
	return w, h
}

func printAlgorithms(out io.Writer) {
	for i, alg := range generator.AllAlgorithms() {
		g, err := generator.New(alg)
		if err != nil {
			continue
		}
		fmt.Fprint(out, renderer.FormatText("%d. ALGO{%s}  %s\n", i+1, alg, g.Name()))
	}
}

// writeOutputs saves the dump and HTML files a session was asked for
func writeOutputs(s *state.Session, o *options) error {
	if o.dump != "" {
		path, err := devtools.DumpMapToFile(s, o.dump)
		if err != nil {
			return fmt.Errorf("dump: %w", err)
		}
		log.Printf("Map dump written to %s", path)
	}
	if o.html != "" {
		path, err := devtools.SaveScreenshotHTML(s, o.html)
		if err != nil {
			return fmt.Errorf("html: %w", err)
		}
		log.Printf("Screenshot saved to %s", path)
	}
	return nil
}

func run(args []string, out io.Writer) error {
	o, err := parseFlags(args, out)
	if err != nil {
		return err
	}

	if o.version {
		fmt.Fprintf(out, "dungeonlab %s\n", renderer.Version)
		return nil
	}

	initGettext(o.locales, o.lang)

	if o.noColor {
		renderer.SetRenderer(tui.NewPlain())
	} else {
		renderer.SetRenderer(tui.New())
	}
	renderer.Init()

	if o.list {
		printAlgorithms(out)
		return nil
	}

	width, height := mapSize(o)
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if o.all {
		filter := ""
		if o.algorithmSet {
			filter = o.algorithm
		}
		sessions, err := devtools.Gallery(width, height, seed, filter)
		if err != nil {
			return err
		}
		for _, s := range sessions {
			renderer.RenderFrame(out, s)
			fmt.Fprintln(out)
		}
		return nil
	}

	alg, err := generator.ParseAlgorithm(o.algorithm)
	if err != nil {
		return err
	}

	s := state.NewSession(width, height)
	if err := s.Use(alg); err != nil {
		return err
	}
	if err := s.Regenerate(seed); err != nil {
		return err
	}

	if o.interactive {
		return explore(s, o, out)
	}

	renderer.RenderFrame(out, s)
	return writeOutputs(s, o)
}

// explore shows one map at a time and reacts to keyboard commands until quit
func explore(s *state.Session, o *options, out io.Writer) error {
	showHelp(s)
	for {
		renderer.Clear()
		renderer.RenderFrame(out, s)
		fmt.Fprintf(out, "\n> ")

		if quit := processIntent(s, o, input.GetIntent()); quit {
			return nil
		}
	}
}

// processIntent applies one command to the session and reports whether to quit
func processIntent(s *state.Session, o *options, intent input.Intent) bool {
	switch intent.Action {
	case input.ActionQuit:
		return true

	case input.ActionRegenerate:
		regenerate(s, 0)

	case input.ActionNextAlgorithm, input.ActionPrevAlgorithm:
		all := generator.AllAlgorithms()
		step := 1
		if intent.Action == input.ActionPrevAlgorithm {
			step = len(all) - 1
		}
		switchTo(s, all[(int(s.Algorithm)+step)%len(all)])

	case input.ActionSelectAlgorithm:
		alg, err := generator.ParseAlgorithm(intent.Code)
		if err != nil {
			logMessage(s, "ERR{%s}: %s", gotext.Get("Unknown command"), intent.Code)
			return false
		}
		switchTo(s, alg)

	case input.ActionHelp:
		showHelp(s)

	case input.ActionDump:
		path, err := devtools.DumpMapToFile(s, o.dump)
		if err != nil {
			logMessage(s, "ERR{%v}", err)
			return false
		}
		logMessage(s, "GT{Map dump written to} %s", path)

	case input.ActionScreenshot:
		path, err := devtools.SaveScreenshotHTML(s, o.html)
		if err != nil {
			logMessage(s, "ERR{%v}", err)
			return false
		}
		logMessage(s, "GT{Screenshot saved to} %s", path)

	case input.ActionClearMessages:
		s.ClearMessages()
	}
	return false
}

func switchTo(s *state.Session, alg generator.Algorithm) {
	if err := s.Use(alg); err != nil {
		logMessage(s, "ERR{%v}", err)
		return
	}
	regenerate(s, s.Seed)
}

func regenerate(s *state.Session, seed int64) {
	err := s.Regenerate(seed)
	if errors.Is(err, generator.ErrInvalidDimensions) {
		logMessage(s, "ERR{%s}: %v", gotext.Get("Map too small"), err)
		return
	}
	if err != nil {
		logMessage(s, "ERR{%v}", err)
	}
}

// showHelp puts a one-line summary of the key bindings in the message pane
func showHelp(s *state.Session) {
	bindings := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(bindings))
	for act := range bindings {
		actions = append(actions, act)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	var parts []string
	for _, act := range actions {
		parts = append(parts, fmt.Sprintf("%s %s", bindings[act][0], dynamicGet(input.ActionName(act))))
	}
	parts = append(parts, gotext.Get("1-8 pick an algorithm"))
	s.AddMessage(strings.Join(parts, "  "))
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}
