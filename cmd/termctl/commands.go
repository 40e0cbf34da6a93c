package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/dshills/termctl"
	"github.com/dshills/termctl/key"
)

// Shared command flags
var (
	bindingsPath string
	clickWindow  int
	pollInterval int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&bindingsPath, "bindings", "", "JSON file mapping actions to key names")
	rootCmd.PersistentFlags().IntVar(&clickWindow, "double-click-ms", 200, "Double-click promotion window in milliseconds")
	rootCmd.PersistentFlags().IntVar(&pollInterval, "poll-ms", 100, "Input poll interval in milliseconds")

	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(keysCmd)
}

// bindings are the actions the event viewer responds to. Defaults can
// be overridden with a JSON file such as
//
//	{"quit": "Ctrl-q", "clear": "Ctrl-l"}
//
// where values are key names in the registry's format.
type bindings struct {
	quit  key.Key
	clear key.Key
}

func loadBindings(path string) (bindings, error) {
	b := bindings{
		quit:  key.Named("q"),
		clear: key.Named("Ctrl-l"),
	}
	if path == "" {
		return b, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("read bindings: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return b, fmt.Errorf("bindings file %s: not valid JSON", path)
	}
	for _, action := range []struct {
		field *key.Key
		name  string
	}{
		{&b.quit, "quit"},
		{&b.clear, "clear"},
	} {
		v := gjson.GetBytes(data, action.name)
		if !v.Exists() {
			continue
		}
		k := key.Named(v.String())
		if k == key.None {
			return b, fmt.Errorf("binding %q: unknown key name %q", action.name, v.String())
		}
		*action.field = k
	}
	return b, nil
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show decoded input events as they arrive",
	Long: `Show every decoded input event with its key name, code, and, for
mouse events, cell coordinates. Resizes are reported as they happen.`,
	RunE: runEvents,
}

func runEvents(cmd *cobra.Command, args []string) error {
	b, err := loadBindings(bindingsPath)
	if err != nil {
		return err
	}

	s, err := termctl.Open(
		termctl.WithDoubleClickThreshold(time.Duration(clickWindow) * time.Millisecond),
	)
	if err != nil {
		return err
	}
	defer s.Disable()
	if err := s.SetMode(termctl.ModeTUI); err != nil {
		return err
	}

	w, h := s.Size()
	drawHeader(s, w, b)
	s.Flush()

	row := 2
	for {
		ev, err := s.ReadEvent(time.Duration(pollInterval) * time.Millisecond)
		if err != nil {
			// Unrecognized sequences were consumed; report and move on.
			s.MoveCursor(0, row)
			s.Clear(termctl.ClearRight)
			s.Printf("decode error: %v", err)
			row++
		} else {
			switch {
			case ev.IsNone():
				continue
			case ev.Key == b.quit:
				return nil
			case ev.Key == b.clear:
				s.Clear(termctl.ClearScreen)
				drawHeader(s, w, b)
				row = 2
			case ev.IsResize():
				w, h = s.Size()
				s.Clear(termctl.ClearScreen)
				drawHeader(s, w, b)
				row = 2
				s.MoveCursor(0, row)
				s.Printf("resized to %dx%d", w, h)
				row++
			default:
				s.MoveCursor(0, row)
				s.Clear(termctl.ClearRight)
				s.Printf("%-28s %#06x", ev.String(), int32(ev.Key))
				row++
			}
		}
		if row >= h {
			row = 2
		}
		s.Flush()
	}
}

func drawHeader(s *termctl.Session, w int, b bindings) {
	s.MoveCursor(0, 0)
	s.SetAttributes(termctl.AttrBold | termctl.AttrReverse)
	line := fmt.Sprintf(" termctl event viewer    %s quits, %s clears",
		key.Name(b.quit), key.Name(b.clear))
	for len(line) < w {
		line += " "
	}
	s.WriteString(line)
	s.ResetAttributes()
}

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Exercise boxes, colors, and text attributes",
	Long: `Render a sampler of the output encoder: line-drawn boxes with
shadows, 24-bit color gradients, the 256-color palette, and text
attributes. The display redraws on resize; any key exits.`,
	RunE: runDraw,
}

func runDraw(cmd *cobra.Command, args []string) error {
	s, err := termctl.Open()
	if err != nil {
		return err
	}
	defer s.Disable()
	if err := s.SetMode(termctl.ModeTUI); err != nil {
		return err
	}

	drawSampler(s)
	s.Flush()

	for {
		ev, err := s.ReadEvent(time.Duration(pollInterval) * time.Millisecond)
		if err != nil || ev.IsNone() || ev.Key.IsMouse() {
			continue
		}
		if ev.IsResize() {
			drawSampler(s)
			s.Flush()
			continue
		}
		return nil
	}
}

func drawSampler(s *termctl.Session) {
	w, h := s.Size()
	s.Clear(termctl.ClearScreen)

	// Hue gradient across the top.
	for x := 0; x < w; x++ {
		c := colorful.Hsv(360*float64(x)/float64(w), 0.85, 0.9)
		s.MoveCursor(x, 0)
		s.SetBgColor(c)
		s.WriteString(" ")
	}
	s.ResetColors()

	// 256-color palette cube, as much as fits.
	for i := 0; i < 216 && i < w; i++ {
		s.MoveCursor(i, 1)
		s.SetBg256(uint8(16 + i))
		s.WriteString(" ")
	}
	s.ResetColors()

	// Attribute sampler.
	samples := []struct {
		attr  termctl.Attr
		label string
	}{
		{termctl.AttrBold, "bold"},
		{termctl.AttrFaint, "faint"},
		{termctl.AttrItalic, "italic"},
		{termctl.AttrUnderline, "underline"},
		{termctl.AttrReverse, "reverse"},
		{termctl.AttrStrikethrough, "strikethrough"},
		{termctl.AttrBold | termctl.AttrUnderline, "bold underline"},
	}
	for i, sm := range samples {
		s.MoveCursor(2, 3+i)
		s.SetAttributes(sm.attr)
		s.WriteString(sm.label)
		s.ResetAttributes()
	}

	// Titled box with a shadow, centered in the remaining space.
	bw, bh := 24, 5
	bx, by := (w-bw)/2, (h-bh)/2
	if bx > 0 && by > 3+len(samples) {
		s.DrawShadow(bx, by, bw+1, bh+1)
		s.FillBox(bx, by, bw, bh)
		s.DrawTitledBox(bx, by, bw, bh, "termctl")
		s.MoveCursor(bx+2, by+bh/2)
		s.Printf("%dx%d cells", w, h)
	}

	s.MoveCursor(0, h-1)
	s.WriteString("press any key to exit")
}

var keysCmd = &cobra.Command{
	Use:   "keys <name>...",
	Short: "Resolve key names to codes and back",
	Example: `  # Look up a few names
  termctl keys "Ctrl-a" "Shift-Left click" Esc

  # Aliases resolve to the same code
  termctl keys Enter Return`,
	Args: cobra.MinimumNArgs(1),
	RunE: runKeys,
}

func runKeys(cmd *cobra.Command, args []string) error {
	for _, name := range args {
		k := key.Named(name)
		if k == key.None {
			fmt.Printf("%-20s unknown\n", name)
			continue
		}
		fmt.Printf("%-20s %#06x  %s\n", name, int32(k), key.Name(k))
	}
	return nil
}
