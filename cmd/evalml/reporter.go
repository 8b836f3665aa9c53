package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/evalml/evalml/internal/datachecks"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats counts with thousands separators.
var printer = message.NewPrinter(language.English)

const (
	formatText = "text"
	formatJSON = "json"
)

func validateFormat(format string) error {
	if format != formatText && format != formatJSON {
		return fmt.Errorf("invalid format %q: expected text or json", format)
	}
	return nil
}

// palette colors severities when writing to a terminal.
type palette struct {
	warning *color.Color
	error   *color.Color
	ok      *color.Color
	bold    *color.Color
}

func newPalette(w io.Writer) *palette {
	p := &palette{
		warning: color.New(color.FgYellow, color.Bold),
		error:   color.New(color.FgRed, color.Bold),
		ok:      color.New(color.FgGreen),
		bold:    color.New(color.Bold),
	}
	if !isTerminal(w) {
		for _, c := range []*color.Color{p.warning, p.error, p.ok, p.bold} {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *palette) severity(t datachecks.MessageType) string {
	label := strings.ToUpper(string(t))
	if t == datachecks.MessageTypeError {
		return p.error.Sprint(label)
	}
	return p.warning.Sprint(label)
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// writeMessages prints messages as aligned severity, check and text columns.
func writeMessages(w io.Writer, p *palette, messages datachecks.Messages) {
	checkWidth := 0
	for _, m := range messages {
		checkWidth = max(checkWidth, runewidth.StringWidth(m.DataCheckName))
	}
	for _, m := range messages {
		// pad before coloring so escape codes do not skew the width
		sev := padRight(strings.ToUpper(string(m.Type)), len("WARNING"))
		sev = strings.Replace(sev, strings.ToUpper(string(m.Type)), p.severity(m.Type), 1)
		fmt.Fprintf(w, "  %s  %s  %s\n", sev, padRight(m.DataCheckName, checkWidth), m.Message) //nolint:errcheck
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func plural(n int, word string) string {
	if n == 1 {
		return printer.Sprintf("%d %s", n, word)
	}
	return printer.Sprintf("%d %ss", n, word)
}
