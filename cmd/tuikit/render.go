package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tuikit/internal/combobox"
	"github.com/alexisbeaulieu97/tuikit/internal/tui/gallery"
	"github.com/alexisbeaulieu97/tuikit/pkg/diff"
)

// defaultRenderWidth is used when neither --width, the configuration nor
// the terminal give one.
const defaultRenderWidth = gallery.DefaultCardWidth

var errSnapshotMismatch = errors.New("rendered output differs from the golden snapshot")

type renderOptions struct {
	value  string
	open   bool
	active int
	width  int
	keys   []string
	golden string
	update bool
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the gallery card in a given state",
		Long: `Render the gallery card without an interactive terminal. The combobox
is driven into the requested state first: --value sets the text, --open opens
the menu, --active moves the highlight and --keys replays named keys
(up, down, esc, enter, space, home, end) or literal text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, logger := app.CommandContext(cmd, "command.render")
			src, err := app.Config.OpenSources()
			if err != nil {
				return newCommandError("render", "opening result sources", err, "Check the sources section of your configuration.")
			}

			galleryOpts := galleryOptions(ctx, app, src, logger)
			galleryOpts.Static = true
			galleryOpts.Props.Value = opts.value

			width := renderWidth(opts.width, app.Config.Width, cmd.OutOrStdout())
			m := gallery.Replay(gallery.New(galleryOpts), renderInputs(opts, width)...)
			if err := m.LoadErr(); err != nil {
				logger.Warn(ctx, "source failed during render", "error", err)
			}
			view := m.View() + "\n"

			logger.Debug(ctx, "rendered", "width", width, "open", m.ComboBox().Controller().IsOpen())
			return writeRender(cmd.OutOrStdout(), view, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.value, "value", "", "Initial combobox value")
	f.BoolVar(&opts.open, "open", false, "Open the menu")
	f.IntVar(&opts.active, "active", 0, "Index of the highlighted result when open")
	f.IntVar(&opts.width, "width", 0, "Card width (defaults to the terminal width)")
	f.StringSliceVar(&opts.keys, "keys", nil, "Keys to replay, comma separated")
	f.StringVar(&opts.golden, "golden", "", "Compare the output with this snapshot file")
	f.BoolVar(&opts.update, "update", false, "Rewrite the --golden snapshot instead of comparing")

	return cmd
}

// renderInputs lists the messages that drive the model into the requested
// state.
func renderInputs(opts *renderOptions, width int) []tea.Msg {
	msgs := []tea.Msg{tea.WindowSizeMsg{Width: width}}
	if opts.open {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyDown})
		for i := 0; i < opts.active; i++ {
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyDown})
		}
	}
	for _, name := range opts.keys {
		msgs = append(msgs, keyMsg(name))
	}
	return msgs
}

// keyMsg maps a key name onto the key message a terminal would send. Names
// that are not keys are typed as text.
func keyMsg(name string) tea.KeyMsg {
	switch combobox.ParseKey(strings.ToLower(name)) {
	case combobox.KeyUp:
		return tea.KeyMsg{Type: tea.KeyUp}
	case combobox.KeyDown:
		return tea.KeyMsg{Type: tea.KeyDown}
	case combobox.KeyEscape:
		return tea.KeyMsg{Type: tea.KeyEsc}
	case combobox.KeyEnter:
		return tea.KeyMsg{Type: tea.KeyEnter}
	case combobox.KeySpace:
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case combobox.KeyHome:
		return tea.KeyMsg{Type: tea.KeyHome}
	case combobox.KeyEnd:
		return tea.KeyMsg{Type: tea.KeyEnd}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

func renderWidth(flag, configured int, out io.Writer) int {
	if flag > 0 {
		return flag
	}
	if configured > 0 {
		return configured
	}
	if file, ok := out.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultRenderWidth
}

func writeRender(out io.Writer, view string, opts *renderOptions) error {
	if opts.golden == "" {
		_, err := io.WriteString(out, view)
		return err
	}

	if opts.update {
		if err := os.WriteFile(opts.golden, []byte(view), 0o644); err != nil {
			return newCommandError("render", "writing golden snapshot", err, "Check that the snapshot directory exists.")
		}
		fmt.Fprintf(out, "updated %s\n", opts.golden)
		return nil
	}

	want, err := os.ReadFile(opts.golden)
	if err != nil {
		return newCommandError("render", "reading golden snapshot", err, "Create it first with --update.")
	}
	if bytes.Equal(want, []byte(view)) {
		fmt.Fprintf(out, "matches %s\n", opts.golden)
		return nil
	}
	fmt.Fprint(out, diff.GenerateUnifiedDiff(want, []byte(view), opts.golden, "rendered"))
	return errSnapshotMismatch
}
