package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/benZhai01/vstest/internal/domain"
	"github.com/benZhai01/vstest/internal/storage"
)

// FailureViewer displays test failures from the last run in an interactive TUI
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View opens the interactive failure browser. Toggling a failure resolved
// (key 'r') is written back through storage so the state survives restarts.
func (v *FailureViewer) View(summary *domain.RunSummary) error {
	if len(summary.Details) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	itemText := func(i int) string {
		failure := summary.Details[i]
		if failure.Resolved {
			return fmt.Sprintf("[gray]✓ %d. %s[white]", i+1, failure.TestName)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", i+1, failure.TestName)
	}
	for i := range summary.Details {
		list.AddItem(itemText(i), "", 0, nil)
	}

	showDetails := func(i int) {
		failure := summary.Details[i]
		var b strings.Builder
		fmt.Fprintf(&b, "[cyan]%s[white]::[yellow]%s[white]\n\n", failure.FilePath, failure.TestName)
		fmt.Fprintf(&b, "%s\n", tview.Escape(failure.Message))
		if len(failure.StackTrace) > 0 {
			fmt.Fprintf(&b, "\n[gray]%s[white]", strings.Join(failure.StackTrace, "\n"))
		}
		details.SetText(b.String())
	}
	list.SetChangedFunc(func(i int, mainText, secondaryText string, shortcut rune) {
		if i >= 0 && i < len(summary.Details) {
			showDetails(i)
		}
	})
	showDetails(0)

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				app.Stop()
				return nil
			case 'r':
				i := list.GetCurrentItem()
				summary.Details[i].Resolved = !summary.Details[i].Resolved
				list.SetItemText(i, itemText(i), "")
				// Best effort; the viewer keeps working if the write fails
				_ = v.storage.Save(summary)
				return nil
			}
		}
		return event
	})

	header := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf("[red]%d failure(s)[white] — ↑/↓ navigate, r resolve, q quit", len(summary.Details)))

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexColumn).
			AddItem(list, 0, 1, true).
			AddItem(details, 0, 2, false), 0, 1, true)

	return app.SetRoot(layout, true).Run()
}
