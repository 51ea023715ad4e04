package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"junitdiff/internal/domain"
	"junitdiff/internal/storage"
)

// DiffViewer displays the missing and changed entries of a diff snapshot in
// an interactive TUI
type DiffViewer struct {
	storage storage.Storage
}

// NewDiffViewer creates a new DiffViewer persisting reviewed marks through st
func NewDiffViewer(st storage.Storage) *DiffViewer {
	return &DiffViewer{
		storage: st,
	}
}

// View displays the actionable diff entries in an interactive TUI
func (dv *DiffViewer) View(output *domain.DiffOutput) error {
	// Indexes into output.Entries of everything that needs review
	var actionable []int
	for i, entry := range output.Entries {
		if entry.Actionable() {
			actionable = append(actionable, i)
		}
	}

	if len(actionable) == 0 {
		color.Green("✓ No missing or changed test cases in the last diff!")
		return nil
	}

	// Track reviewed entries (by list position) - load from the snapshot
	reviewed := make(map[int]bool)
	for pos, idx := range actionable {
		if output.Entries[idx].Reviewed {
			reviewed[pos] = true
		}
	}

	// Function to persist reviewed status back into the snapshot
	saveReviewedStatus := func() error {
		for pos, idx := range actionable {
			output.Entries[idx].Reviewed = reviewed[pos]
		}
		return dv.storage.Save(output)
	}

	// Create the application
	app := tview.NewApplication()

	// Create list for actionable entries (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	// Function to get formatted text for a list item
	getListItemText := func(pos int) string {
		entry := output.Entries[actionable[pos]]

		if reviewed[pos] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", pos+1, entry.Identity)
		}

		categoryColor := "[red]"
		if entry.Category == domain.CategoryChanged {
			categoryColor = "[yellow]"
		}
		return fmt.Sprintf("[yellow]%d.[white] %s%s[white]", pos+1, categoryColor, entry.Identity)
	}

	// Function to update list item display with reviewed status
	updateListItem := func(pos int) {
		if pos < 0 || pos >= list.GetItemCount() {
			return
		}
		list.SetItemText(pos, getListItemText(pos), "")
	}

	// Add actionable entries to the list with numbers and colors
	for pos := range actionable {
		list.AddItem(getListItemText(pos), "", 0, nil)
	}

	// Set list colors for better visibility
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Create stats header view (shows suite and case info)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Create text view for entry details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	// Create a container with right padding for the details view
	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	// Create right side layout: stats on top, details below
	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// Create simple flex layout: list on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	// Count unreviewed entries
	countUnreviewed := func() int {
		count := 0
		for pos := range actionable {
			if !reviewed[pos] {
				count++
			}
		}
		return count
	}

	// Create header text view (so we can update it)
	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	// Function to update header
	updateHeader := func() {
		headerText := fmt.Sprintf(" Diff Review (%d total, %d unreviewed) | Use ↑↓ to navigate, [yellow]R[white] to mark reviewed, → to view details, ← to go back, Ctrl+C to exit ",
			len(actionable), countUnreviewed())
		headerView.SetText(headerText)
	}

	// Set initial header
	updateHeader()

	// Update details when selection changes
	updateDetails := func() {
		pos := list.GetCurrentItem()
		if pos >= 0 && pos < len(actionable) {
			entry := output.Entries[actionable[pos]]
			statsView.SetText(dv.formatEntryStats(entry))
			detailsView.SetText(dv.formatEntryDetails(entry))
		}
	}

	// Set up keyboard handlers for list
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				pos := list.GetCurrentItem()
				if pos >= 0 && pos < len(actionable) {
					reviewed[pos] = !reviewed[pos]
					updateListItem(pos)
					updateHeader()
					updateDetails()
					if err := saveReviewedStatus(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	// Set up keyboard handlers for details view
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	// Update details when list selection changes
	list.SetChangedFunc(func(pos int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	// Set initial details
	updateDetails()

	// Create main layout with title
	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(
			tview.NewBox().SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
				return x, y, width, height
			}),
			1, 0, false,
		).
		AddItem(flex, 0, 1, true)

	// Run the application
	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatEntryDetails formats one diff entry for display using tview color tags ([red], [cyan], etc.)
func (dv *DiffViewer) formatEntryDetails(entry domain.DiffEntry) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ %s[white]\n\n", entry.Identity)

	if entry.Category == domain.CategoryMissing {
		fmt.Fprintf(&builder, "[yellow]Category:[white] missing in after reports\n\n")
		fmt.Fprintf(&builder, "[cyan]Before status:[white] %s\n", entry.BeforeStatus)
	} else {
		fmt.Fprintf(&builder, "[yellow]Category:[white] status changed\n\n")
		fmt.Fprintf(&builder, "[cyan]Before status:[white] %s\n", entry.BeforeStatus)
		fmt.Fprintf(&builder, "[cyan]After status:[white] %s\n", entry.AfterStatus)
	}

	if entry.BeforeDetail != "" {
		fmt.Fprintf(&builder, "\n[yellow]Before detail:[white]\n%s\n", entry.BeforeDetail)
	}
	if entry.AfterDetail != "" {
		fmt.Fprintf(&builder, "\n[yellow]After detail:[white]\n%s\n", entry.AfterDetail)
	}

	return builder.String()
}

// formatEntryStats formats the stats header for a diff entry
func (dv *DiffViewer) formatEntryStats(entry domain.DiffEntry) string {
	var builder strings.Builder

	statsLine := fmt.Sprintf("[cyan]suite:[white] [yellow]%s[white]::[yellow]%s[white]", entry.Suite, entry.Case)
	builder.WriteString(statsLine)
	builder.WriteString("\n")

	return builder.String()
}
