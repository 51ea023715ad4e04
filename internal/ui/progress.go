package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar tracks report files as they are parsed.
type ProgressBar struct {
	label string
	bar   *progressbar.ProgressBar
}

// NewProgressBar creates a progress bar carrying a side label such as
// "Parsing before reports". The total is supplied later via Begin, once file
// discovery has counted the reports.
func NewProgressBar(label string) *ProgressBar {
	return &ProgressBar{label: label}
}

// Begin starts the bar with the number of files to parse.
func (p *ProgressBar) Begin(total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.CyanString("%s: ", p.label)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// Update advances the bar by one parsed file.
func (p *ProgressBar) Update() {
	if p.bar == nil {
		return
	}
	p.bar.Add(1)
}

// Finish completes the progress bar.
func (p *ProgressBar) Finish() {
	if p.bar == nil {
		return
	}
	p.bar.Finish()
}
