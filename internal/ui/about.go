package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/shhac/bellows/internal/ui.Version=1.2.3"
var Version = "dev"

// ShowAboutDialog displays information about the application.
func ShowAboutDialog(parent fyne.Window) {
	content := container.NewVBox(
		widget.NewLabelWithStyle("Bellows", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Collapsible panels for Fyne documents"),
		widget.NewLabel("Version "+Version),
		widget.NewSeparator(),
		widget.NewLabel("Built with Fyne and Go"),
	)
	dialog.ShowCustom("About Bellows", "Close", content, parent)
}
