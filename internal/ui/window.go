package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/bellows/internal/accordion"
	"github.com/shhac/bellows/internal/dom"
	"github.com/shhac/bellows/internal/model"
	"github.com/shhac/bellows/internal/ui/panelview"
)

// AppController defines the app-level operations the window needs.
type AppController interface {
	State() *model.UIState
	Logger() *slog.Logger
	AccordionConfig() accordion.Config
	Renderer() *panelview.Renderer
	Install(doc *dom.Node, onTransition accordion.TransitionFunc) (*accordion.Binder, error)
}

// MainWindow manages the demo window: a column of accordion sections over a
// status bar that reflects their state.
type MainWindow struct {
	window fyne.Window
	app    AppController
	logger *slog.Logger
	state  *model.UIState

	doc      *dom.Node
	sections []*panelview.Section
	byNode   map[*dom.Node]*panelview.Section
}

// NewMainWindow builds the demo window, constructs its accordion sections,
// and installs the accordion feature over them. Installation failures (an
// unresolvable default state key, a claimed namespace) surface here, before
// anything is shown.
func NewMainWindow(fyneApp fyne.App, app AppController) (*MainWindow, error) {
	w := &MainWindow{
		window: fyneApp.NewWindow("Bellows"),
		app:    app,
		logger: app.Logger(),
		state:  app.State(),
		doc:    dom.NewNode("document"),
		byNode: make(map[*dom.Node]*panelview.Section),
	}

	w.addSection("Getting Started", widget.NewLabel(
		"Tap a section header to expand or collapse it.\n"+
			"Each section tracks its own state."))
	w.addSection("Details", widget.NewLabel(
		"Sections start in the configured default state.\n"+
			"Set BELLOWS_DEFAULT_STATE=visible to start expanded."))
	w.addSection("Diagnostics", widget.NewLabel(
		"Transitions are logged and mirrored in the status bar below."))

	if _, err := app.Install(w.doc, w.handleTransition); err != nil {
		return nil, err
	}

	objects := make([]fyne.CanvasObject, 0, len(w.sections)+2)
	for _, s := range w.sections {
		objects = append(objects, s.CanvasObject())
	}
	objects = append(objects, layout.NewSpacer(), w.statusBar())

	w.window.SetContent(container.NewPadded(container.NewVBox(objects...)))
	w.window.Resize(fyne.NewSize(480, 560))
	w.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("Help", fyne.NewMenuItem("About", func() {
			ShowAboutDialog(w.window)
		})),
	))

	return w, nil
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}

// Sections returns the window's accordion sections in display order.
func (w *MainWindow) Sections() []*panelview.Section {
	return w.sections
}

// Document returns the window's document tree.
func (w *MainWindow) Document() *dom.Node {
	return w.doc
}

func (w *MainWindow) addSection(title string, content fyne.CanvasObject) {
	section := panelview.NewSection(w.app.AccordionConfig(), title, content, w.app.Renderer())
	w.doc.Append(section.Node())
	w.sections = append(w.sections, section)
	w.byNode[section.Node()] = section
}

// statusBar builds the bottom row bound to the shared UI state.
func (w *MainWindow) statusBar() fyne.CanvasObject {
	last := widget.NewLabelWithData(w.state.LastEvent)
	count := widget.NewLabelWithData(
		binding.IntToStringWithFormat(w.state.OpenCount, "%d open"))
	return container.NewBorder(widget.NewSeparator(), nil, last, count)
}

// handleTransition observes every applied state change: it updates the
// section's chevron and refreshes the status bindings. It also fires during
// initialization, so the chevrons match the default state from the start.
func (w *MainWindow) handleTransition(containerNode *dom.Node, state accordion.State) {
	section, ok := w.byNode[containerNode]
	if !ok {
		return
	}
	section.SetCollapsed(state == accordion.StateCollapsed)

	_ = w.state.LastEvent.Set(fmt.Sprintf("%s: %s", section.Title(), state))
	_ = w.state.OpenCount.Set(w.countOpen())
}

func (w *MainWindow) countOpen() int {
	key := w.app.AccordionConfig().StateKey
	open := 0
	for _, s := range w.sections {
		if raw, ok := s.Node().Data(key); ok && raw == accordion.StateVisible.String() {
			open++
		}
	}
	return open
}
