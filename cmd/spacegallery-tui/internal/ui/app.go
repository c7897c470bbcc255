// Package ui provides the terminal user interface for spacegallery.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	core "github.com/iconidentify/spacegallery/internal/app"
	"github.com/iconidentify/spacegallery/internal/config"
	"github.com/iconidentify/spacegallery/internal/domain"
	"github.com/iconidentify/spacegallery/internal/feed"
	"github.com/iconidentify/spacegallery/internal/modal"
)

const (
	mainPage        = "main"
	modalPage       = "modal"
	cardsPage       = "cards"
	placeholderPage = "placeholder"
)

// App is the main TUI application. It is also the set of UI handles the
// gallery core writes to.
type App struct {
	app    *tview.Application
	pages  *tview.Pages
	cfg    *config.Config
	core   *core.App
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc

	// UI components
	mainFlex        *tview.Flex
	header          *tview.TextView
	footer          *tview.TextView
	factView        *tview.TextView
	factButton      *tview.Button
	fetchButton     *tview.Button
	galleryPages    *tview.Pages
	cardList        *tview.List
	placeholderView *tview.TextView
	modalBox        *tview.Flex
	modalText       *tview.TextView
	closeButton     *tview.Button

	// State, only touched on the event goroutine
	modalOpen       bool
	triggerDisabled bool
}

// NewApp creates a new TUI application and wires the gallery core to it.
func NewApp(cfg *config.Config, fetcher feed.Fetcher, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		app:    tview.NewApplication(),
		pages:  tview.NewPages(),
		cfg:    cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
	a.setupUI()

	c, err := core.New(cfg, core.Handles{
		Trigger: a,
		Gallery: a,
		Modal:   a,
		Fact:    a,
	}, fetcher, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("wire gallery: %w", err)
	}
	a.core = c

	return a, nil
}

// setupUI initializes all UI components.
func (a *App) setupUI() {
	// Header
	a.header = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText(fmt.Sprintf("\n[white::b]Space Gallery[white] | Feed: [green]%s", tview.Escape(a.cfg.Feed.URL)))
	a.header.SetBackgroundColor(tcell.ColorDarkBlue)

	// Footer with keybindings
	a.footer = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[yellow]g[white]:Get Space Images [yellow]f[white]:New fact [yellow]Enter[white]:Details [yellow]Esc[white]:Close [yellow]q[white]:Quit")
	a.footer.SetBackgroundColor(tcell.ColorDarkBlue)

	// Fact bar
	a.factView = tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)
	a.factButton = tview.NewButton("New fact").SetSelectedFunc(func() {
		go a.core.NextFact()
	})
	factBar := tview.NewFlex().
		AddItem(a.factView, 0, 1, false).
		AddItem(a.factButton, 12, 0, false)

	a.fetchButton = tview.NewButton(domain.TriggerLabelIdle).SetSelectedFunc(a.fetch)

	a.createGalleryPanel()
	a.createModalPanel()

	a.mainFlex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.header, 3, 0, false).
		AddItem(factBar, 2, 0, false).
		AddItem(a.fetchButton, 1, 0, false).
		AddItem(a.galleryPages, 0, 1, true).
		AddItem(a.footer, 1, 0, false)

	a.pages.AddPage(mainPage, a.mainFlex, true, true)
	a.pages.AddPage(modalPage, a.modalOverlay(), true, false)

	// Global key bindings
	a.app.SetInputCapture(a.handleGlobalKeys)
	a.app.EnableMouse(true)

	a.app.SetRoot(a.pages, true).SetFocus(a.cardList)
}

// handleGlobalKeys handles global keyboard shortcuts.
func (a *App) handleGlobalKeys(event *tcell.EventKey) *tcell.EventKey {
	if a.modalOpen {
		switch {
		case event.Key() == tcell.KeyEscape:
			go a.core.Modal.HandleKey(modal.KeyEscape)
			return nil
		case event.Key() == tcell.KeyRune && (event.Rune() == 'q' || event.Rune() == 'Q'):
			a.Stop()
			return nil
		}
		return event
	}

	switch event.Key() {
	case tcell.KeyRune:
		switch event.Rune() {
		case 'g', 'G':
			a.fetch()
			return nil
		case 'f', 'F':
			go a.core.NextFact()
			return nil
		case 'q', 'Q':
			a.Stop()
			return nil
		}
	}

	return event
}

// fetch starts a feed fetch unless the trigger is disabled.
func (a *App) fetch() {
	if a.triggerDisabled {
		return
	}

	go func() {
		err := a.core.Fetch(a.ctx)
		if errors.Is(err, domain.ErrFetchInFlight) {
			a.logger.Debug("fetch already in flight")
		}
	}()
}

// SetTrigger updates the fetch button.
func (a *App) SetTrigger(view domain.TriggerView) {
	a.app.QueueUpdateDraw(func() {
		a.triggerDisabled = view.Disabled
		a.fetchButton.SetLabel(view.Label)
		a.fetchButton.SetDisabled(view.Disabled)
	})
}

// SetFactText updates the fact bar.
func (a *App) SetFactText(text string) {
	a.app.QueueUpdateDraw(func() {
		a.factView.SetText(tview.Escape(text))
	})
}

// Run starts the TUI application.
func (a *App) Run() error {
	a.core.Start()
	return a.app.Run()
}

// Stop stops the TUI application.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}
