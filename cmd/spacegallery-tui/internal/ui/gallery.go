package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/iconidentify/spacegallery/internal/domain"
	"github.com/iconidentify/spacegallery/internal/modal"
)

// createGalleryPanel creates the card list and its placeholder view.
func (a *App) createGalleryPanel() {
	a.cardList = tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true)
	a.cardList.SetBorder(true).SetTitle(" Gallery ")
	a.cardList.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		go a.openCard(index)
	})

	a.placeholderView = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText(idleText)
	a.placeholderView.SetBorder(true).SetTitle(" Gallery ")

	a.galleryPages = tview.NewPages().
		AddPage(cardsPage, a.cardList, true, false).
		AddPage(placeholderPage, a.placeholderView, true, true)
}

// createModalPanel creates the detail view shown over the gallery.
func (a *App) createModalPanel() {
	a.modalText = tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true).
		SetScrollable(true)

	a.closeButton = tview.NewButton("Close").SetSelectedFunc(func() {
		go a.core.Modal.Close(modal.CloseButton)
	})

	a.modalBox = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.modalText, 0, 1, false).
		AddItem(a.closeButton, 1, 0, true)
	a.modalBox.SetBorder(true)
}

// modalOverlay centers the modal box. Clicks outside it land on the backdrop.
func (a *App) modalOverlay() tview.Primitive {
	overlay := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(a.modalBox, 0, 4, true).
			AddItem(nil, 0, 1, false), 0, 4, true).
		AddItem(nil, 0, 1, false)

	overlay.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if a.modalBox.InRect(event.Position()) {
			return action, event
		}
		if action == tview.MouseLeftClick {
			go a.core.Modal.HandleClick(modal.TargetBackdrop)
		}
		return tview.MouseConsumed, nil
	})

	return overlay
}

func (a *App) openCard(index int) {
	if err := a.core.OpenCard(index); err != nil {
		a.logger.Warn("open card failed", "index", index, "error", err)
	}
}

// ShowGallery swaps the gallery between the card list and a placeholder.
func (a *App) ShowGallery(view domain.GalleryView) {
	a.app.QueueUpdateDraw(func() {
		if view.Placeholder != nil {
			a.placeholderView.SetText(placeholderText(view.Placeholder))
			a.galleryPages.SwitchToPage(placeholderPage)
			return
		}

		a.cardList.Clear()
		for _, card := range view.Cards {
			a.cardList.AddItem(cardMainText(card), cardSecondaryText(card), 0, nil)
		}
		a.galleryPages.SwitchToPage(cardsPage)
		if !a.modalOpen {
			a.app.SetFocus(a.cardList)
		}
	})
}

// ShowModal shows or hides the detail overlay.
func (a *App) ShowModal(view domain.ModalView) {
	a.app.QueueUpdateDraw(func() {
		a.modalOpen = view.Open
		if !view.Open {
			a.modalText.Clear()
			a.pages.HidePage(modalPage)
			a.app.SetFocus(a.galleryPages)
			return
		}

		a.modalBox.SetTitle(" " + tview.Escape(view.Title) + " ")
		a.modalText.SetText(modalText(view)).ScrollToBeginning()
		a.pages.ShowPage(modalPage)
		if view.Focus == domain.FocusClose {
			a.app.SetFocus(a.closeButton)
		}
	})
}
