package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/iconidentify/spacegallery/internal/domain"
)

const idleText = "\n\n[gray]Press [yellow]g[gray] to get space images"

func cardMainText(card domain.Card) string {
	return tview.Escape(card.Title)
}

func cardSecondaryText(card domain.Card) string {
	var media string
	switch {
	case card.HasImage():
		media = card.ImageSrc
	case card.VideoLabel != "":
		media = card.VideoLabel
	default:
		media = card.Href
	}

	if card.Date == "" {
		return tview.Escape(media)
	}
	return tview.Escape(card.Date + " | " + media)
}

func placeholderText(p *domain.Placeholder) string {
	color := "white"
	if p.Kind == domain.PlaceholderError {
		color = "red"
	}

	text := fmt.Sprintf("\n\n[%s]%s %s", color, p.Icon, tview.Escape(p.Message))
	if p.Detail != "" {
		text += "\n[gray]" + tview.Escape(p.Detail)
	}
	return text
}

func modalText(view domain.ModalView) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[white::b]%s[-::-]\n", tview.Escape(view.Title))
	if view.Date != "" {
		fmt.Fprintf(&b, "[gray]%s[-]\n", tview.Escape(view.Date))
	}
	b.WriteString("\n")
	b.WriteString(tview.Escape(view.Description))
	b.WriteString("\n")

	switch {
	case view.Video != nil:
		fmt.Fprintf(&b, "\n[yellow]Player:[-] %s\n", tview.Escape(view.Video.Src))
	case view.Link != nil:
		fmt.Fprintf(&b, "\n[yellow]%s:[-] %s\n", tview.Escape(view.Link.Label), tview.Escape(view.Link.Href))
	case view.Image.Visible:
		fmt.Fprintf(&b, "\n[yellow]Image:[-] %s\n", tview.Escape(view.Image.Src))
	}

	return b.String()
}
