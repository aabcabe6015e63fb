package ui

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shelf/internal/catalog"
)

// openBrowser hands url to the platform's default opener without waiting.
func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// preferredLink is the link copied with y: the free download when there is
// one, otherwise the Amazon link.
func preferredLink(b catalog.Book) string {
	switch {
	case b.HasDownload():
		return b.ContentLockerLink
	case b.HasPurchase():
		return b.AmazonLink
	default:
		return ""
	}
}

func openURLCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		if err := open(url); err != nil {
			return noticeMsg(err.Error())
		}
		return noticeMsg("Opened " + url)
	}
}

func copyCmd(copyText func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return noticeMsg(err.Error())
		}
		return noticeMsg("Copied " + text)
	}
}
