package ui

import (
	"fmt"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/vidgrab/vidgrab/internal/config"
	"github.com/vidgrab/vidgrab/internal/download"
	"github.com/vidgrab/vidgrab/internal/model"
	"github.com/vidgrab/vidgrab/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	orchestrator download.Orchestrator

	urlEntry    *widget.Entry
	fetchBtn    *widget.Button
	downloadBtn *widget.Button
	titleLabel  *widget.Label
	formatList  *widget.List
	progress    *widget.ProgressBarInfinite
	logList     *widget.List

	// catalog currently offered for selection; owned by the Fyne thread and
	// replaced wholesale by fetch callbacks
	formats  []model.Format
	selected int

	logLines []string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, orchestrator download.Orchestrator) *RootUI {
	ui := &RootUI{
		window:       window,
		settings:     config.NewSettings(app),
		orchestrator: orchestrator,
		selected:     -1,
	}

	// Every callback runs on a worker goroutine; hop onto the Fyne thread
	// before touching widgets or the catalog
	orchestrator.SetCallbacks(download.Callbacks{
		OnFetchSuccess: func(info model.VideoInfo) {
			fyne.Do(func() { ui.applyFetchResult(info) })
		},
		OnFetchFailure: func(kind model.ErrorKind, message string) {
			fyne.Do(func() { ui.applyFetchFailure(kind, message) })
		},
		OnDownloadLine: func(line string) {
			fyne.Do(func() { ui.appendLog(line) })
		},
		OnDownloadComplete: func(success bool) {
			fyne.Do(func() { ui.applyDownloadResult(success) })
		},
	})

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(LabelURLPlaceholder)
	ui.urlEntry.Validator = ui.validateURL
	// Trigger the fetch when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onFetchClick()
	}

	ui.fetchBtn = widget.NewButton(LabelFetch, ui.onFetchClick)

	ui.downloadBtn = widget.NewButton(LabelDownload, ui.onDownloadClick)
	ui.downloadBtn.Disable()

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.Wrapping = fyne.TextWrapWord

	ui.formatList = widget.NewList(
		func() int { return len(ui.formats) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(ui.formats) {
				obj.(*widget.Label).SetText(ui.formats[id].Description)
			}
		},
	)
	ui.formatList.OnSelected = func(id widget.ListItemID) { ui.selected = id }
	ui.formatList.OnUnselected = func(widget.ListItemID) { ui.selected = -1 }

	ui.progress = widget.NewProgressBarInfinite()
	ui.progress.Stop()

	ui.logList = widget.NewList(
		func() int { return len(ui.logLines) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(ui.logLines) {
				obj.(*widget.Label).SetText(ui.logLines[id])
			}
		},
	)

	locationLabel := widget.NewLabel(SaveLocationPrefix + ui.orchestrator.DownloadDirectory())
	locationLabel.TextStyle = fyne.TextStyle{Italic: true}

	topPanel := container.NewBorder(nil, nil, nil, ui.fetchBtn, ui.urlEntry)

	formatScroll := container.NewScroll(ui.formatList)
	formatScroll.SetMinSize(fyne.NewSize(FormatListMinWidth, FormatListMinHeight))

	logScroll := container.NewScroll(ui.logList)
	logScroll.SetMinSize(fyne.NewSize(FormatListMinWidth, StatusLogMinHeight))

	content := container.NewVBox(
		topPanel,
		ui.titleLabel,
		widget.NewLabel(LabelQualities),
		formatScroll,
		ui.downloadBtn,
		widget.NewLabel(LabelProgress),
		ui.progress,
		logScroll,
		locationLabel,
	)

	ui.window.SetContent(content)
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// onFetchClick handles the fetch button click
func (ui *RootUI) onFetchClick() {
	ui.setBusy(true)

	// Drop the previous catalog before the new fetch
	ui.formats = nil
	ui.selected = -1
	ui.formatList.UnselectAll()
	ui.formatList.Refresh()
	ui.downloadBtn.Disable()

	ui.appendLog(MsgFetching)

	if err := ui.orchestrator.FetchInfo(ui.urlEntry.Text); err != nil {
		// Busy: a prior operation has not settled yet
		ui.setBusy(false)
		dialog.ShowInformation(DialogWarningTitle, err.Error(), ui.window)
	}
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	if ui.selected < 0 || ui.selected >= len(ui.formats) {
		dialog.ShowInformation(DialogWarningTitle, DialogSelectQuality, ui.window)
		return
	}

	format := ui.formats[ui.selected]

	ui.setBusy(true)
	ui.downloadBtn.Disable()
	ui.appendLog(fmt.Sprintf(MsgStartingDownload, format.Description))

	if err := ui.orchestrator.Download(ui.urlEntry.Text, format.ID); err != nil {
		ui.setBusy(false)
		ui.downloadBtn.Enable()
		dialog.ShowInformation(DialogWarningTitle, err.Error(), ui.window)
	}
}

// applyFetchResult installs the new catalog after a successful fetch
func (ui *RootUI) applyFetchResult(info model.VideoInfo) {
	ui.setBusy(false)

	ui.titleLabel.SetText(TitlePrefix + info.Title)
	ui.formats = info.Formats
	ui.formatList.Refresh()
	ui.downloadBtn.Enable()

	ui.appendLog(fmt.Sprintf(MsgFoundFormats, len(info.Formats)))
}

// applyFetchFailure reports a failed fetch; the download trigger stays
// disabled until a fetch succeeds
func (ui *RootUI) applyFetchFailure(kind model.ErrorKind, message string) {
	ui.setBusy(false)

	text := fmt.Sprintf("%s: %s", kind, message)
	ui.appendLog(text)
	dialog.ShowError(fmt.Errorf("%s", text), ui.window)
}

// applyDownloadResult finishes a download, successful or not
func (ui *RootUI) applyDownloadResult(success bool) {
	ui.setBusy(false)
	ui.downloadBtn.Enable()

	if !success {
		dialog.ShowError(fmt.Errorf("%s", DialogDownloadFailed), ui.window)
		return
	}

	ui.appendLog(MsgDownloadDone)

	downloadDir := ui.orchestrator.DownloadDirectory()
	dialog.ShowInformation(DialogSuccessTitle, fmt.Sprintf(DialogDownloadOK, downloadDir), ui.window)

	if ui.settings.GetRevealOnComplete() {
		go platform.OpenDirectoryInManager(downloadDir)
	}
}

// setBusy toggles the busy indicator and the fetch trigger
func (ui *RootUI) setBusy(busy bool) {
	if busy {
		ui.fetchBtn.Disable()
		ui.progress.Start()
	} else {
		ui.fetchBtn.Enable()
		ui.progress.Stop()
	}
}

// appendLog adds a line to the status log and keeps the newest line visible
func (ui *RootUI) appendLog(line string) {
	ui.logLines = append(ui.logLines, line)
	ui.logList.Refresh()
	ui.logList.ScrollToBottom()
}
