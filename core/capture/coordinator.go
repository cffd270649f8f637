// ABOUTME: Capture coordinator orchestrates select, convert, refine, persist, notify
// ABOUTME: Owns the pending-refinement slot and the capture state machine

package capture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"markdown-collector-api/core/collection"
	"markdown-collector-api/core/domain"
	coreerrors "markdown-collector-api/core/errors"
	"markdown-collector-api/core/interfaces"
	"markdown-collector-api/core/settings"
)

// Coordinator runs one capture operation end to end across the selected
// tabs. Per-tab work inside an operation is strictly sequential in
// selection order; refinement-requiring operations are serialized by the
// single pending slot.
type Coordinator struct {
	converter  interfaces.PageConverter
	refiner    interfaces.Refiner
	selector   interfaces.TabSelector
	repository *collection.Repository
	settings   *settings.Service
	clipboard  interfaces.Clipboard
	notifier   interfaces.Notifier
	logger     interfaces.Logger
	pending    *pendingSlot
}

// Config bundles the coordinator's collaborators.
type Config struct {
	Converter  interfaces.PageConverter
	Refiner    interfaces.Refiner
	Selector   interfaces.TabSelector
	Repository *collection.Repository
	Settings   *settings.Service
	Clipboard  interfaces.Clipboard
	Notifier   interfaces.Notifier
	Logger     interfaces.Logger
}

// NewCoordinator creates a capture coordinator.
func NewCoordinator(cfg Config) *Coordinator {
	return &Coordinator{
		converter:  cfg.Converter,
		refiner:    cfg.Refiner,
		selector:   cfg.Selector,
		repository: cfg.Repository,
		settings:   cfg.Settings,
		clipboard:  cfg.Clipboard,
		notifier:   cfg.Notifier,
		logger:     cfg.Logger,
		pending:    newPendingSlot(cfg.Notifier),
	}
}

// Capture starts a capture operation for the currently selected tabs.
// When refinement is unavailable every tab is converted and persisted
// directly; otherwise a pending refinement is established and the
// operation suspends until the user answers the prompt.
func (c *Coordinator) Capture(ctx context.Context, copyToClipboard bool) (domain.CaptureResult, error) {
	cfg := c.settings.Load(ctx)

	tabs := c.selector.SelectTabs(ctx, cfg.EnableMultitab)
	if len(tabs) == 0 {
		err := &coreerrors.NoTabsError{}
		c.notifier.Notify("No tabs selected", domain.NotificationError)
		return domain.CaptureResult{Status: domain.CaptureFailed, Message: err.Error()}, err
	}

	// Fast path: refinement disabled or no credential configured.
	if !cfg.RefinementAvailable() {
		return c.processDirect(ctx, tabs, cfg, copyToClipboard)
	}

	return c.beginRefinement(ctx, tabs, cfg, copyToClipboard)
}

// processDirect converts every tab and persists the results without
// entering the awaiting-instruction state.
func (c *Coordinator) processDirect(ctx context.Context, tabs []domain.Tab, cfg domain.Settings, copyToClipboard bool) (domain.CaptureResult, error) {
	entries, failed := c.convertTabs(ctx, tabs, cfg)
	return c.persist(ctx, entries, failed, copyToClipboard)
}

// beginRefinement converts the first tab (single-tab) or records the
// whole selection (multi-tab) and occupies the pending slot.
func (c *Coordinator) beginRefinement(ctx context.Context, tabs []domain.Tab, cfg domain.Settings, copyToClipboard bool) (domain.CaptureResult, error) {
	pending := domain.PendingRefinement{
		IsMultiTab:          len(tabs) > 1,
		TabCount:            len(tabs),
		CopyAfterRefinement: copyToClipboard,
		WindowID:            tabs[0].WindowID,
		Timestamp:           time.Now().UTC(),
	}
	for _, tab := range tabs {
		pending.OriginTabIDs = append(pending.OriginTabIDs, tab.ID)
	}

	if len(tabs) == 1 {
		markdown, err := c.converter.Convert(ctx, tabs[0], interfaces.ConvertOptions{UseExtraction: cfg.EnableCleanup})
		if err != nil {
			c.notifier.Notify("Failed to generate Markdown", domain.NotificationError)
			return domain.CaptureResult{Status: domain.CaptureFailed, Message: err.Error()}, err
		}
		pending.Markdown = markdown
		pending.URL = tabs[0].URL
		pending.Title = tabs[0].Title
	} else {
		// Remaining tabs are converted once the instruction arrives.
		pending.AllTabs = tabs
	}

	if _, err := c.pending.Begin(pending); err != nil {
		c.notifier.Notify("A refinement is already in progress", domain.NotificationError)
		return domain.CaptureResult{Status: domain.CaptureFailed, Message: err.Error()}, err
	}

	return domain.CaptureResult{Status: domain.CaptureAwaitingPrompt, Message: "awaiting refinement instruction"}, nil
}

// Pending returns the current pending refinement, if any.
func (c *Coordinator) Pending() (domain.PendingRefinement, bool) {
	pending, _, ok := c.pending.Current()
	return pending, ok
}

// CancelRefinement clears the pending slot without persisting anything.
func (c *Coordinator) CancelRefinement() domain.CaptureResult {
	if c.pending.Cancel() {
		c.logger.Info("Pending refinement cancelled", nil)
		return domain.CaptureResult{Status: domain.CaptureCancelled}
	}
	return domain.CaptureResult{Status: domain.CaptureCancelled, Message: "no refinement was pending"}
}

// HandleTabActivated auto-invalidates the pending slot when the user
// moves to a tab or window outside the capture's origin.
func (c *Coordinator) HandleTabActivated(tabID, windowID int) {
	if c.pending.InvalidateOnTabSwitch(tabID, windowID) {
		c.logger.Info("Pending refinement invalidated by tab switch", map[string]interface{}{
			"tabId":    tabID,
			"windowId": windowID,
		})
	}
}

// ProcessRefinement resolves the pending slot with the user's answer.
// An empty prompt means "save without refinement". Collective mode
// merges every tab into one batch entry and calls the refiner once.
func (c *Coordinator) ProcessRefinement(ctx context.Context, prompt string, collective bool) (domain.CaptureResult, error) {
	pending, generation, ok := c.pending.Current()
	if !ok {
		err := fmt.Errorf("no pending refinement to process")
		return domain.CaptureResult{Status: domain.CaptureFailed, Message: err.Error()}, err
	}

	cfg := c.settings.Load(ctx)
	prompt = strings.TrimSpace(prompt)

	var (
		entries []domain.Entry
		failed  int
		err     error
	)

	switch {
	case prompt == "":
		// Save without refinement; collective degrades to individual.
		entries, failed = c.resolveWithoutRefinement(ctx, pending, cfg)
	case pending.IsMultiTab && collective:
		entries, err = c.resolveCollective(ctx, pending, cfg, prompt)
	case pending.IsMultiTab:
		entries, failed = c.resolveIndividual(ctx, pending, cfg, prompt)
	default:
		entries, err = c.resolveSingle(ctx, pending, cfg, prompt)
	}

	if err != nil {
		// Refinement failed terminally: prior state stays untouched and
		// the slot is released so the user can retry.
		c.pending.Clear(generation)
		c.notifyRefinementFailure(err)
		return domain.CaptureResult{Status: domain.CaptureFailed, Message: err.Error()}, err
	}

	// A cancellation or tab switch while calls were in flight discards
	// the results instead of persisting them.
	if !c.pending.StillCurrent(generation) {
		c.logger.Info("Discarding refinement result, pending state was cleared mid-flight", nil)
		return domain.CaptureResult{Status: domain.CaptureCancelled}, nil
	}
	c.pending.Clear(generation)

	return c.persist(ctx, entries, failed, pending.CopyAfterRefinement)
}

// resolveSingle refines the already-converted markdown of a single tab.
func (c *Coordinator) resolveSingle(ctx context.Context, pending domain.PendingRefinement, cfg domain.Settings, prompt string) ([]domain.Entry, error) {
	tabID := 0
	if len(pending.OriginTabIDs) > 0 {
		tabID = pending.OriginTabIDs[0]
	}

	refined, err := c.refiner.Refine(ctx, pending.Markdown, prompt, cfg.Credentials(), tabID)
	if err != nil {
		if coreerrors.IsMalformedResponse(err) {
			// The refiner hands the original markdown back; keep it
			// rather than dropping the capture.
			c.notifier.Notify("Refinement response was malformed, saved unrefined content", domain.NotificationWarning)
			return []domain.Entry{domain.NewEntry(pending.URL, pending.Title, refined)}, nil
		}
		return nil, err
	}
	return []domain.Entry{domain.NewEntry(pending.URL, pending.Title, refined)}, nil
}

// resolveIndividual converts and refines each tab in selection order
// with the same instruction. Per-tab failures are logged, counted and
// skipped; they never abort the siblings.
func (c *Coordinator) resolveIndividual(ctx context.Context, pending domain.PendingRefinement, cfg domain.Settings, prompt string) ([]domain.Entry, int) {
	var entries []domain.Entry
	failed := 0

	for _, tab := range pending.AllTabs {
		markdown, err := c.converter.Convert(ctx, tab, interfaces.ConvertOptions{UseExtraction: cfg.EnableCleanup})
		if err != nil {
			c.logger.Error("Skipping tab, conversion failed", map[string]interface{}{
				"url":   tab.URL,
				"error": err.Error(),
			})
			failed++
			continue
		}

		refined, err := c.refiner.Refine(ctx, markdown, prompt, cfg.Credentials(), tab.ID)
		if err != nil {
			if coreerrors.IsMalformedResponse(err) {
				// refined carries the unrefined fallback.
				entries = append(entries, domain.NewEntry(tab.URL, tab.Title, refined))
				continue
			}
			c.logger.Error("Skipping tab, refinement failed", map[string]interface{}{
				"url":   tab.URL,
				"error": err.Error(),
			})
			failed++
			continue
		}

		entries = append(entries, domain.NewEntry(tab.URL, tab.Title, refined))
	}
	return entries, failed
}

// resolveCollective converts every tab, concatenates the results under
// per-tab subheadings and refines the combined document once. The
// outcome is a single batch entry listing every contributing source.
func (c *Coordinator) resolveCollective(ctx context.Context, pending domain.PendingRefinement, cfg domain.Settings, prompt string) ([]domain.Entry, error) {
	combined, sources := c.combineTabs(ctx, pending.AllTabs, cfg)
	if combined == "" {
		return nil, &coreerrors.ConversionError{Message: "no tab produced content"}
	}

	tabID := 0
	if len(pending.OriginTabIDs) > 0 {
		tabID = pending.OriginTabIDs[0]
	}

	refined, err := c.refiner.Refine(ctx, combined, prompt, cfg.Credentials(), tabID)
	if err != nil {
		if coreerrors.IsMalformedResponse(err) {
			c.notifier.Notify("Refinement response was malformed, saved unrefined content", domain.NotificationWarning)
			refined = combined
		} else {
			return nil, err
		}
	}

	first := pending.AllTabs[0]
	entry := domain.NewEntry(first.URL, first.Title, refined)
	entry.IsBatchProcessed = true
	entry.BatchInfo = &domain.BatchInfo{Prompt: prompt, Sources: sources}
	return []domain.Entry{entry}, nil
}

// resolveWithoutRefinement persists the capture bypassing the refiner.
func (c *Coordinator) resolveWithoutRefinement(ctx context.Context, pending domain.PendingRefinement, cfg domain.Settings) ([]domain.Entry, int) {
	if !pending.IsMultiTab {
		return []domain.Entry{domain.NewEntry(pending.URL, pending.Title, pending.Markdown)}, 0
	}
	return c.convertTabs(ctx, pending.AllTabs, cfg)
}

// convertTabs converts tabs sequentially in selection order, skipping
// and counting failures.
func (c *Coordinator) convertTabs(ctx context.Context, tabs []domain.Tab, cfg domain.Settings) ([]domain.Entry, int) {
	var entries []domain.Entry
	failed := 0

	for _, tab := range tabs {
		markdown, err := c.converter.Convert(ctx, tab, interfaces.ConvertOptions{UseExtraction: cfg.EnableCleanup})
		if err != nil {
			c.logger.Error("Skipping tab, conversion failed", map[string]interface{}{
				"url":   tab.URL,
				"error": err.Error(),
			})
			failed++
			continue
		}
		entries = append(entries, domain.NewEntry(tab.URL, tab.Title, markdown))
	}
	return entries, failed
}

// combineTabs concatenates every tab's markdown under a subheading with
// its URL marker. Tabs that fail to convert are logged and skipped.
func (c *Coordinator) combineTabs(ctx context.Context, tabs []domain.Tab, cfg domain.Settings) (string, []domain.BatchSource) {
	var combined strings.Builder
	var sources []domain.BatchSource

	for _, tab := range tabs {
		markdown, err := c.converter.Convert(ctx, tab, interfaces.ConvertOptions{UseExtraction: cfg.EnableCleanup})
		if err != nil {
			c.logger.Error("Excluding tab from batch, conversion failed", map[string]interface{}{
				"url":   tab.URL,
				"error": err.Error(),
			})
			continue
		}
		fmt.Fprintf(&combined, "\n\n## %s\n<url>%s</url>\n\n%s\n\n", tab.Title, tab.URL, markdown)
		sources = append(sources, domain.BatchSource{URL: tab.URL, Title: tab.Title})
	}
	return strings.TrimSpace(combined.String()), sources
}

// persist merges the entries into the collection and optionally copies
// the wrapped markdown to the clipboard. Persistence failures surface;
// clipboard failures downgrade to a warning.
func (c *Coordinator) persist(ctx context.Context, entries []domain.Entry, failed int, copyToClipboard bool) (domain.CaptureResult, error) {
	if len(entries) == 0 {
		message := fmt.Sprintf("Failed to process %d tab(s)", failed)
		c.notifier.Notify(message, domain.NotificationError)
		err := &coreerrors.ConversionError{Message: "every tab failed"}
		return domain.CaptureResult{Status: domain.CaptureFailed, Message: message, Failed: failed}, err
	}

	if _, err := c.repository.Merge(ctx, entries); err != nil {
		c.notifier.Notify("Content may not have been saved", domain.NotificationError)
		return domain.CaptureResult{Status: domain.CaptureFailed, Message: err.Error(), Failed: failed + len(entries)}, err
	}

	result := domain.CaptureResult{
		Status:    domain.CaptureSaved,
		Succeeded: len(entries),
		Failed:    failed,
	}

	if copyToClipboard {
		if err := c.copyEntries(entries); err != nil {
			c.notifier.Notify("Failed to copy to clipboard, but Markdown was saved", domain.NotificationWarning)
			c.logger.Warn("Clipboard write failed", map[string]interface{}{"error": err.Error()})
		} else {
			result.Status = domain.CaptureCopied
			result.Copied = true
		}
	}

	message := fmt.Sprintf("Successfully processed %d tab(s)", len(entries))
	if result.Copied {
		message += " and copied to clipboard"
	}
	if failed > 0 {
		c.notifier.Notify(fmt.Sprintf("Failed to process %d tab(s)", failed), domain.NotificationError)
	}
	c.notifier.Notify(message, domain.NotificationInfo)
	result.Message = message

	return result, nil
}

// copyEntries writes the wrapped markdown of every entry to the system
// clipboard.
func (c *Coordinator) copyEntries(entries []domain.Entry) error {
	blocks := make([]string, 0, len(entries))
	for _, entry := range entries {
		blocks = append(blocks, WrapEntry(entry))
	}
	if err := c.clipboard.WriteText(strings.Join(blocks, "\n\n\n")); err != nil {
		return &coreerrors.ClipboardError{Message: err.Error()}
	}
	return nil
}

// notifyRefinementFailure reports a refine failure distinctly from a
// save failure.
func (c *Coordinator) notifyRefinementFailure(err error) {
	switch {
	case coreerrors.IsAuth(err):
		c.notifier.Notify("Authentication error! Please check your API key.", domain.NotificationError)
	case coreerrors.IsConnection(err):
		c.notifier.Notify("Connection error! Please check the base URL in settings.", domain.NotificationError)
	default:
		c.notifier.Notify(fmt.Sprintf("Failed to refine content: %s", err.Error()), domain.NotificationError)
	}
}

// WrapEntry renders an entry with its URL and title markers, the shape
// clipboard consumers expect.
func WrapEntry(entry domain.Entry) string {
	return fmt.Sprintf("<url>%s</url>\n<title>%s</title>\n%s", entry.URL, entry.Title, entry.Markdown)
}
