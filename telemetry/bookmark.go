package telemetry

import (
	"fmt"
	"log/slog"
	"math"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFrameSpike    BookmarkType = "frame_spike"
	BookmarkFullDispersal BookmarkType = "full_dispersal"
	BookmarkSettled       BookmarkType = "settled"
	BookmarkIdle          BookmarkType = "idle"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Frame       int32        `csv:"frame"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"frame", b.Frame,
		"description", b.Description,
	)
}

// BookmarkDetector detects notable moments in the session from window stats.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	compact   float64
	dispersed float64

	// State tracking
	dispersed0  bool // previous window reached full dispersal
	settled0    bool // previous window ended settled
	idleWindows int
}

// NewBookmarkDetector creates a detector with the given history size and expansion range.
func NewBookmarkDetector(historySize int, compact, dispersed float64) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
		compact:     compact,
		dispersed:   dispersed,
		settled0:    true,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkFrameSpike(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkFullDispersal(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkSettled(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkIdle(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

// checkFrameSpike fires when p95 frame time exceeds twice the rolling mean.
func (bd *BookmarkDetector) checkFrameSpike(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 || stats.FrameMsP95 == 0 {
		return nil
	}

	var sum float64
	for _, h := range history {
		sum += h.FrameMsMean
	}
	avg := sum / float64(len(history))
	if avg == 0 {
		return nil
	}

	if stats.FrameMsP95 > avg*2 && stats.FrameMsP95 > 20 {
		return &Bookmark{
			Type:        BookmarkFrameSpike,
			Frame:       stats.WindowEndFrame,
			Description: fmt.Sprintf("p95 frame %.1fms is %.1fx average (%.1fms)", stats.FrameMsP95, stats.FrameMsP95/avg, avg),
		}
	}
	return nil
}

// checkFullDispersal fires on the first window whose expansion comes within 2% of the dispersed target.
func (bd *BookmarkDetector) checkFullDispersal(stats WindowStats) *Bookmark {
	threshold := bd.dispersed - 0.02*(bd.dispersed-bd.compact)
	reached := stats.ExpansionMax >= threshold
	defer func() { bd.dispersed0 = reached }()

	if reached && !bd.dispersed0 {
		return &Bookmark{
			Type:        BookmarkFullDispersal,
			Frame:       stats.WindowEndFrame,
			Description: fmt.Sprintf("Swarm reached expansion %.2f of %.2f", stats.ExpansionMax, bd.dispersed),
		}
	}
	return nil
}

// checkSettled fires when a released swarm returns within 0.01 of compact.
func (bd *BookmarkDetector) checkSettled(stats WindowStats) *Bookmark {
	settled := stats.HeldFrac == 0 && math.Abs(stats.ExpansionEnd-bd.compact) <= 0.01
	defer func() { bd.settled0 = settled }()

	if settled && !bd.settled0 {
		return &Bookmark{
			Type:        BookmarkSettled,
			Frame:       stats.WindowEndFrame,
			Description: fmt.Sprintf("Swarm settled at expansion %.3f", stats.ExpansionEnd),
		}
	}
	return nil
}

// checkIdle fires once after five consecutive windows without a press.
func (bd *BookmarkDetector) checkIdle(stats WindowStats) *Bookmark {
	if stats.Presses > 0 || stats.HeldFrac > 0 {
		bd.idleWindows = 0
		return nil
	}
	bd.idleWindows++
	if bd.idleWindows == 5 {
		return &Bookmark{
			Type:        BookmarkIdle,
			Frame:       stats.WindowEndFrame,
			Description: fmt.Sprintf("No interaction for %d windows", bd.idleWindows),
		}
	}
	return nil
}
