// Package carousel implements a paged, wraparound window over a fixed list of
// items.
//
// A Window captures the validated geometry (list length and page size). State
// is a plain value holding the first visible index and the auto-advance mode;
// every transition goes through Window.Reduce so navigation can be tested
// without any UI binding. Advancing or retreating moves the window by a full
// page, not by a single item.
//
// Carousel couples a Window with its items and current State for callers that
// own a single instance. Loop runs a Carousel on its own goroutine and feeds
// timer ticks and manual navigation through the same event loop. The first
// manual command permanently disables auto-advance.
package carousel
