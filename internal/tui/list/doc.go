// Package listview provides a scrolling, row-per-item list for Bubble Tea
// programs.
//
// Only the rows inside the viewport are rendered, so
// redraws stay cheap while the item slice is swapped on every keystroke of
// a live filter. Navigation covers arrow keys, page up/down and home/end;
// printable keys are left to the caller so they can feed a search input.
package listview
