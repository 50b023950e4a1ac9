// Package term hosts interactive tools in a raw-mode terminal.
//
// App owns the terminal, an input reader goroutine and a frame-paced main
// loop. Input is parsed into KeyEvent, MouseEvent (SGR-1006), FocusEvent
// (mode 1004) and ResizeEvent values and delivered to a Handler on the main
// loop. Each frame first runs callbacks registered with RequestFrame, then
// redraws the Screen if anything marked it dirty, writing only the cells
// that changed.
//
// App implements drag.FrameScheduler, so a drag engine can be paced by the
// terminal's refresh rate directly.
package term
