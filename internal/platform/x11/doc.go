// Package x11 provides the X11 backend. It drives xdotool for input and
// window control, scrot for screenshots and xdg-open (or a configured
// alternative) for URLs. Nothing is linked against Xlib; every operation is a
// child process run under the resolved session environment.
package x11
