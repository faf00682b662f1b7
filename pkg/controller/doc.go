// Package controller matches a supported Sony controller among the
// enumerated HID devices and drives the pairing exchange over an open
// session: reading the currently paired host MAC and writing a new one.
package controller
