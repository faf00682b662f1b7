// Package log provides structured event logging for pairing sessions.
//
// Events are captured at three layers: transport (feature-report bytes
// crossing the HID boundary), report (decoded pairing data), and session
// (device matching and lifecycle). Applications receive events through
// the Logger interface; adapters are provided for log/slog console
// output and for append-only CBOR files that Reader can replay.
package log
