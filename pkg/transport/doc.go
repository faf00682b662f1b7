// Package transport abstracts the USB HID access the pairing core needs:
// enumerating visible devices, opening one, and exchanging feature
// reports. The production implementation wraps hidapi via
// github.com/sstallion/go-hid; tests substitute a fake.
package transport
