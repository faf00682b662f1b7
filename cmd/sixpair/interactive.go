package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sixpair/sixpair-go/pkg/controller"
	"github.com/sixpair/sixpair-go/pkg/mac"
)

// runInteractive drives the readline command loop against an open session.
func runInteractive(session *controller.Session, includeSerial, verify bool) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sixpair> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	fmt.Printf("Connected to %s\n", session.GetDisplayName(includeSerial))
	printInteractiveHelp()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			printInteractiveHelp()

		case "get":
			addr, err := session.GetPairedMAC()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Printf("Current MAC address: %s\n", addr)

		case "pair":
			if len(args) != 1 {
				fmt.Println("usage: pair <mac>")
				continue
			}
			addr, err := mac.Parse(args[0])
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			if err := session.Pair(addr, verify); err != nil {
				if errors.Is(err, controller.ErrVerifyMismatch) {
					fmt.Printf("Pairing written but verification failed: %v\n", err)
					continue
				}
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Printf("Successfully paired to MAC address: %s\n", addr)

		case "info":
			fmt.Printf("Device:   %s\n", session.GetDisplayName(includeSerial))
			fmt.Printf("USB ID:   %s\n", session.DeviceInfo().ID)
			fmt.Printf("Protocol: %s\n", session.Protocol())

		case "quit", "exit", "q":
			return nil

		default:
			fmt.Printf("Unknown command %q. Type 'help' for commands.\n", cmd)
		}
	}
}

func printInteractiveHelp() {
	fmt.Println("Commands:")
	fmt.Println("  get         - Print the currently paired MAC address")
	fmt.Println("  pair <mac>  - Pair the controller to a new MAC address")
	fmt.Println("  info        - Show device name, USB ID, and protocol")
	fmt.Println("  help        - Show this help")
	fmt.Println("  quit        - Exit")
}
