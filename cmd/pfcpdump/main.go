// Command pfcpdump decodes a single PFCP message and prints a tabular
// summary of its header and top-level Information Elements. It reads a
// raw UDP payload (no pcap framing) from a file or, with no arguments,
// from standard input.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/your-org/pfcp/ie"
	"github.com/your-org/pfcp/message"
)

var hexInput bool

func main() {
	root := &cobra.Command{
		Use:   "pfcpdump [file]",
		Short: "decode a raw PFCP datagram and print its contents",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
	root.Flags().BoolVar(&hexInput, "hex", false, "input is hex-encoded text rather than raw bytes")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	raw, err := readInput(args)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	msg, err := message.Parse(raw)
	if err != nil {
		return fmt.Errorf("decoding message: %w", err)
	}

	printHeader(msg)
	return printIEs(msg)
}

func readInput(args []string) ([]byte, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if hexInput {
		text := strings.TrimSpace(strings.Join(strings.Fields(string(data)), ""))
		return hex.DecodeString(text)
	}
	return data, nil
}

func printHeader(msg message.Message) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"field", "value"})

	rows := [][]string{
		{"message type", fmt.Sprintf("%d (%s)", msg.MessageType(), msg.MessageType())},
		{"sequence number", fmt.Sprintf("%d", msg.SequenceNumber())},
	}
	if seid, ok := msg.SEID(); ok {
		rows = append(rows, []string{"seid", fmt.Sprintf("%d (0x%016x)", seid, seid)})
	}
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}

func printIEs(msg message.Message) error {
	ies, err := ie.All(msg.MarshalBody())
	if err != nil {
		return fmt.Errorf("walking IEs: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetColWidth(40)
	table.SetHeader([]string{"ie type", "length", "payload"})
	for _, i := range ies {
		table.Append([]string{
			fmt.Sprintf("%d (%s)", i.Type, i.Type),
			fmt.Sprintf("%d", len(i.Payload)),
			hex.EncodeToString(i.Payload),
		})
	}
	table.Render()
	return nil
}
