package cmdprinter

import (
	"fmt"
	"strconv"

	"github.com/nspcc-dev/pngme/pkg/services/message"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// maxTextWidth limits chunk text shown in the table cell.
const maxTextWidth = 40

// PrettyPrintChunksTable prints chunk list as a table. Property columns use
// 1/0 for the flags, long texts are shortened.
func PrettyPrintChunksTable(cmd *cobra.Command, infos []message.ChunkInfo) {
	out := tablewriter.NewWriter(cmd.OutOrStdout())
	out.SetHeader([]string{"#", "Offset", "Type", "Length", "CRC", "C P R S", "Text"})
	out.SetAlignment(tablewriter.ALIGN_LEFT)
	out.SetAutoWrapText(false)

	for i := range infos {
		out.Append([]string{
			strconv.Itoa(infos[i].Index),
			strconv.Itoa(infos[i].Offset),
			infos[i].Type,
			strconv.FormatUint(uint64(infos[i].Length), 10),
			fmt.Sprintf("%08x", infos[i].CRC),
			boolToString(infos[i].Critical) + " " +
				boolToString(infos[i].Public) + " " +
				boolToString(infos[i].Valid) + " " +
				boolToString(infos[i].SafeToCopy),
			shorten(strconv.Quote(infos[i].Text), maxTextWidth),
		})
	}

	out.Render()

	cmd.Println("  C-Critical P-Public R-Reserved bit valid S-Safe to copy")
}

// PrettyPrintChunksYAML prints chunk list as YAML sequence.
func PrettyPrintChunksYAML(cmd *cobra.Command, infos []message.ChunkInfo) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)

	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	return enc.Close()
}

func boolToString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
