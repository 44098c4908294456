package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthanidhi/arthanidhi-cli/internal/codec/bigjson"
)

// writeJSON prints v in the bigint-safe wire encoding so amounts survive
// copy-paste back into API calls.
func writeJSON(cmd *cobra.Command, v any) error {
	encoded, err := bigjson.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, encoded, "", "  "); err != nil {
		return fmt.Errorf("indent json output: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), indented.String())
	return err
}

// parseAmount converts a rupee string like "1500" or "1500.50" to paise.
func parseAmount(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("amount is empty")
	}

	rupees := trimmed
	paise := "00"
	if dot := strings.IndexByte(trimmed, '.'); dot >= 0 {
		rupees = trimmed[:dot]
		fraction := trimmed[dot+1:]
		if len(fraction) > 2 {
			return 0, fmt.Errorf("amount %q has sub-paise precision", value)
		}
		paise = (fraction + "00")[:2]
	}
	if rupees == "" {
		rupees = "0"
	}

	whole, err := strconv.ParseInt(rupees, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	fractional, err := strconv.ParseInt(paise, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	if whole < 0 {
		return 0, fmt.Errorf("amount %q must not be negative", value)
	}

	return whole*100 + fractional, nil
}

// parseDate converts a YYYY-MM-DD flag value to a nanosecond epoch
// timestamp. Empty input returns zero (unbounded).
func parseDate(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}

	return parsed.UnixNano(), nil
}
