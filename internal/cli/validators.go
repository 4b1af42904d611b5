package cli

import (
	"fmt"

	"github.com/alnview/alnview-cli/pkg/alignment"
)

// ParseSequencePair normalizes and compares the two positional sequence
// arguments shared by the render, stats and clipboard commands.
func ParseSequencePair(args []string) (*alignment.CompareResult, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("expected exactly 2 sequences, got %d", len(args))
	}

	ref, err := alignment.Normalize(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid reference sequence: %w", err)
	}
	if len(ref) == 0 {
		return nil, fmt.Errorf("reference sequence must not be empty")
	}

	query, err := alignment.Normalize(args[1])
	if err != nil {
		return nil, fmt.Errorf("invalid query sequence: %w", err)
	}
	if len(query) == 0 {
		return nil, fmt.Errorf("query sequence must not be empty")
	}

	result, err := alignment.Compare(ref, query)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ValidateWidth checks the --width flag of the one-shot commands.
func ValidateWidth(width int) error {
	if width < 1 {
		return fmt.Errorf("width must be at least 1, got %d", width)
	}
	return nil
}
