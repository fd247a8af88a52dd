package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mattsolo1/grove-advent/pkg/runner"
)

// parseDays turns day arguments into numbers. No arguments means every
// registered day.
func parseDays(r *runner.Runner, args []string) ([]int, error) {
	if len(args) == 0 {
		return r.Days(), nil
	}

	days := make([]int, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", arg)
		}
		days = append(days, day)
	}
	return days, nil
}

func outputJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
