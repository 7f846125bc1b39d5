// Command herd-check validates JSON record files against the herdcore rule
// engine and reports every finding. It exists for data imports and support
// tooling; the production path embeds the engine behind the HTTP layer.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"herdcore/internal/config"
	"herdcore/internal/observability"
	"herdcore/pkg/domain"
	"herdcore/pkg/validation"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "herd-check:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var limitsPath string

	root := &cobra.Command{
		Use:           "herd-check",
		Short:         "Validate herdcore record files",
		Long:          "herd-check runs the herdcore validation engine over JSON files containing a single record or an array of records and prints every error and warning found.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&limitsPath, "limits", "", "YAML file with limit overrides")

	kinds := []struct {
		use   string
		short string
		kind  string
	}{
		{"cattle [file...]", "Validate cattle records", validation.KindCattle},
		{"event [file...]", "Validate health event records", validation.KindEvent},
		{"user [file...]", "Validate user records", validation.KindUser},
		{"location [file...]", "Validate location fixes", validation.KindLocation},
	}
	for _, k := range kinds {
		kind := k.kind
		cmd := &cobra.Command{
			Use:   k.use,
			Short: k.short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runCheck(cmd, kind, limitsPath, args)
			},
		}
		root.AddCommand(cmd)
	}
	return root
}

func runCheck(cmd *cobra.Command, kind, limitsPath string, files []string) error {
	limits, err := config.LoadLimits(limitsPath)
	if err != nil {
		return err
	}
	engine, err := validation.New(
		validation.WithLimits(limits),
		validation.WithRecorder(observability.NewExpvarRecorder("")),
	)
	if err != nil {
		return err
	}

	total, invalid := 0, 0
	for _, file := range files {
		records, err := readRecords(file)
		if err != nil {
			return err
		}
		for i, raw := range records {
			res := validateRaw(engine, kind, raw)
			total++
			if !res.IsValid() {
				invalid++
			}
			printResult(cmd, file, i, res)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d record(s) invalid", invalid, total)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d record(s) valid\n", total)
	return nil
}

// readRecords accepts either a single JSON object or an array of objects.
func readRecords(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var many []map[string]any
	if err := json.Unmarshal(data, &many); err == nil {
		return many, nil
	}
	var one map[string]any
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("%s: not a JSON object or array of objects", path)
	}
	return []map[string]any{one}, nil
}

// validateRaw decodes then validates; decode findings and rule findings are
// reported together so one pass surfaces every problem with the record.
func validateRaw(engine *validation.Engine, kind string, raw map[string]any) domain.Result {
	switch kind {
	case validation.KindCattle:
		rec, res := validation.DecodeCattle(raw)
		res.Merge(engine.Cattle(rec))
		return res
	case validation.KindEvent:
		rec, res := validation.DecodeEvent(raw)
		res.Merge(engine.Event(rec))
		return res
	case validation.KindUser:
		rec, res := validation.DecodeUser(raw)
		res.Merge(engine.User(rec))
		return res
	case validation.KindLocation:
		fix, res := validation.DecodeLocation(raw)
		res.Merge(engine.Location(fix))
		return res
	}
	var res domain.Result
	res.Errorf("unknown record kind %q", kind)
	return res
}

func printResult(cmd *cobra.Command, file string, index int, res domain.Result) {
	out := cmd.OutOrStdout()
	for _, msg := range res.Errors {
		fmt.Fprintf(out, "%s[%d]: error: %s\n", file, index, msg)
	}
	for _, msg := range res.Warnings {
		fmt.Fprintf(out, "%s[%d]: warning: %s\n", file, index, msg)
	}
}
