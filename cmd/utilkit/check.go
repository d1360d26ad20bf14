package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/utilkit/pkg/validator"
)

// ruleFlags carries the parameters of the length rule.
type ruleFlags struct {
	min          int
	max          int
	label        string
	countChinese bool
}

func (f *ruleFlags) rules() map[string]validator.Func {
	return map[string]validator.Func{
		"alnum":     validator.OnlyNumAndEn,
		"nospecial": validator.NoSpecial,
		"email":     validator.Email,
		"phone":     validator.Phone,
		"url":       validator.HTTP,
		"carnumber": validator.CarNumber,
		"idcard":    validator.IDCard,
		"chinese":   validator.Chinese,
		"nochinese": validator.NoChinese,
		"uuid":      validator.UUID,
		"length":    validator.Length(f.min, f.max, f.label, f.countChinese),
		"integer":   predicate(validator.IsInteger, "must be an integer"),
		"notempty":  predicate(func(v any) bool { return !validator.IsEmpty(v) }, "must not be empty"),
		"notnull":   predicate(func(v any) bool { return !validator.IsNull(v) }, "must not be null"),
	}
}

func ruleNames() []string {
	return slices.Sorted(maps.Keys((&ruleFlags{}).rules()))
}

func predicate(ok func(any) bool, msg string) validator.Func {
	return func(value string) string {
		if ok(value) {
			return ""
		}
		return msg
	}
}

func (a *app) checkCmd() *cobra.Command {
	var flags ruleFlags
	cmd := &cobra.Command{
		Use:   "check <rule> <value>",
		Short: "Validate a value against a rule",
		Long:  "Runs one validator and prints its verdict. Exits non-zero when the value is invalid.\n\nRules: " + strings.Join(ruleNames(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(args[0])
			fn, ok := flags.rules()[name]
			if !ok {
				return fmt.Errorf("unknown rule %q (available: %s)", name, strings.Join(ruleNames(), ", "))
			}

			err := validator.Validate(args[1], fn)
			a.commandLogger(cmd).DebugContext(cmd.Context(), "value checked",
				"rule", name,
				"valid", err == nil,
			)

			out := cmd.OutOrStdout()
			if err != nil {
				color.New(color.FgRed, color.Bold).Fprint(out, "invalid")
				fmt.Fprintf(out, ": %s\n", err)
				return errInvalid
			}
			color.New(color.FgGreen, color.Bold).Fprintln(out, "valid")
			return nil
		},
	}
	cmd.Flags().IntVar(&flags.min, "min", -1, "minimum length for the length rule (-1 disables)")
	cmd.Flags().IntVar(&flags.max, "max", -1, "maximum length for the length rule (-1 disables)")
	cmd.Flags().StringVar(&flags.label, "label", "", "label prefixed to the length message")
	cmd.Flags().BoolVar(&flags.countChinese, "count-chinese", false, "count each Chinese character as three")
	return cmd
}
