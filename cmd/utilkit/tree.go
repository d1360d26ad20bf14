package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/utilkit/pkg/tree"
)

type treeFlags struct {
	id       string
	parentID string
	children string
}

func (f *treeFlags) register(cmd *cobra.Command, withParent bool) {
	cmd.Flags().StringVar(&f.children, "children", "", "children field name (default from UTILKIT_TREE_CHILDREN_FIELD, else children)")
	if !withParent {
		return
	}
	cmd.Flags().StringVar(&f.id, "id", "", "id field name (default from UTILKIT_TREE_ID_FIELD, else id)")
	cmd.Flags().StringVar(&f.parentID, "parent-id", "", "parent id field name (default from UTILKIT_TREE_PARENT_ID_FIELD, else parentId)")
}

// options layers explicit flags over the configured field names. Empty values
// are ignored by the tree options.
func (f *treeFlags) options(cfg tree.Config) []tree.Option {
	return []tree.Option{
		tree.WithConfig(cfg),
		tree.WithIDField(f.id),
		tree.WithParentIDField(f.parentID),
		tree.WithChildrenField(f.children),
	}
}

func (a *app) treeCmd() *cobra.Command {
	var flags treeFlags
	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Build a tree from a flat array of records",
		Long:  "Reads a JSON or YAML array of records linked by parent id (stdin when no file is given) and prints the forest of root records with nested children.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := readNodes(firstArg(args), cmd.InOrStdin())
			if err != nil {
				return err
			}

			roots := tree.ToTree(nodes, flags.options(a.cfg.Tree)...)
			a.commandLogger(cmd).DebugContext(cmd.Context(), "tree built",
				"records", len(nodes),
				"roots", len(roots),
			)
			return writeOutput(cmd.OutOrStdout(), a.format, roots)
		},
	}
	flags.register(cmd, true)
	return cmd
}

func (a *app) flattenCmd() *cobra.Command {
	var flags treeFlags
	cmd := &cobra.Command{
		Use:   "flatten [file]",
		Short: "Flatten a tree into an array of records",
		Long:  "Reads a JSON or YAML forest (stdin when no file is given) and prints every node with children listed before their parent.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := readNodes(firstArg(args), cmd.InOrStdin())
			if err != nil {
				return err
			}

			flat := tree.ToArray(nodes, false, flags.options(a.cfg.Tree)...)
			a.commandLogger(cmd).DebugContext(cmd.Context(), "tree flattened",
				"roots", len(nodes),
				"records", len(flat),
			)
			return writeOutput(cmd.OutOrStdout(), a.format, flat)
		},
	}
	flags.register(cmd, false)
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
