package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	elerrors "github.com/vango-dev/el/internal/errors"
	"github.com/vango-dev/el/pkg/markup"
	"github.com/vango-dev/el/pkg/render"
)

func escapeCmd() *cobra.Command {
	var attr bool

	cmd := &cobra.Command{
		Use:   "escape [text...]",
		Short: "Escape text for HTML",
		Long: `Escape text the way the renderer escapes text and attribute values.

Arguments are joined with spaces. Without arguments, standard input is read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) > 0 {
				text = strings.Join(args, " ")
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return elerrors.FromError(err, elerrors.CodeInputFailed)
				}
				text = strings.TrimSuffix(string(data), "\n")
			}

			escaped := render.EscapeText(text)
			if attr {
				escaped = `"` + escaped + `"`
			}
			fmt.Fprintln(cmd.OutOrStdout(), escaped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&attr, "attr", false, "Print as a quoted attribute value")

	return cmd
}

func commentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment TEXT",
		Short: "Print TEXT as a well-formed HTML comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := render.RenderToString(markup.Comment(args[0]))
			if err != nil {
				return elerrors.FromRender(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check tag|attr NAME...",
		Short: "Check tag or attribute names",
		Long: `Check that names can be rendered as tag or attribute names.

Every invalid name is reported with its diagnostic; the command exits
with status 1 if any name is invalid.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var check func(string) *elerrors.Error
			switch args[0] {
			case "tag":
				check = elerrors.CheckTagName
			case "attr":
				check = elerrors.CheckAttrName
			default:
				return elerrors.New(elerrors.CodeInvalidArgs).
					WithDetail(fmt.Sprintf("Unknown name kind %q.", args[0])).
					WithSuggestion("Use 'el check tag NAME...' or 'el check attr NAME...'.")
			}

			failed := false
			for _, name := range args[1:] {
				if e := check(name); e != nil {
					failed = true
					fmt.Fprintln(cmd.ErrOrStderr(), e.FormatCompact())
					continue
				}
				success(cmd, "%s", name)
			}
			if failed {
				return errReported
			}
			return nil
		},
	}
}

func explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [CODE]",
		Short: "Explain a diagnostic code",
		Long:  `Explain a diagnostic code. Without a code, list all of them.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, code := range elerrors.Codes() {
					tmpl, _ := elerrors.Lookup(code)
					fmt.Fprintf(out, "%s  %-8s %s\n", code, tmpl.Category, tmpl.Message)
				}
				return nil
			}

			code := strings.ToUpper(args[0])
			if _, ok := elerrors.Lookup(code); !ok {
				return elerrors.New(elerrors.CodeInvalidArgs).
					WithDetail(fmt.Sprintf("No diagnostic is registered under %q.", args[0])).
					WithSuggestion("Run 'el explain' to list the codes.")
			}
			fmt.Fprint(out, elerrors.New(code).Format())
			return nil
		},
	}
}
