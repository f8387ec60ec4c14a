package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/liveseq/seq"
)

var errBadSlice = errors.New("lvseq: slice must be start:end")

type viewOptions struct {
	slice   string
	reverse bool
	out     string
}

func newViewCmd(root *rootOptions) *cobra.Command {
	opts := &viewOptions{}
	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Print the array through an optional window and reversal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openView(root, args[0])
			if err != nil {
				return err
			}
			if opts.slice != "" {
				start, end, err := parseSlice(opts.slice, v.Len())
				if err != nil {
					return err
				}
				v = v.SliceLive(start, end)
				root.logger.Debug().Int("start", start).Int("end", end).Int("len", v.Len()).Msg("window applied")
			}
			if opts.reverse {
				v = v.ReverseLive()
				root.logger.Debug().Msg("reversal applied")
			}
			return writeView(cmd.OutOrStdout(), v, opts.out)
		},
	}
	cmd.Flags().StringVarP(&opts.slice, "slice", "s", "", "window start:end (either side may be empty or negative)")
	cmd.Flags().BoolVarP(&opts.reverse, "reverse", "r", false, "reverse after windowing")
	cmd.Flags().StringVarP(&opts.out, "out", "o", formatJSON, "output format: json or yaml")
	return cmd
}

func newAtCmd(root *rootOptions) *cobra.Command {
	var index int
	cmd := &cobra.Command{
		Use:   "at FILE",
		Short: "Print one element; negative indices count from the end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openView(root, args[0])
			if err != nil {
				return err
			}
			item, err := v.At(index)
			if err != nil {
				return err
			}
			out, err := json.Marshal(item)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().IntVarP(&index, "index", "i", 0, "element index")
	return cmd
}

func openView(root *rootOptions, path string) (*seq.Seq[any], error) {
	format, err := detectFormat(path, root.format)
	if err != nil {
		return nil, err
	}
	items, err := loadArray(path, format)
	if err != nil {
		return nil, err
	}
	root.logger.Debug().Str("file", path).Str("format", format).Int("len", len(items)).Msg("array loaded")
	return seq.FromSlice(&items), nil
}

// parseSlice reads "start:end". A missing start is 0, a missing end is n.
// A negative start counts from the end; a negative end is left for SliceLive.
// Both bounds are clamped to n.
func parseSlice(s string, n int) (start, end int, err error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, errors.Wrapf(errBadSlice, "%q", s)
	}
	start, end = 0, n
	if lo != "" {
		if start, err = strconv.Atoi(lo); err != nil {
			return 0, 0, errors.Wrapf(errBadSlice, "start %q", lo)
		}
		if start < 0 {
			start = max(start+n, 0)
		}
	}
	if hi != "" {
		if end, err = strconv.Atoi(hi); err != nil {
			return 0, 0, errors.Wrapf(errBadSlice, "end %q", hi)
		}
		end = min(end, n)
	}
	start = min(start, n)
	return start, end, nil
}

func writeView(w io.Writer, v *seq.Seq[any], format string) error {
	switch strings.ToLower(format) {
	case formatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case formatJSON:
		out, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	default:
		return errors.Wrapf(errUnknownFormat, "%q", format)
	}
}
