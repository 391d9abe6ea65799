package main

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sandwi/gs-collections-sub005/interval"
	"github.com/sandwi/gs-collections-sub005/parallel"
)

// parseInterval reads FROM TO [STEP].
func parseInterval(args []string) (interval.Interval[int64], error) {
	nums := make([]int64, len(args))
	for i, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return interval.Interval[int64]{}, errors.Wrapf(err, "argument %d", i+1)
		}
		nums[i] = n
	}
	if len(nums) == 2 {
		return interval.FromTo(nums[0], nums[1]), nil
	}
	return interval.FromToBy(nums[0], nums[1], nums[2])
}

const intervalArgs = "FROM TO [STEP]"

type infoReport struct {
	Interval string `yaml:"interval"`
	Size     int    `yaml:"size"`
	First    *int64 `yaml:"first,omitempty"`
	Last     *int64 `yaml:"last,omitempty"`
	Sum      int64  `yaml:"sum"`
	Hash     int32  `yaml:"hash"`
	Encoded  string `yaml:"encoded"`
}

func (r infoReport) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Interval)
	if r.First != nil {
		fmt.Fprintf(&b, "first: %d\nlast: %d\n", *r.First, *r.Last)
	}
	fmt.Fprintf(&b, "sum: %d\nhash: %d\nencoded: %s", r.Sum, r.Hash, r.Encoded)
	return b.String()
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info " + intervalArgs,
		Short: "Describe an interval",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			iv, err := parseInterval(args)
			if err != nil {
				return err
			}
			data, err := iv.MarshalBinary()
			if err != nil {
				return err
			}
			r := infoReport{
				Interval: iv.String(),
				Size:     iv.Size(),
				Sum:      iv.Sum(),
				Hash:     iv.HashCode(),
				Encoded:  hex.EncodeToString(data),
			}
			if first, ok := iv.First(); ok {
				last, _ := iv.Last()
				r.First, r.Last = &first, &last
			}
			return a.emit(cmd, r)
		},
	}
}

type sumReport struct {
	Interval string          `yaml:"interval"`
	Mod      int64           `yaml:"mod,omitempty"`
	Groups   map[int64]int64 `yaml:"groups,omitempty"`
	Sum      int64           `yaml:"sum"`
}

func (r sumReport) Text() string {
	if r.Mod <= 1 {
		return strconv.FormatInt(r.Sum, 10)
	}
	return groupLines(r.Groups) + "\ntotal: " + strconv.FormatInt(r.Sum, 10)
}

func (a *app) sumCmd() *cobra.Command {
	var mod int64
	cmd := &cobra.Command{
		Use:   "sum " + intervalArgs,
		Short: "Sum an interval with the parallel iterator, optionally per residue of --mod",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mod <= 0 {
				return errors.Errorf("--mod must be positive, got %d", mod)
			}
			iv, err := parseInterval(args)
			if err != nil {
				return err
			}
			groups, err := parallel.SumByLong(contextOf(cmd), iv, residueOf(mod),
				func(n int64) int64 { return n }, a.opts...)
			if err != nil {
				return err
			}
			var sum int64
			for _, v := range groups {
				sum += v
			}
			if want := iv.Sum(); sum != want {
				return errors.Errorf("parallel sum %d does not match closed form %d", sum, want)
			}
			r := sumReport{Interval: iv.String(), Sum: sum}
			if mod > 1 {
				r.Mod, r.Groups = mod, groups
			}
			return a.emit(cmd, r)
		},
	}
	cmd.Flags().Int64VarP(&mod, "mod", "m", 1, "Divisor to group by")
	return cmd
}

// residueOf returns the non-negative remainder modulo mod.
func residueOf(mod int64) func(int64) int64 {
	return func(v int64) int64 { return ((v % mod) + mod) % mod }
}

// groupLines prints key: value lines in key order.
func groupLines[V any](groups map[int64]V) string {
	keys := make([]int64, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%d: %v", k, groups[k])
	}
	return strings.Join(lines, "\n")
}

type countReport struct {
	Interval string `yaml:"interval"`
	Mod      int64  `yaml:"mod"`
	Count    int    `yaml:"count"`
}

func (r countReport) Text() string { return strconv.Itoa(r.Count) }

func (a *app) countCmd() *cobra.Command {
	var mod int64
	cmd := &cobra.Command{
		Use:   "count " + intervalArgs,
		Short: "Count the multiples of --mod in an interval",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mod <= 0 {
				return errors.Errorf("--mod must be positive, got %d", mod)
			}
			iv, err := parseInterval(args)
			if err != nil {
				return err
			}
			n, err := parallel.Count(contextOf(cmd), iv, func(v int64) bool { return v%mod == 0 }, a.opts...)
			if err != nil {
				return err
			}
			return a.emit(cmd, countReport{Interval: iv.String(), Mod: mod, Count: n})
		},
	}
	cmd.Flags().Int64VarP(&mod, "mod", "m", 2, "Divisor")
	return cmd
}

type factorialReport struct {
	N     int64  `yaml:"n"`
	Value string `yaml:"value"`
}

func (r factorialReport) Text() string { return r.Value }

func (a *app) factorialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factorial N",
		Short: "Compute N! exactly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "argument 1")
			}
			f, err := interval.OneTo(n).Factorial()
			if err != nil {
				return err
			}
			return a.emit(cmd, factorialReport{N: n, Value: f.String()})
		},
	}
}

type groupReport struct {
	Interval string        `yaml:"interval"`
	Mod      int64         `yaml:"mod"`
	Groups   map[int64]int `yaml:"groups"`
}

func (r groupReport) Text() string { return groupLines(r.Groups) }

func (a *app) groupByCmd() *cobra.Command {
	var mod int64
	cmd := &cobra.Command{
		Use:   "groupby " + intervalArgs,
		Short: "Group an interval by remainder modulo --mod and print group sizes",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mod <= 0 {
				return errors.Errorf("--mod must be positive, got %d", mod)
			}
			iv, err := parseInterval(args)
			if err != nil {
				return err
			}
			groups, err := parallel.GroupBy(contextOf(cmd), iv, residueOf(mod), a.opts...)
			if err != nil {
				return err
			}
			r := groupReport{Interval: iv.String(), Mod: mod, Groups: make(map[int64]int, len(groups))}
			for k, g := range groups {
				r.Groups[k] = g.Size()
			}
			return a.emit(cmd, r)
		},
	}
	cmd.Flags().Int64VarP(&mod, "mod", "m", 2, "Divisor")
	return cmd
}
