/*
 * pairlist.go, part of godipolar.
 *
 * Copyright 2023 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package dipolar

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

//Progress receives enumeration checkpoints. Checkpoints come at roughly
//every 10% of the total, from whatever goroutine drives the enumeration;
//the exact cadence is best-effort, and no checkpoint at all is emitted for
//runs of fewer than 10 pairs, where a 10% granularity means nothing.
type Progress interface {
	Checkpoint(done, total int)
}

//logProgress is the default observer; it reports through the run's logger.
type logProgress struct {
	l *log.Logger
}

func (p logProgress) Checkpoint(done, total int) {
	p.l.Info("pair list progress", "done", done, "total", total, "percent", 100*done/total)
}

//ListSummary reports how one enumeration went: Total pairs considered,
//Recorded written to the output, and Ignored filtered out.
type ListSummary struct {
	Recorded int
	Ignored  int
	Total    int
}

//ListOptions contains the options for the PairList function.
type ListOptions struct {
	noangle   bool
	filter    float64
	filterSet bool
	out       string
	cpus      int
	progress  Progress
	logger    *log.Logger
}

//DefaultListOptions returns reasonable options: angles are used, no filter,
//sequential enumeration, output to "dipolar.dat", progress and summary
//logged to stderr.
func DefaultListOptions() *ListOptions {
	r := new(ListOptions)
	r.out = "dipolar.dat"
	r.cpus = 1
	l := log.New(os.Stderr)
	l.SetTimeFormat("")
	r.logger = l
	return r
}

//NoAngle returns whether the angular term is ignored (all angles taken as 0,
//as for MAS data), and sets it to a new value, if given.
func (O *ListOptions) NoAngle(b ...bool) bool {
	if len(b) > 0 {
		O.noangle = b[0]
	}
	return O.noangle
}

//Filter returns the coupling cutoff in Hz, and sets it to a new value, if
//given. Only pairs whose per-frame-averaged coupling is greater than or
//equal to the cutoff are recorded; the cutoff is never compared against the
//from-means estimate. Use Filtered to know whether a cutoff is active.
func (O *ListOptions) Filter(f ...float64) float64 {
	if len(f) > 0 {
		O.filter = f[0]
		O.filterSet = true
	}
	return O.filter
}

//Filtered returns whether a coupling cutoff is active.
func (O *ListOptions) Filtered() bool {
	return O.filterSet
}

//ClearFilter deactivates the coupling cutoff.
func (O *ListOptions) ClearFilter() {
	O.filter = 0
	O.filterSet = false
}

//Out returns the output file name, and sets it to a new value, if given.
//Names ending in ".gz" or ".zst" produce compressed output.
func (O *ListOptions) Out(name ...string) string {
	if len(name) > 0 && name[0] != "" {
		O.out = name[0]
	}
	return O.out
}

//Cpus returns the number of goroutines used to sample pairs, and sets it to
//a new value, if given. With more than 1, the System must tolerate
//concurrent read-only Selections (the in-memory Molecule does). Rows are
//written in the same deterministic order either way.
func (O *ListOptions) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

//ProgressObs returns the progress observer, and sets it to a new value, if
//given. If never set, checkpoints go to the run's logger.
func (O *ListOptions) ProgressObs(p ...Progress) Progress {
	if len(p) > 0 && p[0] != nil {
		O.progress = p[0]
	}
	return O.progress
}

//Logger returns the logger used for progress and the run summary, and sets
//it to a new value, if given.
func (O *ListOptions) Logger(l ...*log.Logger) *log.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	return O.logger
}

//the output file header.
const listHeader = "# Atom1  Atom2  Distance  Angle  Coupling  CouplingF\n"

//PairList measures every pair between the atoms indexed by list1 (nucleus1)
//and those indexed by list2 (nucleus2), writes one row per recorded pair to
//the output file, and returns the counts. Pairs are visited with list1 in
//the outer loop and list2 in the inner one; a pair whose two indexes are the
//same atom is never visited nor counted, even when it appears in both lists.
//Each pair is sampled over all frames with Pair; if a cutoff is set in opts,
//only pairs whose averaged coupling reaches it are recorded, the rest are
//counted as ignored.
//The output file is created (and the header written) before any sampling, so
//an unwritable destination fails fast. ctx is checked between pairs: long
//enumerations are O(len(list1)*len(list2)) pairs times frames, and can be
//cancelled. On any error the file is closed and left as-is; its contents
//must be considered incomplete.
func PairList(ctx context.Context, sys System, list1 []int, nucleus1 string, list2 []int, nucleus2 string, opts *ListOptions) (*ListSummary, error) {
	if opts == nil {
		opts = DefaultListOptions()
	}
	if _, err := Gamma(nucleus1); err != nil {
		return nil, errDecorate(err, "PairList")
	}
	if _, err := Gamma(nucleus2); err != nil {
		return nil, errDecorate(err, "PairList")
	}
	if len(list1) == 0 || len(list2) == 0 {
		return nil, errDecorate(&EmptySelection{}, "PairList")
	}
	total := 0
	for _, i := range list1 {
		for _, j := range list2 {
			if i != j {
				total++
			}
		}
	}
	out, err := openOutput(opts.out)
	if err != nil {
		return nil, errDecorate(err, "PairList")
	}
	closed := false
	defer func() {
		if !closed {
			out.Close()
		}
	}()
	if err := out.WriteString(listHeader); err != nil {
		return nil, errDecorate(err, "PairList")
	}
	prog := opts.progress
	if prog == nil {
		prog = logProgress{l: opts.logger}
	}
	stride := 0
	if total >= 10 {
		stride = total / 10
	}
	sum := &ListSummary{Total: total}
	record := func(i, j int, res *PairResult) error {
		if opts.filterSet && res.Coupling < opts.filter {
			sum.Ignored++
			return nil
		}
		a1, a2 := sys.Atom(i), sys.Atom(j)
		row := fmt.Sprintf("%s\t%s\t%.2f±%.2f\t%.1f±%.1f\t%.1f±%.1f\t%.1f\n",
			a1.Tag(), a2.Tag(), res.Dist, res.DistDev, res.Angle, res.AngleDev,
			res.Coupling, res.CouplingDev, res.CouplingFromMeans)
		if err := out.WriteString(row); err != nil {
			return err
		}
		sum.Recorded++
		return nil
	}
	done := 0
	tick := func() {
		done++
		if stride > 0 && done%stride == 0 {
			prog.Checkpoint(done, total)
		}
	}
	if opts.cpus > 1 {
		err = listConc(ctx, sys, list1, nucleus1, list2, nucleus2, opts, record, tick)
	} else {
		err = listSeq(ctx, sys, list1, nucleus1, list2, nucleus2, opts, record, tick)
	}
	if err != nil {
		return nil, err
	}
	closed = true
	if err := out.Close(); err != nil {
		return nil, errDecorate(err, "PairList")
	}
	opts.logger.Info("pair list done", "recorded", sum.Recorded, "ignored", sum.Ignored, "total", sum.Total, "file", opts.out)
	return sum, nil
}

//samples the i,j pair of single-atom selections over the whole trajectory.
func listPair(sys System, i, j int, nucleus1, nucleus2 string, noangle bool) (*PairResult, error) {
	sel1, err := sys.Select([]int{i})
	if err != nil {
		return nil, errDecorate(err, fmt.Sprintf("pair %d-%d", i, j))
	}
	sel2, err := sys.Select([]int{j})
	if err != nil {
		return nil, errDecorate(err, fmt.Sprintf("pair %d-%d", i, j))
	}
	res, err := Pair(sys, sel1, sel2, nucleus1, nucleus2, noangle)
	if err != nil {
		return nil, errDecorate(err, fmt.Sprintf("pair %d-%d", i, j))
	}
	return res, nil
}

func listSeq(ctx context.Context, sys System, list1 []int, nucleus1 string, list2 []int, nucleus2 string, opts *ListOptions, record func(int, int, *PairResult) error, tick func()) error {
	for _, i := range list1 {
		for _, j := range list2 {
			if i == j {
				continue
			}
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("goDipolar: PairList: %w", err)
			}
			res, err := listPair(sys, i, j, nucleus1, nucleus2, opts.noangle)
			if err != nil {
				return err
			}
			if err := record(i, j, res); err != nil {
				return errDecorate(err, "PairList")
			}
			tick()
		}
	}
	return nil
}

//listConc does the same enumeration with batches of opts.cpus concurrent
//workers. Batch results are collected in enumeration order before recording,
//so the output is byte-identical to the sequential one.
func listConc(ctx context.Context, sys System, list1 []int, nucleus1 string, list2 []int, nucleus2 string, opts *ListOptions, record func(int, int, *PairResult) error, tick func()) error {
	type task struct {
		i, j int
		res  *PairResult
		err  error
	}
	batch := make([]*task, 0, opts.cpus)
	flush := func() error {
		resc := make([]chan *task, len(batch))
		for k, t := range batch {
			resc[k] = make(chan *task, 1)
			go func(t *task, c chan *task) {
				t.res, t.err = listPair(sys, t.i, t.j, nucleus1, nucleus2, opts.noangle)
				c <- t
			}(t, resc[k])
		}
		for _, c := range resc {
			t := <-c
			if t.err != nil {
				return t.err
			}
			if err := record(t.i, t.j, t.res); err != nil {
				return errDecorate(err, "PairList")
			}
			tick()
		}
		batch = batch[:0]
		return nil
	}
	for _, i := range list1 {
		for _, j := range list2 {
			if i == j {
				continue
			}
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("goDipolar: PairList: %w", err)
			}
			batch = append(batch, &task{i: i, j: j})
			if len(batch) == opts.cpus {
				if err := flush(); err != nil {
					return err
				}
			}
		}
	}
	return flush()
}
