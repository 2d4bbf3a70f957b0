/*
 * output.go, part of godipolar.
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
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//The output sink is plain tab-separated text, but it can be transparently
//compressed: the compressor is chosen from the file name suffix, ".gz" for
//gzip and ".zst" for zstd. Anything else gets no compression.

//sink owns the file handle and whatever compressor sits on top of it. Close
//flushes and closes everything in the right order, on every exit path.
type sink struct {
	w       *bufio.Writer
	closers []io.Closer //innermost first
	name    string
}

func openOutput(name string) (*sink, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, &OutputWrite{FileName: name, Err: err}
	}
	ret := &sink{name: name}
	switch {
	case strings.HasSuffix(name, ".zst"):
		z, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, &OutputWrite{FileName: name, Err: err}
		}
		ret.w = bufio.NewWriter(z)
		ret.closers = []io.Closer{z, f}
	case strings.HasSuffix(name, ".gz"):
		z := gzip.NewWriter(f)
		ret.w = bufio.NewWriter(z)
		ret.closers = []io.Closer{z, f}
	default:
		ret.w = bufio.NewWriter(f)
		ret.closers = []io.Closer{f}
	}
	return ret, nil
}

func (S *sink) WriteString(s string) error {
	if _, err := S.w.WriteString(s); err != nil {
		return &OutputWrite{FileName: S.name, Err: err}
	}
	return nil
}

func (S *sink) Close() error {
	var ret error
	if err := S.w.Flush(); err != nil {
		ret = err
	}
	for _, c := range S.closers {
		if err := c.Close(); err != nil && ret == nil {
			ret = err
		}
	}
	if ret != nil {
		return &OutputWrite{FileName: S.name, Err: ret}
	}
	return nil
}
