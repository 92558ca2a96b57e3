package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/graphalgo/core"
)

// Write emits every outgoing relationship of g as "src dst weight". ids, if
// non-nil, translates dense ids back to external ones. Undirected graphs
// write both orientations; reading them back as directed keeps the layout.
func Write(w io.Writer, g *core.Graph, ids *core.IDMap) error {
	bw := bufio.NewWriter(w)
	external := func(id int) (int64, error) {
		if ids == nil {
			return int64(id), nil
		}
		return ids.ToOriginal(id)
	}

	var (
		buf []byte
		err error
	)
	for u := 0; u < g.NodeCount() && err == nil; u++ {
		var su int64
		if su, err = external(u); err != nil {
			break
		}
		g.ForEachRelationship(u, core.Outgoing, func(_, v int, weight float64) bool {
			var sv int64
			if sv, err = external(v); err != nil {
				return false
			}
			buf = strconv.AppendInt(buf[:0], su, 10)
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, sv, 10)
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, weight, 'g', -1, 64)
			buf = append(buf, '\n')
			_, err = bw.Write(buf)
			return err == nil
		})
	}
	if err != nil {
		return fmt.Errorf("loader: write: %w", err)
	}

	return bw.Flush()
}

// Save writes g to path, compressing by extension.
func Save(path string, g *core.Graph, ids *core.IDMap) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("loader: %w", cerr)
		}
	}()

	zw, err := NewWriter(f, DetectCompression(path))
	if err != nil {
		return err
	}
	if err := Write(zw, g, ids); err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("loader: %w", err)
	}

	return nil
}
